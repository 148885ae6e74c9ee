package landscape

import "iter"

// SquareEdgeSweep is the O(1)-per-cell incremental engine for a square
// window over edge samples (h-edges and v-edges). It mirrors SquareSweep's
// column-buffer technique but keeps two buffers: one slot per pixel
// column for horizontal edges, one slot per pixel column plus one extra
// for vertical edges (a v-edge's column key ranges over size2+1
// positions, one more than a pixel column). Edge samples at the raster
// boundary carry a nil First or Second (see EdgeSample) and indicators
// that only count fully-present edges, such as EdgeDensity, naturally
// ignore them — no separate boundary bookkeeping is needed here.
type SquareEdgeSweep[T any] struct {
	r       Raster[T]
	radius  int
	dims    Dims
	factory Factory[EdgeSample[T]]

	hBuffer []Indicator[EdgeSample[T]] // len size2
	vBuffer []Indicator[EdgeSample[T]] // len size2+1
	live    Indicator[EdgeSample[T]]
	row, col int
	done    bool
}

// NewSquareEdgeSweep constructs a SquareEdgeSweep over r with the given
// radius and seeds it at cell (0,0).
func NewSquareEdgeSweep[T any](r Raster[T], radius int, factory Factory[EdgeSample[T]]) *SquareEdgeSweep[T] {
	if radius < 0 {
		panic("landscape: SquareEdgeSweep radius must be >= 0")
	}
	s := &SquareEdgeSweep[T]{r: r, radius: radius, dims: r.Dims(), factory: factory}
	if s.dims.Empty() {
		s.done = true
		return s
	}

	s.hBuffer = make([]Indicator[EdgeSample[T]], s.dims.Size2)
	for c := range s.hBuffer {
		s.hBuffer[c] = factory()
	}
	s.vBuffer = make([]Indicator[EdgeSample[T]], s.dims.Size2+1)
	for c := range s.vBuffer {
		s.vBuffer[c] = factory()
	}

	hCursor := r.HEdge(RowMajor, EdgeFull)
	for hr := 0; hr <= radius && hr <= s.dims.Size1; hr++ {
		hCursor.Seek(Coord{Row: hr, Col: 0})
		for c := 0; c < s.dims.Size2; c++ {
			s.hBuffer[c].AddSample(hCursor.Value(), unweighted)
			hCursor.Next()
		}
	}
	vCursor := r.VEdge(RowMajor, EdgeFull)
	for vr := 0; vr <= radius && vr < s.dims.Size1; vr++ {
		vCursor.Seek(Coord{Row: vr, Col: 0})
		for vc := 0; vc <= s.dims.Size2; vc++ {
			s.vBuffer[vc].AddSample(vCursor.Value(), unweighted)
			vCursor.Next()
		}
	}

	s.seedLive()
	return s
}

func (s *SquareEdgeSweep[T]) seedLive() {
	s.live = s.factory()
	for c := 0; c <= s.radius && c < s.dims.Size2; c++ {
		s.live.AddSubtotal(s.hBuffer[c])
	}
	for c := 0; c <= s.radius && c <= s.dims.Size2; c++ {
		s.live.AddSubtotal(s.vBuffer[c])
	}
}

// Coord returns the cell the sweep is currently positioned at.
func (s *SquareEdgeSweep[T]) Coord() Coord { return Coord{Row: s.row, Col: s.col} }

// Done reports whether the sweep has produced all size1*size2 values.
func (s *SquareEdgeSweep[T]) Done() bool { return s.done }

// Value returns the current cell's indicator output without mutating
// state.
func (s *SquareEdgeSweep[T]) Value() float64 { return s.live.Extract() }

// Next advances the sweep by one cell in row-major order.
func (s *SquareEdgeSweep[T]) Next() {
	if s.col+1 < s.dims.Size2 {
		if s.col+s.radius+1 < s.dims.Size2 {
			s.live.AddSubtotal(s.hBuffer[s.col+s.radius+1])
		}
		if s.col-s.radius >= 0 {
			s.live.SubtractSubtotal(s.hBuffer[s.col-s.radius])
		}
		if s.col+s.radius+1 <= s.dims.Size2 {
			s.live.AddSubtotal(s.vBuffer[s.col+s.radius+1])
		}
		if s.col-s.radius >= 0 {
			s.live.SubtractSubtotal(s.vBuffer[s.col-s.radius])
		}
		s.col++
		return
	}

	s.col = 0
	s.row++
	if s.row >= s.dims.Size1 {
		s.done = true
		return
	}

	newHRow, oldHRow := s.row+s.radius, s.row-s.radius-1
	if newHRow <= s.dims.Size1 {
		hCursor := s.r.HEdge(RowMajor, EdgeFull)
		hCursor.Seek(Coord{Row: newHRow, Col: 0})
		for c := 0; c < s.dims.Size2; c++ {
			s.hBuffer[c].AddSample(hCursor.Value(), unweighted)
			hCursor.Next()
		}
	}
	if oldHRow >= 0 {
		hCursor := s.r.HEdge(RowMajor, EdgeFull)
		hCursor.Seek(Coord{Row: oldHRow, Col: 0})
		for c := 0; c < s.dims.Size2; c++ {
			s.hBuffer[c].SubtractSample(hCursor.Value(), unweighted)
			hCursor.Next()
		}
	}

	newVRow, oldVRow := s.row+s.radius, s.row-s.radius-1
	if newVRow < s.dims.Size1 {
		vCursor := s.r.VEdge(RowMajor, EdgeFull)
		vCursor.Seek(Coord{Row: newVRow, Col: 0})
		for c := 0; c <= s.dims.Size2; c++ {
			s.vBuffer[c].AddSample(vCursor.Value(), unweighted)
			vCursor.Next()
		}
	}
	if oldVRow >= 0 {
		vCursor := s.r.VEdge(RowMajor, EdgeFull)
		vCursor.Seek(Coord{Row: oldVRow, Col: 0})
		for c := 0; c <= s.dims.Size2; c++ {
			s.vBuffer[c].SubtractSample(vCursor.Value(), unweighted)
			vCursor.Next()
		}
	}

	s.seedLive()
}

// Values returns the lazy row-major sequence of indicator outputs: one
// value per cell, size1*size2 values total.
func (s *SquareEdgeSweep[T]) Values() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if s.done {
			return
		}
		for {
			if !yield(s.Value()) {
				return
			}
			s.Next()
			if s.done {
				return
			}
		}
	}
}
