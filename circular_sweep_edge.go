package landscape

import (
	"iter"
	"math"
)

// CircularEdgeSweep is a circular-window engine over edge samples. Like
// CircularSweep it rebuilds, on every row wrap, the set of h-edge rows
// and v-edge rows active within the circle and their fixed half-widths,
// then steps columns in O(R) per cell. h-edge rows are keyed the same
// way as pixel rows would be for a circle of the same radius (an
// h-edge's row key already sits "between" two pixel rows, so the
// relevant vertical offset dr is measured against the h-edge's own row
// key minus the centre pixel row); v-edge columns range one wider than
// pixel columns, mirroring SquareEdgeSweep's extra v-buffer slot.
type CircularEdgeSweep[T any] struct {
	r       Raster[T]
	radius  int
	dims    Dims
	factory Factory[EdgeSample[T]]

	hRow, hWidth []int
	vRow, vWidth []int

	hScratch EdgeCursor[T]
	vScratch EdgeCursor[T]
	live     Indicator[EdgeSample[T]]
	row, col int
	done     bool
}

// NewCircularEdgeSweep constructs a CircularEdgeSweep over r with the
// given radius (a cell is inside the window iff dr^2+dc^2 <=
// floor(radius)^2) and seeds it at cell (0,0).
func NewCircularEdgeSweep[T any](r Raster[T], radius float64, factory Factory[EdgeSample[T]]) *CircularEdgeSweep[T] {
	if radius < 0 {
		panic("landscape: CircularEdgeSweep radius must be >= 0")
	}
	s := &CircularEdgeSweep[T]{r: r, radius: int(math.Floor(radius)), dims: r.Dims(), factory: factory}
	if s.dims.Empty() {
		s.done = true
		return s
	}
	s.hScratch = r.HEdge(RowMajor, EdgeFull)
	s.vScratch = r.VEdge(RowMajor, EdgeFull)
	s.buildRow()
	return s
}

func (s *CircularEdgeSweep[T]) buildRow() {
	s.hRow = s.hRow[:0]
	s.hWidth = s.hWidth[:0]
	for dr := -s.radius; dr <= s.radius; dr++ {
		hr := s.row + dr
		if hr < 0 || hr > s.dims.Size1 {
			continue
		}
		w := circleHalfWidth(dr, s.radius)
		if w < 0 {
			continue
		}
		s.hRow = append(s.hRow, hr)
		s.hWidth = append(s.hWidth, w)
	}

	s.vRow = s.vRow[:0]
	s.vWidth = s.vWidth[:0]
	for dr := -s.radius; dr <= s.radius; dr++ {
		vr := s.row + dr
		if vr < 0 || vr >= s.dims.Size1 {
			continue
		}
		w := circleHalfWidth(dr, s.radius)
		if w < 0 {
			continue
		}
		s.vRow = append(s.vRow, vr)
		s.vWidth = append(s.vWidth, w)
	}

	s.live = s.factory()
	for i, hr := range s.hRow {
		limit := s.hWidth[i]
		if limit > s.dims.Size2-1 {
			limit = s.dims.Size2 - 1
		}
		s.hScratch.Seek(Coord{Row: hr, Col: 0})
		for c := 0; c <= limit; c++ {
			s.live.AddSample(s.hScratch.Value(), unweighted)
			s.hScratch.Next()
		}
	}
	for i, vr := range s.vRow {
		limit := s.vWidth[i]
		if limit > s.dims.Size2 {
			limit = s.dims.Size2
		}
		s.vScratch.Seek(Coord{Row: vr, Col: 0})
		for c := 0; c <= limit; c++ {
			s.live.AddSample(s.vScratch.Value(), unweighted)
			s.vScratch.Next()
		}
	}
}

// Coord returns the cell the sweep is currently positioned at.
func (s *CircularEdgeSweep[T]) Coord() Coord { return Coord{Row: s.row, Col: s.col} }

// Done reports whether the sweep has produced all size1*size2 values.
func (s *CircularEdgeSweep[T]) Done() bool { return s.done }

// Value returns the current cell's indicator output without mutating
// state.
func (s *CircularEdgeSweep[T]) Value() float64 { return s.live.Extract() }

func (s *CircularEdgeSweep[T]) hAt(row, col int) EdgeSample[T] {
	s.hScratch.Seek(Coord{Row: row, Col: col})
	return s.hScratch.Value()
}

func (s *CircularEdgeSweep[T]) vAt(row, col int) EdgeSample[T] {
	s.vScratch.Seek(Coord{Row: row, Col: col})
	return s.vScratch.Value()
}

// Next advances the sweep by one cell in row-major order.
func (s *CircularEdgeSweep[T]) Next() {
	if s.col+1 < s.dims.Size2 {
		for i, hr := range s.hRow {
			w := s.hWidth[i]
			if s.col+w+1 < s.dims.Size2 {
				s.live.AddSample(s.hAt(hr, s.col+w+1), unweighted)
			}
			if s.col-w >= 0 {
				s.live.SubtractSample(s.hAt(hr, s.col-w), unweighted)
			}
		}
		for i, vr := range s.vRow {
			w := s.vWidth[i]
			if s.col+w+1 <= s.dims.Size2 {
				s.live.AddSample(s.vAt(vr, s.col+w+1), unweighted)
			}
			if s.col-w >= 0 {
				s.live.SubtractSample(s.vAt(vr, s.col-w), unweighted)
			}
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
	s.buildRow()
}

// Values returns the lazy row-major sequence of indicator outputs: one
// value per cell, size1*size2 values total.
func (s *CircularEdgeSweep[T]) Values() iter.Seq[float64] {
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
