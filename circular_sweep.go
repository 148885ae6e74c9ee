package landscape

import (
	"iter"
	"math"
)

// circleHalfWidth returns the largest w such that dr^2 + w^2 <= radius^2,
// the half-width of the row at vertical offset dr within a circular
// window of the given radius. Callers only ask for |dr| <= radius.
func circleHalfWidth(dr, radius int) int {
	d2 := radius*radius - dr*dr
	if d2 < 0 {
		return -1
	}
	w := int(math.Sqrt(float64(d2)))
	for (w+1)*(w+1) <= d2 {
		w++
	}
	for w*w > d2 {
		w--
	}
	return w
}

// CircularSweep is an incremental engine for a circular window over
// pixel samples. Each row within radius R of the current centre row
// contributes a horizontal strip whose half-width shrinks towards the
// top and bottom of the circle; the strip widths are fixed for as long
// as the centre row holds, so a right step updates every active row in
// O(1) each (O(R) per cell overall) and a row wrap rebuilds the set of
// active rows and reseeds from scratch.
type CircularSweep[S any] struct {
	r       Raster[S]
	weight  Raster[float64]
	radius  int
	dims    Dims
	factory Factory[S]

	stripRow   []int
	stripWidth []int

	scratch       PixelCursor[S]
	weightScratch PixelCursor[float64]
	live          Indicator[S]
	row, col      int
	done          bool
}

// NewCircularSweep constructs a CircularSweep over r with the given
// radius (a cell is inside the window iff dr^2+dc^2 <= floor(radius)^2)
// and seeds it at cell (0,0).
func NewCircularSweep[S any](r Raster[S], radius float64, factory Factory[S]) *CircularSweep[S] {
	return NewWeightedCircularSweep(r, nil, radius, factory)
}

// NewWeightedCircularSweep is NewCircularSweep with an optional
// per-cell weight raster (nil means every sample carries the implicit
// weight 1.0). weight, if non-nil, must share r's dimensions.
func NewWeightedCircularSweep[S any](r Raster[S], weight Raster[float64], radius float64, factory Factory[S]) *CircularSweep[S] {
	if radius < 0 {
		panic("landscape: CircularSweep radius must be >= 0")
	}
	s := &CircularSweep[S]{r: r, weight: weight, radius: int(math.Floor(radius)), dims: r.Dims(), factory: factory}
	if s.dims.Empty() {
		s.done = true
		return s
	}
	s.scratch = r.Pixel(RowMajor)
	if weight != nil {
		s.weightScratch = weight.Pixel(RowMajor)
	}
	s.buildRow()
	return s
}

// at reads a single pixel value and its weight via the sweep's scratch
// cursors.
func (s *CircularSweep[S]) at(c Coord) (S, float64) {
	s.scratch.Seek(c)
	if s.weightScratch == nil {
		return s.scratch.Value(), unweighted
	}
	s.weightScratch.Seek(c)
	return s.scratch.Value(), s.weightScratch.Value()
}

// buildRow recomputes the set of active row strips for s.row and seeds
// live at s.col == 0.
func (s *CircularSweep[S]) buildRow() {
	s.stripRow = s.stripRow[:0]
	s.stripWidth = s.stripWidth[:0]
	for dr := -s.radius; dr <= s.radius; dr++ {
		absRow := s.row + dr
		if absRow < 0 || absRow >= s.dims.Size1 {
			continue
		}
		w := circleHalfWidth(dr, s.radius)
		if w < 0 {
			continue
		}
		s.stripRow = append(s.stripRow, absRow)
		s.stripWidth = append(s.stripWidth, w)
	}

	s.live = s.factory()
	for i, absRow := range s.stripRow {
		w := s.stripWidth[i]
		cursor := s.r.Pixel(RowMajor)
		cursor.Seek(Coord{Row: absRow, Col: 0})
		var weightCursor PixelCursor[float64]
		if s.weight != nil {
			weightCursor = s.weight.Pixel(RowMajor)
			weightCursor.Seek(Coord{Row: absRow, Col: 0})
		}
		limit := w
		if limit > s.dims.Size2-1 {
			limit = s.dims.Size2 - 1
		}
		for c := 0; c <= limit; c++ {
			weight := unweighted
			if weightCursor != nil {
				weight = weightCursor.Value()
				weightCursor.Next()
			}
			s.live.AddSample(cursor.Value(), weight)
			cursor.Next()
		}
	}
}

// Coord returns the cell the sweep is currently positioned at.
func (s *CircularSweep[S]) Coord() Coord { return Coord{Row: s.row, Col: s.col} }

// Done reports whether the sweep has produced all size1*size2 values.
func (s *CircularSweep[S]) Done() bool { return s.done }

// Value returns the current cell's indicator output without mutating
// state.
func (s *CircularSweep[S]) Value() float64 { return s.live.Extract() }

// Next advances the sweep by one cell in row-major order.
func (s *CircularSweep[S]) Next() {
	if s.col+1 < s.dims.Size2 {
		for i, absRow := range s.stripRow {
			w := s.stripWidth[i]
			if s.col+w+1 < s.dims.Size2 {
				v, weight := s.at(Coord{Row: absRow, Col: s.col + w + 1})
				s.live.AddSample(v, weight)
			}
			if s.col-w >= 0 {
				v, weight := s.at(Coord{Row: absRow, Col: s.col - w})
				s.live.SubtractSample(v, weight)
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
func (s *CircularSweep[S]) Values() iter.Seq[float64] {
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
