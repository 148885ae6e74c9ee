package landscape

import "iter"

// SquareSweep is the O(1)-per-cell incremental engine for a square
// window over pixel samples. It maintains one indicator per
// column (the column buffer), each summarising the vertical strip of
// the window at the current row, and a live indicator summarising the
// buffer columns within the window's horizontal extent.
//
// A SquareSweep is single-pass and forward-only: construct a fresh one
// via NewSquareSweep for each pass.
type SquareSweep[S any] struct {
	r       Raster[S]
	weight  Raster[float64]
	radius  int
	dims    Dims
	factory Factory[S]

	columnBuffer []Indicator[S]
	live         Indicator[S]
	row, col     int
	done         bool
}

// NewSquareSweep constructs a SquareSweep over r with the given radius
// (window [row-R,row+R] x [col-R,col+R]) and seeds it at cell (0,0).
// radius may be 0 (single-cell window) or exceed the raster's extent
// (degenerate, unoptimised).
func NewSquareSweep[S any](r Raster[S], radius int, factory Factory[S]) *SquareSweep[S] {
	return NewWeightedSquareSweep(r, nil, radius, factory)
}

// NewWeightedSquareSweep is NewSquareSweep with an optional per-cell
// weight raster (nil means every sample carries the implicit weight
// 1.0). weight, if non-nil, must share r's dimensions.
func NewWeightedSquareSweep[S any](r Raster[S], weight Raster[float64], radius int, factory Factory[S]) *SquareSweep[S] {
	if radius < 0 {
		panic("landscape: SquareSweep radius must be >= 0")
	}
	s := &SquareSweep[S]{r: r, weight: weight, radius: radius, dims: r.Dims(), factory: factory}
	if s.dims.Empty() {
		s.done = true
		return s
	}

	s.columnBuffer = make([]Indicator[S], s.dims.Size2)
	for c := range s.columnBuffer {
		s.columnBuffer[c] = factory()
	}

	rowCursor := r.Pixel(RowMajor)
	var weightCursor PixelCursor[float64]
	if weight != nil {
		weightCursor = weight.Pixel(RowMajor)
	}
	for row := 0; row <= radius && row < s.dims.Size1; row++ {
		rowCursor.Seek(Coord{Row: row, Col: 0})
		if weightCursor != nil {
			weightCursor.Seek(Coord{Row: row, Col: 0})
		}
		for c := 0; c < s.dims.Size2; c++ {
			s.columnBuffer[c].AddSample(rowCursor.Value(), s.weightAt(weightCursor))
			rowCursor.Next()
			if weightCursor != nil {
				weightCursor.Next()
			}
		}
	}

	s.seedLive()
	return s
}

// weightAt reads the current weight off an optional cursor, or the
// implicit weight when the sweep carries no weight raster.
func (s *SquareSweep[S]) weightAt(cursor PixelCursor[float64]) float64 {
	if cursor == nil {
		return unweighted
	}
	return cursor.Value()
}

func (s *SquareSweep[S]) seedLive() {
	s.live = s.factory()
	for c := 0; c <= s.radius && c < s.dims.Size2; c++ {
		s.live.AddSubtotal(s.columnBuffer[c])
	}
}

// Coord returns the cell the sweep is currently positioned at.
func (s *SquareSweep[S]) Coord() Coord { return Coord{Row: s.row, Col: s.col} }

// Done reports whether the sweep has produced all size1*size2 values.
func (s *SquareSweep[S]) Done() bool { return s.done }

// Value returns the current cell's indicator output without mutating
// state (Extract never mutates).
func (s *SquareSweep[S]) Value() float64 { return s.live.Extract() }

// Next advances the sweep by one cell in row-major order.
func (s *SquareSweep[S]) Next() {
	if s.col+1 < s.dims.Size2 {
		if s.col+s.radius+1 < s.dims.Size2 {
			s.live.AddSubtotal(s.columnBuffer[s.col+s.radius+1])
		}
		if s.col-s.radius >= 0 {
			s.live.SubtractSubtotal(s.columnBuffer[s.col-s.radius])
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

	newRow := s.row + s.radius
	oldRow := s.row - s.radius - 1
	var weightCursor PixelCursor[float64]
	if s.weight != nil {
		weightCursor = s.weight.Pixel(RowMajor)
	}
	if newRow < s.dims.Size1 {
		rowCursor := s.r.Pixel(RowMajor)
		rowCursor.Seek(Coord{Row: newRow, Col: 0})
		if weightCursor != nil {
			weightCursor.Seek(Coord{Row: newRow, Col: 0})
		}
		for c := 0; c < s.dims.Size2; c++ {
			s.columnBuffer[c].AddSample(rowCursor.Value(), s.weightAt(weightCursor))
			rowCursor.Next()
			if weightCursor != nil {
				weightCursor.Next()
			}
		}
	}
	if oldRow >= 0 {
		rowCursor := s.r.Pixel(RowMajor)
		rowCursor.Seek(Coord{Row: oldRow, Col: 0})
		if weightCursor != nil {
			weightCursor.Seek(Coord{Row: oldRow, Col: 0})
		}
		for c := 0; c < s.dims.Size2; c++ {
			s.columnBuffer[c].SubtractSample(rowCursor.Value(), s.weightAt(weightCursor))
			rowCursor.Next()
			if weightCursor != nil {
				weightCursor.Next()
			}
		}
	}
	s.seedLive()
}

// Values returns the lazy row-major sequence of indicator outputs
// one value per cell, size1*size2 values total.
func (s *SquareSweep[S]) Values() iter.Seq[float64] {
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
