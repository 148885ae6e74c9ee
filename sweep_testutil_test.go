package landscape

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// floatApprox tolerates the rounding noise a running-sum accumulator
// picks up that a from-scratch brute-force reference does not.
var floatApprox = cmpopts.EquateApprox(1e-9, 0)

// diffFloats renders a go-cmp diff between a brute-force reference and
// an engine's output, empty when they agree within floatApprox.
func diffFloats(want, got []float64) string {
	return cmp.Diff(want, got, floatApprox)
}

// This file holds brute-force reference implementations used to check
// the incremental sweep engines against the window definitions they
// are supposed to implement, independently of the engines' own
// internal buffer bookkeeping.

// naiveSquarePixel evaluates factory over every cell's square window
// [row-radius,row+radius] x [col-radius,col+radius] (clipped to the
// raster) by rebuilding the indicator from scratch at each cell.
func naiveSquarePixel(r Raster[float64], weight Raster[float64], radius int, factory Factory[float64]) []float64 {
	dims := r.Dims()
	pc := r.Pixel(RowMajor)
	var wc PixelCursor[float64]
	if weight != nil {
		wc = weight.Pixel(RowMajor)
	}
	out := make([]float64, 0, dims.Size1*dims.Size2)
	for row := 0; row < dims.Size1; row++ {
		for col := 0; col < dims.Size2; col++ {
			ind := factory()
			for dr := -radius; dr <= radius; dr++ {
				nr := row + dr
				if nr < 0 || nr >= dims.Size1 {
					continue
				}
				for dc := -radius; dc <= radius; dc++ {
					nc := col + dc
					if nc < 0 || nc >= dims.Size2 {
						continue
					}
					pc.Seek(Coord{Row: nr, Col: nc})
					w := unweighted
					if wc != nil {
						wc.Seek(Coord{Row: nr, Col: nc})
						w = wc.Value()
					}
					ind.AddSample(pc.Value(), w)
				}
			}
			out = append(out, ind.Extract())
		}
	}
	return out
}

// naiveCircularPixel evaluates factory over every cell's circular
// window dr^2+dc^2 <= floor(radius)^2 by rebuilding from scratch.
func naiveCircularPixel(r Raster[float64], weight Raster[float64], radius float64, factory Factory[float64]) []float64 {
	dims := r.Dims()
	ir := intFloor(radius)
	r2 := ir * ir
	pc := r.Pixel(RowMajor)
	var wc PixelCursor[float64]
	if weight != nil {
		wc = weight.Pixel(RowMajor)
	}
	out := make([]float64, 0, dims.Size1*dims.Size2)
	for row := 0; row < dims.Size1; row++ {
		for col := 0; col < dims.Size2; col++ {
			ind := factory()
			for dr := -ir; dr <= ir; dr++ {
				nr := row + dr
				if nr < 0 || nr >= dims.Size1 {
					continue
				}
				for dc := -ir; dc <= ir; dc++ {
					if dr*dr+dc*dc > r2 {
						continue
					}
					nc := col + dc
					if nc < 0 || nc >= dims.Size2 {
						continue
					}
					pc.Seek(Coord{Row: nr, Col: nc})
					w := unweighted
					if wc != nil {
						wc.Seek(Coord{Row: nr, Col: nc})
						w = wc.Value()
					}
					ind.AddSample(pc.Value(), w)
				}
			}
			out = append(out, ind.Extract())
		}
	}
	return out
}

func intFloor(x float64) int {
	n := int(x)
	if float64(n) > x {
		n--
	}
	return n
}

// naiveSquareEdge evaluates factory over every cell's square window of
// h-edges and v-edges, coded independently of SquareEdgeSweep's column
// buffers: h-edges have row key in [row-radius,row+radius] clipped to
// [0,size1] and col key in [col-radius,col+radius] clipped to
// [0,size2); v-edges have row key clipped to [0,size1) and col key
// clipped to [0,size2] (one wider than a pixel column range).
func naiveSquareEdge[T any](r Raster[T], radius int, factory Factory[EdgeSample[T]]) []float64 {
	dims := r.Dims()
	hc := r.HEdge(RowMajor, EdgeFull)
	vc := r.VEdge(RowMajor, EdgeFull)
	out := make([]float64, 0, dims.Size1*dims.Size2)
	for row := 0; row < dims.Size1; row++ {
		for col := 0; col < dims.Size2; col++ {
			ind := factory()
			for hr := row - radius; hr <= row+radius; hr++ {
				if hr < 0 || hr > dims.Size1 {
					continue
				}
				for hcCol := col - radius; hcCol <= col+radius; hcCol++ {
					if hcCol < 0 || hcCol >= dims.Size2 {
						continue
					}
					hc.Seek(Coord{Row: hr, Col: hcCol})
					ind.AddSample(hc.Value(), unweighted)
				}
			}
			for vr := row - radius; vr <= row+radius; vr++ {
				if vr < 0 || vr >= dims.Size1 {
					continue
				}
				for vcCol := col - radius; vcCol <= col+radius; vcCol++ {
					if vcCol < 0 || vcCol > dims.Size2 {
						continue
					}
					vc.Seek(Coord{Row: vr, Col: vcCol})
					ind.AddSample(vc.Value(), unweighted)
				}
			}
			out = append(out, ind.Extract())
		}
	}
	return out
}

func collect(seq func(func(float64) bool)) []float64 {
	var out []float64
	seq(func(v float64) bool {
		out = append(out, v)
		return true
	})
	return out
}
