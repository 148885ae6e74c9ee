package landscape

import (
	"slices"

	"github.com/samber/lo"
)

// Connectivity selects 4-connected (rook) or 8-connected (queen)
// adjacency for the patch pre-pass.
type Connectivity int

const (
	Rook Connectivity = iota
	Queen
)

// rookOffsets are the four orthogonal neighbour offsets; perimeter is a
// rook concept even under queen connectivity.
var rookOffsets = [4]Coord{{Row: -1, Col: 0}, {Row: 1, Col: 0}, {Row: 0, Col: -1}, {Row: 0, Col: 1}}

// diagonalOffsets are the additional four neighbours queen connectivity
// enqueues; they never contribute to perimeter.
var diagonalOffsets = [4]Coord{{Row: -1, Col: -1}, {Row: -1, Col: 1}, {Row: 1, Col: -1}, {Row: 1, Col: 1}}

// PatchInfo is one row of the patch table produced by DetectPatches.
type PatchInfo struct {
	Category  int64
	Area      int
	Perimeter int
}

// PatchTable maps patch index (0..P-1) to its category/area/perimeter.
type PatchTable []PatchInfo

// Categories returns the distinct category values present across the
// table, in ascending order.
func (t PatchTable) Categories() []int64 {
	seen := make(map[int64]struct{}, len(t))
	for _, info := range t {
		seen[info.Category] = struct{}{}
	}
	cats := lo.Keys(seen)
	slices.Sort(cats)
	return cats
}

// PatchIndex is the per-cell patch-index raster produced by
// DetectPatches: Raster[int] backed by a dense slice, ready to feed a
// square or circular pixel sweep for patch-valued indicators.
type PatchIndex = DenseRaster[int]

// DetectPatches labels the 4- or 8-connected components of r using a
// FIFO worklist: FIFO, not LIFO, keeps the worklist length
// bounded by the perimeter rather than the area, which matters for
// large rasters with large uniform patches. Returns the label raster
// and the patch table indexed 0..P-1.
func DetectPatches(r Raster[float64], connectivity Connectivity) (*PatchIndex, PatchTable, error) {
	dims := r.Dims()
	if dims.Empty() {
		return NewDenseRaster[int](dims.Size1, dims.Size2, nil), nil, nil
	}

	labels := make([]int, dims.Size1*dims.Size2)
	for i := range labels {
		labels[i] = -1
	}
	idx := func(c Coord) int { return c.Row*dims.Size2 + c.Col }

	cursor := r.Pixel(RowMajor)
	at := func(c Coord) float64 {
		cursor.Seek(c)
		return cursor.Value()
	}

	var table PatchTable
	worklist := make([]Coord, 0, dims.Size1+dims.Size2)

	for row := 0; row < dims.Size1; row++ {
		for col := 0; col < dims.Size2; col++ {
			seed := Coord{Row: row, Col: col}
			if labels[idx(seed)] != -1 {
				continue
			}
			category := at(seed)
			patchIdx := len(table)
			labels[idx(seed)] = patchIdx
			info := PatchInfo{Category: int64(category), Area: 1}

			worklist = worklist[:0]
			worklist = append(worklist, seed)
			for len(worklist) > 0 {
				cell := worklist[0]
				worklist = worklist[1:]

				for _, off := range rookOffsets {
					n := cell.Add(off)
					if !dims.Contains(n) {
						info.Perimeter++
						continue
					}
					if at(n) != category {
						info.Perimeter++
						continue
					}
					if labels[idx(n)] != -1 {
						continue
					}
					labels[idx(n)] = patchIdx
					info.Area++
					worklist = append(worklist, n)
				}

				if connectivity == Queen {
					for _, off := range diagonalOffsets {
						n := cell.Add(off)
						if !dims.Contains(n) || at(n) != category || labels[idx(n)] != -1 {
							continue
						}
						labels[idx(n)] = patchIdx
						info.Area++
						worklist = append(worklist, n)
					}
				}
			}
			table = append(table, info)
		}
	}

	return NewDenseRaster[int](dims.Size1, dims.Size2, labels), table, nil
}
