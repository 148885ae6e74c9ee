package landscape

import "iter"

// IndicatorTag names one of the indicators the facade knows how to run.
type IndicatorTag int

const (
	TagCount IndicatorTag = iota
	TagMean
	TagShannonDiversity
	TagMostCommonClass
	TagEdgeDensity
	TagEdgeList
	TagInterspersion
	TagAreaWeightedPatchSize
	TagPatchWeightedShapeIndex
	TagPatchCount
)

// WindowShape selects between a square and a circular moving window.
type WindowShape int

const (
	ShapeSquare WindowShape = iota
	ShapeCircular
)

// Window is a moving-window shape plus radius. For a square window,
// Radius is truncated to an int (the half-side in cells); for a
// circular window it is the real-valued Euclidean radius, and a cell
// at offset (dr,dc) is inside iff dr^2+dc^2 <= floor(Radius)^2.
type Window struct {
	Shape  WindowShape
	Radius float64
}

// SquareWindow returns a square Window with the given integer radius.
func SquareWindow(radius int) Window { return Window{Shape: ShapeSquare, Radius: float64(radius)} }

// CircularWindow returns a circular Window with the given real radius.
func CircularWindow(radius float64) Window { return Window{Shape: ShapeCircular, Radius: radius} }

// patchDependent reports whether tag needs the patch pre-pass (component
// D) run over r before the sweep can start.
func patchDependent(tag IndicatorTag) bool {
	switch tag {
	case TagAreaWeightedPatchSize, TagPatchWeightedShapeIndex, TagPatchCount:
		return true
	default:
		return false
	}
}

func edgeValued(tag IndicatorTag) bool {
	switch tag {
	case TagEdgeDensity, TagEdgeList, TagInterspersion:
		return true
	default:
		return false
	}
}

// Run dispatches tag over r (and, for weighted indicators, weight) using
// window, returning the lazy row-major sequence of indicator outputs.
// queen selects 8-connectivity for the patch pre-pass that
// patch-dependent indicators require; it is ignored otherwise. weight
// may be nil, meaning every sample carries the implicit weight 1.0.
func Run(tag IndicatorTag, window Window, r Raster[float64], weight Raster[float64], queen bool) (iter.Seq[float64], error) {
	if r == nil {
		return nil, ErrShapeMismatch
	}
	dims := r.Dims()
	if weight != nil && weight.Dims() != dims {
		return nil, ErrShapeMismatch
	}

	switch {
	case patchDependent(tag):
		connectivity := Rook
		if queen {
			connectivity = Queen
		}
		patchRaster, table, err := DetectPatches(r, connectivity)
		if err != nil {
			return nil, err
		}
		var factory Factory[int]
		switch tag {
		case TagAreaWeightedPatchSize:
			factory = NewAreaWeightedPatchSize(table)
		case TagPatchWeightedShapeIndex:
			factory = NewPatchWeightedShapeIndex(table)
		case TagPatchCount:
			factory = NewPatchCount()
		}
		return runPatch(patchRaster, weight, window, factory), nil

	case edgeValued(tag):
		var factory Factory[EdgeSample[float64]]
		switch tag {
		case TagEdgeDensity:
			factory = NewEdgeDensity()
		case TagEdgeList:
			factory = NewEdgeList()
		case TagInterspersion:
			factory = NewInterspersion()
		}
		return runEdge(r, window, factory), nil

	default:
		var factory Factory[float64]
		switch tag {
		case TagCount:
			factory = NewCount[float64](Pixel)
		case TagMean:
			factory = NewMean()
		case TagShannonDiversity:
			factory = NewShannonDiversity()
		case TagMostCommonClass:
			factory = NewMostCommonClass()
		default:
			return nil, ErrUnknownIndicator
		}
		return runPixel(r, weight, window, factory), nil
	}
}

func runPixel(r Raster[float64], weight Raster[float64], window Window, factory Factory[float64]) iter.Seq[float64] {
	if window.Shape == ShapeSquare {
		return NewWeightedSquareSweep(r, weight, int(window.Radius), factory).Values()
	}
	return NewWeightedCircularSweep(r, weight, window.Radius, factory).Values()
}

func runPatch(patchRaster *PatchIndex, weight Raster[float64], window Window, factory Factory[int]) iter.Seq[float64] {
	if window.Shape == ShapeSquare {
		return NewWeightedSquareSweep[int](patchRaster, weight, int(window.Radius), factory).Values()
	}
	return NewWeightedCircularSweep[int](patchRaster, weight, window.Radius, factory).Values()
}

func runEdge(r Raster[float64], window Window, factory Factory[EdgeSample[float64]]) iter.Seq[float64] {
	if window.Shape == ShapeSquare {
		return NewSquareEdgeSweep(r, int(window.Radius), factory).Values()
	}
	return NewCircularEdgeSweep(r, window.Radius, factory).Values()
}
