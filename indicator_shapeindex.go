package landscape

import "math"

// PatchWeightedShapeIndex averages, over the samples' patch indices,
// each patch's shape factor (perimeter / perimeterMin(area)) weighted
// by 1/area.
type PatchWeightedShapeIndex struct {
	table       PatchTable
	sum, weight float64
}

// NewPatchWeightedShapeIndex returns a Factory for a
// PatchWeightedShapeIndex indicator consuming patch indices against
// table, which is shared read-only for the lifetime of the sweep.
func NewPatchWeightedShapeIndex(table PatchTable) Factory[int] {
	return func() Indicator[int] { return &PatchWeightedShapeIndex{table: table} }
}

func (s *PatchWeightedShapeIndex) ElementKind() ElementKind { return Patch }

// perimeterMin returns the minimum possible rook perimeter for a patch
// of area A: 4n when A == n^2, 4n+2 when A <= n(n+1), else
// 4n+4, where n = floor(sqrt(A)).
func perimeterMin(area int) int {
	if area <= 0 {
		return 0
	}
	n := int(math.Sqrt(float64(area)))
	for (n+1)*(n+1) <= area {
		n++ // guard against float sqrt rounding down
	}
	switch {
	case n*n == area:
		return 4 * n
	case area <= n*(n+1):
		return 4*n + 2
	default:
		return 4*n + 4
	}
}

func (s *PatchWeightedShapeIndex) shapeWeight(patchIdx int) (factor, weight float64) {
	info := s.table[patchIdx]
	pMin := perimeterMin(info.Area)
	if pMin == 0 || info.Area == 0 {
		return 0, 0
	}
	return float64(info.Perimeter) / float64(pMin), 1 / float64(info.Area)
}

func (s *PatchWeightedShapeIndex) AddSample(patchIdx int, w float64) {
	if w == 0 {
		w = unweighted
	}
	factor, weight := s.shapeWeight(patchIdx)
	weight *= w
	s.sum += factor * weight
	s.weight += weight
}

func (s *PatchWeightedShapeIndex) SubtractSample(patchIdx int, w float64) {
	if w == 0 {
		w = unweighted
	}
	factor, weight := s.shapeWeight(patchIdx)
	weight *= w
	if s.weight < weight {
		panic("landscape: PatchWeightedShapeIndex.SubtractSample would make weight negative")
	}
	s.sum -= factor * weight
	s.weight -= weight
}

func (s *PatchWeightedShapeIndex) AddSubtotal(other Indicator[int]) {
	o := other.(*PatchWeightedShapeIndex)
	s.sum += o.sum
	s.weight += o.weight
}

func (s *PatchWeightedShapeIndex) SubtractSubtotal(other Indicator[int]) {
	o := other.(*PatchWeightedShapeIndex)
	s.sum -= o.sum
	s.weight -= o.weight
}

func (s *PatchWeightedShapeIndex) Extract() float64 {
	if s.weight <= 0 {
		return 0
	}
	return s.sum / s.weight
}
