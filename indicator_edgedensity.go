package landscape

// EdgeDensity counts, over edge samples (a, b), the fraction of edges
// where both sides are present ("total") that also cross a category
// boundary ("crossing", a != b). Output defaults to 1 when total == 0,
// matching the convention that an indicator queried over an empty
// window still returns a defined neutral value.
type EdgeDensity struct {
	crossing, total int
}

// NewEdgeDensity returns a Factory for an EdgeDensity indicator.
func NewEdgeDensity() Factory[EdgeSample[float64]] {
	return func() Indicator[EdgeSample[float64]] { return &EdgeDensity{} }
}

func (e *EdgeDensity) ElementKind() ElementKind { return Edge }

func (e *EdgeDensity) AddSample(v EdgeSample[float64], _ float64) {
	if v.First == nil || v.Second == nil {
		return
	}
	e.total++
	if *v.First != *v.Second {
		e.crossing++
	}
}

func (e *EdgeDensity) SubtractSample(v EdgeSample[float64], _ float64) {
	if v.First == nil || v.Second == nil {
		return
	}
	if e.total == 0 {
		panic("landscape: EdgeDensity.SubtractSample on empty accumulator")
	}
	e.total--
	if *v.First != *v.Second {
		e.crossing--
	}
}

func (e *EdgeDensity) AddSubtotal(other Indicator[EdgeSample[float64]]) {
	o := other.(*EdgeDensity)
	e.crossing += o.crossing
	e.total += o.total
}

func (e *EdgeDensity) SubtractSubtotal(other Indicator[EdgeSample[float64]]) {
	o := other.(*EdgeDensity)
	e.crossing -= o.crossing
	e.total -= o.total
}

func (e *EdgeDensity) Extract() float64 {
	if e.total == 0 {
		return 1
	}
	return float64(e.crossing) / float64(e.total)
}
