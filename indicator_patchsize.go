package landscape

// AreaWeightedPatchSize is the area-weighted mean of patch area over
// the samples' patch indices: each sample contributes its patch's area
// weighted by weight (1 when the caller passes no explicit weight).
// The source's unweighted overload decrements the running sum by the
// sample's area directly and the weighted overload multiplies by w
// both are the same computation when w == 1, so this
// rewrite uses a single weighted code path throughout.
type AreaWeightedPatchSize struct {
	table        PatchTable
	sum, weight float64
}

// NewAreaWeightedPatchSize returns a Factory for an
// AreaWeightedPatchSize indicator consuming patch indices against
// table, which is shared read-only for the lifetime of the sweep.
func NewAreaWeightedPatchSize(table PatchTable) Factory[int] {
	return func() Indicator[int] { return &AreaWeightedPatchSize{table: table} }
}

func (a *AreaWeightedPatchSize) ElementKind() ElementKind { return Patch }

func (a *AreaWeightedPatchSize) effectiveWeight(w float64) float64 {
	if w == 0 {
		return unweighted
	}
	return w
}

func (a *AreaWeightedPatchSize) AddSample(patchIdx int, w float64) {
	w = a.effectiveWeight(w)
	a.sum += float64(a.table[patchIdx].Area) * w
	a.weight += w
}

func (a *AreaWeightedPatchSize) SubtractSample(patchIdx int, w float64) {
	w = a.effectiveWeight(w)
	if a.weight < w {
		panic("landscape: AreaWeightedPatchSize.SubtractSample would make weight negative")
	}
	a.sum -= float64(a.table[patchIdx].Area) * w
	a.weight -= w
}

func (a *AreaWeightedPatchSize) AddSubtotal(other Indicator[int]) {
	o := other.(*AreaWeightedPatchSize)
	a.sum += o.sum
	a.weight += o.weight
}

func (a *AreaWeightedPatchSize) SubtractSubtotal(other Indicator[int]) {
	o := other.(*AreaWeightedPatchSize)
	a.sum -= o.sum
	a.weight -= o.weight
}

func (a *AreaWeightedPatchSize) Extract() float64 {
	if a.weight <= 0 {
		return 0
	}
	return a.sum / a.weight
}

// PatchCount counts the distinct patch indices touched by the window.
// It is a natural companion to AreaWeightedPatchSize, built on the same
// add/subtract-subtotal contract.
type PatchCount struct {
	seen map[int]int
}

// NewPatchCount returns a Factory for a PatchCount indicator.
func NewPatchCount() Factory[int] {
	return func() Indicator[int] { return &PatchCount{seen: make(map[int]int)} }
}

func (p *PatchCount) ElementKind() ElementKind { return Patch }

func (p *PatchCount) AddSample(patchIdx int, _ float64) { p.seen[patchIdx]++ }

func (p *PatchCount) SubtractSample(patchIdx int, _ float64) {
	n, ok := p.seen[patchIdx]
	if !ok || n == 0 {
		panic("landscape: PatchCount.SubtractSample for a patch not present")
	}
	if n == 1 {
		delete(p.seen, patchIdx)
	} else {
		p.seen[patchIdx] = n - 1
	}
}

func (p *PatchCount) AddSubtotal(other Indicator[int]) {
	o := other.(*PatchCount)
	for k, n := range o.seen {
		p.seen[k] += n
	}
}

func (p *PatchCount) SubtractSubtotal(other Indicator[int]) {
	o := other.(*PatchCount)
	for k, n := range o.seen {
		remaining := p.seen[k] - n
		if remaining < 0 {
			panic("landscape: PatchCount.SubtractSubtotal would make a count negative")
		}
		if remaining == 0 {
			delete(p.seen, k)
		} else {
			p.seen[k] = remaining
		}
	}
}

func (p *PatchCount) Extract() float64 { return float64(len(p.seen)) }
