package landscape

// categoryPair is an unordered pair of category codes identifying the
// two sides of an edge. The original C++ source packed two 2-D
// coordinates into a lossy "/1000 %1000" integer encoding that breaks
// above 1000 rows/columns; this rewrite keys directly on the
// pair of category values instead.
type categoryPair struct {
	A, B int64
}

func newCategoryPair(a, b int64) categoryPair {
	if a > b {
		a, b = b, a
	}
	return categoryPair{A: a, B: b}
}

// EdgeList is a sparse multiset of category-pair edge descriptors.
// Extract returns the number of distinct edges (descriptor keys with a
// positive multiplicity), not the total multiplicity. Interspersion
// keys its own between-category edge frequency table on the same
// categoryPair type.
type EdgeList struct {
	counts map[categoryPair]int
}

// NewEdgeList returns a Factory for an EdgeList indicator.
func NewEdgeList() Factory[EdgeSample[float64]] {
	return func() Indicator[EdgeSample[float64]] {
		return &EdgeList{counts: make(map[categoryPair]int)}
	}
}

func (e *EdgeList) ElementKind() ElementKind { return Edge }

func (e *EdgeList) key(v EdgeSample[float64]) (categoryPair, bool) {
	if v.First == nil || v.Second == nil {
		return categoryPair{}, false
	}
	return newCategoryPair(int64(*v.First), int64(*v.Second)), true
}

func (e *EdgeList) AddSample(v EdgeSample[float64], _ float64) {
	k, ok := e.key(v)
	if !ok {
		return
	}
	e.counts[k]++
}

func (e *EdgeList) SubtractSample(v EdgeSample[float64], _ float64) {
	k, ok := e.key(v)
	if !ok {
		return
	}
	n, present := e.counts[k]
	if !present || n <= 0 {
		panic("landscape: EdgeList.SubtractSample for an edge not present")
	}
	if n == 1 {
		delete(e.counts, k)
	} else {
		e.counts[k] = n - 1
	}
}

func (e *EdgeList) AddSubtotal(other Indicator[EdgeSample[float64]]) {
	o := other.(*EdgeList)
	for k, n := range o.counts {
		e.counts[k] += n
	}
}

func (e *EdgeList) SubtractSubtotal(other Indicator[EdgeSample[float64]]) {
	o := other.(*EdgeList)
	for k, n := range o.counts {
		remaining := e.counts[k] - n
		if remaining < 0 {
			panic("landscape: EdgeList.SubtractSubtotal would make a count negative")
		}
		if remaining == 0 {
			delete(e.counts, k)
		} else {
			e.counts[k] = remaining
		}
	}
}

func (e *EdgeList) Extract() float64 { return float64(len(e.counts)) }
