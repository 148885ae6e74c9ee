package landscape

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// Interspersion is the Shannon entropy of the between-category edge
// frequency table, normalised by log(m(m-1)/2) where m is the number of
// distinct categories touching any edge in the window. Output is 0
// when m <= 1 (too few categories for the normaliser to be meaningful)
// and also when m == 2, since a single possible category pair carries
// no entropy and the normaliser would be log(1) == 0.
type Interspersion struct {
	pairCounts map[categoryPair]int
	catCount   map[int64]int
}

// NewInterspersion returns a Factory for an Interspersion indicator.
func NewInterspersion() Factory[EdgeSample[float64]] {
	return func() Indicator[EdgeSample[float64]] {
		return &Interspersion{
			pairCounts: make(map[categoryPair]int),
			catCount:   make(map[int64]int),
		}
	}
}

func (in *Interspersion) ElementKind() ElementKind { return Edge }

func (in *Interspersion) fold(v EdgeSample[float64], delta int) {
	if v.First == nil || v.Second == nil {
		return
	}
	a, b := int64(*v.First), int64(*v.Second)
	addCount(in.catCount, a, delta)
	addCount(in.catCount, b, delta)
	if a != b {
		k := newCategoryPair(a, b)
		n := in.pairCounts[k] + delta
		if n < 0 {
			panic("landscape: Interspersion subtraction would make a count negative")
		}
		if n == 0 {
			delete(in.pairCounts, k)
		} else {
			in.pairCounts[k] = n
		}
	}
}

func addCount(m map[int64]int, key int64, delta int) {
	n := m[key] + delta
	if n < 0 {
		panic("landscape: Interspersion subtraction would make a category count negative")
	}
	if n == 0 {
		delete(m, key)
	} else {
		m[key] = n
	}
}

func (in *Interspersion) AddSample(v EdgeSample[float64], _ float64)      { in.fold(v, 1) }
func (in *Interspersion) SubtractSample(v EdgeSample[float64], _ float64) { in.fold(v, -1) }

func (in *Interspersion) AddSubtotal(other Indicator[EdgeSample[float64]]) {
	o := other.(*Interspersion)
	for k, n := range o.pairCounts {
		in.pairCounts[k] += n
	}
	for k, n := range o.catCount {
		in.catCount[k] += n
	}
}

func (in *Interspersion) SubtractSubtotal(other Indicator[EdgeSample[float64]]) {
	o := other.(*Interspersion)
	for k, n := range o.pairCounts {
		addPairCount(in.pairCounts, k, -n)
	}
	for k, n := range o.catCount {
		addCount(in.catCount, k, -n)
	}
}

func addPairCount(m map[categoryPair]int, key categoryPair, delta int) {
	n := m[key] + delta
	if n < 0 {
		panic("landscape: Interspersion subtraction would make a pair count negative")
	}
	if n == 0 {
		delete(m, key)
	} else {
		m[key] = n
	}
}

func (in *Interspersion) Extract() float64 {
	m := len(in.catCount)
	if m <= 2 {
		return 0
	}
	total := 0
	for _, n := range in.pairCounts {
		total += n
	}
	if total == 0 {
		return 0
	}
	p := make([]float64, 0, len(in.pairCounts))
	for _, n := range in.pairCounts {
		p = append(p, float64(n)/float64(total))
	}
	entropy := stat.Entropy(p)
	normalizer := math.Log(float64(m*(m-1)) / 2)
	if normalizer <= 0 {
		return 0
	}
	return entropy / normalizer
}
