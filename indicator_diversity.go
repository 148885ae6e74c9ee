package landscape

import "gonum.org/v1/gonum/stat"

// ShannonDiversity is -sum(p_i * ln(p_i)) over per-category pixel
// counts, where p_i is category i's share of the samples folded in so
// far.
type ShannonDiversity struct {
	counts map[int64]int
	total  int
}

// NewShannonDiversity returns a Factory for a ShannonDiversity indicator
// over pixel samples, where the float64 sample value is treated as a
// discrete category code.
func NewShannonDiversity() Factory[float64] {
	return func() Indicator[float64] {
		return &ShannonDiversity{counts: make(map[int64]int)}
	}
}

func (s *ShannonDiversity) ElementKind() ElementKind { return Pixel }

func (s *ShannonDiversity) AddSample(v float64, _ float64) {
	s.counts[int64(v)]++
	s.total++
}

func (s *ShannonDiversity) SubtractSample(v float64, _ float64) {
	cat := int64(v)
	n, ok := s.counts[cat]
	if !ok || n == 0 {
		panic("landscape: ShannonDiversity.SubtractSample for a category not present")
	}
	if n == 1 {
		delete(s.counts, cat)
	} else {
		s.counts[cat] = n - 1
	}
	s.total--
}

func (s *ShannonDiversity) AddSubtotal(other Indicator[float64]) {
	o := other.(*ShannonDiversity)
	for k, n := range o.counts {
		s.counts[k] += n
	}
	s.total += o.total
}

func (s *ShannonDiversity) SubtractSubtotal(other Indicator[float64]) {
	o := other.(*ShannonDiversity)
	for k, n := range o.counts {
		remaining := s.counts[k] - n
		if remaining < 0 {
			panic("landscape: ShannonDiversity.SubtractSubtotal would make a count negative")
		}
		if remaining == 0 {
			delete(s.counts, k)
		} else {
			s.counts[k] = remaining
		}
	}
	s.total -= o.total
}

func (s *ShannonDiversity) Extract() float64 {
	if s.total == 0 {
		return 0
	}
	p := make([]float64, 0, len(s.counts))
	for _, n := range s.counts {
		p = append(p, float64(n)/float64(s.total))
	}
	return stat.Entropy(p)
}
