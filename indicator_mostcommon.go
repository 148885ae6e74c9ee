package landscape

// MostCommonClass maintains a category-to-weight histogram and outputs
// the category with the largest accumulated weight, breaking ties by
// the smallest category code for determinism. The top category is
// cached and only recomputed after a mutation ("lazily sorted index",
// a mutation.
type MostCommonClass struct {
	weights map[int64]float64
	dirty   bool
	top     int64
	topSet  bool
}

// NewMostCommonClass returns a Factory for a MostCommonClass indicator.
func NewMostCommonClass() Factory[float64] {
	return func() Indicator[float64] {
		return &MostCommonClass{weights: make(map[int64]float64)}
	}
}

func (m *MostCommonClass) ElementKind() ElementKind { return Pixel }

const weightEpsilon = 1e-9

func (m *MostCommonClass) AddSample(v float64, weight float64) {
	if weight == 0 {
		weight = unweighted
	}
	cat := int64(v)
	m.weights[cat] += weight
	m.dirty = true
}

func (m *MostCommonClass) SubtractSample(v float64, weight float64) {
	if weight == 0 {
		weight = unweighted
	}
	cat := int64(v)
	remaining := m.weights[cat] - weight
	if remaining < -weightEpsilon {
		panic("landscape: MostCommonClass.SubtractSample would make a weight negative")
	}
	if remaining <= weightEpsilon {
		delete(m.weights, cat)
	} else {
		m.weights[cat] = remaining
	}
	m.dirty = true
}

func (m *MostCommonClass) AddSubtotal(other Indicator[float64]) {
	o := other.(*MostCommonClass)
	for k, w := range o.weights {
		m.weights[k] += w
	}
	m.dirty = true
}

func (m *MostCommonClass) SubtractSubtotal(other Indicator[float64]) {
	o := other.(*MostCommonClass)
	for k, w := range o.weights {
		remaining := m.weights[k] - w
		if remaining < -weightEpsilon {
			panic("landscape: MostCommonClass.SubtractSubtotal would make a weight negative")
		}
		if remaining <= weightEpsilon {
			delete(m.weights, k)
		} else {
			m.weights[k] = remaining
		}
	}
	m.dirty = true
}

func (m *MostCommonClass) Extract() float64 {
	if m.dirty {
		m.recompute()
	}
	if !m.topSet {
		return 0
	}
	return float64(m.top)
}

func (m *MostCommonClass) recompute() {
	var best int64
	var bestWeight float64
	found := false
	for cat, w := range m.weights {
		if !found || w > bestWeight || (w == bestWeight && cat < best) {
			best, bestWeight, found = cat, w, true
		}
	}
	m.top, m.topSet, m.dirty = best, found, false
}
