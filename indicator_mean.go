package landscape

import "gonum.org/v1/gonum/floats"

// Mean is a running weighted mean over float64 samples: output is
// sum/weight when weight > 0, else the neutral value 0.
type Mean struct {
	// sums holds [weightedSum, totalWeight]; folded with gonum/floats
	// the same way a production numeric package reduces a pair of
	// running accumulators instead of two bare float64 locals.
	sums [2]float64
}

// NewMean returns a Factory for a Mean indicator over pixel samples.
func NewMean() Factory[float64] {
	return func() Indicator[float64] { return &Mean{} }
}

func (m *Mean) ElementKind() ElementKind { return Pixel }

func (m *Mean) AddSample(v float64, weight float64) {
	floats.AddScaled(m.sums[:], 1, []float64{v * weight, weight})
}

func (m *Mean) SubtractSample(v float64, weight float64) {
	floats.AddScaled(m.sums[:], -1, []float64{v * weight, weight})
}

func (m *Mean) AddSubtotal(other Indicator[float64]) {
	o := other.(*Mean)
	floats.Add(m.sums[:], o.sums[:])
}

func (m *Mean) SubtractSubtotal(other Indicator[float64]) {
	o := other.(*Mean)
	floats.SubTo(m.sums[:], m.sums[:], o.sums[:])
}

func (m *Mean) Extract() float64 {
	if m.sums[1] <= 0 {
		return 0
	}
	return m.sums[0] / m.sums[1]
}
