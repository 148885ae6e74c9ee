package landscape

import "testing"

func TestEdgeListCountsDistinctPairs(t *testing.T) {
	e := NewEdgeList()()
	e.AddSample(EdgeSample[float64]{First: f64(1), Second: f64(2)}, 1)
	e.AddSample(EdgeSample[float64]{First: f64(2), Second: f64(1)}, 1) // same unordered pair
	e.AddSample(EdgeSample[float64]{First: f64(1), Second: f64(3)}, 1)
	if got, want := e.Extract(), 2.0; got != want {
		t.Errorf("Extract() = %v, want %v distinct pairs", got, want)
	}
}

func TestEdgeListIgnoresBoundaryEdges(t *testing.T) {
	e := NewEdgeList()()
	e.AddSample(EdgeSample[float64]{First: nil, Second: f64(1)}, 1)
	if got, want := e.Extract(), 0.0; got != want {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
}

func TestEdgeListAddSubtractInverse(t *testing.T) {
	e := NewEdgeList()()
	sample := EdgeSample[float64]{First: f64(1), Second: f64(2)}
	e.AddSample(sample, 1)
	e.AddSample(sample, 1) // same pair twice: still 1 distinct descriptor
	if got, want := e.Extract(), 1.0; got != want {
		t.Errorf("Extract() = %v, want %v", got, want)
	}
	e.SubtractSample(sample, 1)
	if got, want := e.Extract(), 1.0; got != want {
		t.Errorf("Extract() after one subtract = %v, want %v", got, want)
	}
	e.SubtractSample(sample, 1)
	if got, want := e.Extract(), 0.0; got != want {
		t.Errorf("Extract() after both subtracted = %v, want %v", got, want)
	}
}

func TestEdgeListSubtractMissingPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic subtracting an edge never added")
		}
	}()
	e := NewEdgeList()()
	e.SubtractSample(EdgeSample[float64]{First: f64(1), Second: f64(2)}, 1)
}
