package landscape

import (
	"math"
	"testing"
)

func TestScenarioSingleCellSquareCount(t *testing.T) {
	r := grid([][]float64{{7}})
	got := collect(NewSquareSweep(r, 3, NewCount[float64](Pixel)).Values())
	want := []float64{1}
	if diff := diffFloats(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestScenarioUniformGridEdgeDensityIsZero(t *testing.T) {
	r := grid([][]float64{{5, 5, 5}, {5, 5, 5}, {5, 5, 5}})
	got := collect(NewSquareEdgeSweep(r, 1, NewEdgeDensity()).Values())
	for i, v := range got {
		if v != 0 {
			t.Errorf("cell %d density = %v, want 0", i, v)
		}
	}
}

func TestScenarioCheckerboardEdgeDensityCentreIsOne(t *testing.T) {
	r := grid([][]float64{{1, 2, 1}, {2, 1, 2}, {1, 2, 1}})
	got := collect(NewSquareEdgeSweep(r, 1, NewEdgeDensity()).Values())
	centre := got[1*3+1]
	if centre != 1.0 {
		t.Errorf("centre density = %v, want 1.0", centre)
	}
}

func TestScenarioSinglePatchAreaWeightedSize(t *testing.T) {
	data := make([]float64, 16)
	for i := range data {
		data[i] = 3
	}
	r := NewDenseRaster[float64](4, 4, data)
	patchRaster, table, err := DetectPatches(r, Queen)
	if err != nil {
		t.Fatalf("DetectPatches error: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("len(table) = %d, want 1", len(table))
	}
	if table[0].Area != 16 || table[0].Perimeter != 16 {
		t.Fatalf("table[0] = %+v, want area=16 perimeter=16", table[0])
	}
	got := collect(NewSquareSweep[int](patchRaster, 1, NewAreaWeightedPatchSize(table)).Values())
	for i, v := range got {
		if v != 16.0 {
			t.Errorf("cell %d = %v, want 16.0", i, v)
		}
	}
}

func TestScenarioTwoPatchShannonDiversityCircularRadius2(t *testing.T) {
	r := grid([][]float64{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1},
		{1, 1, 1, 1, 1},
	})
	got := collect(NewCircularSweep(r, 2, NewShannonDiversity()).Values())
	centre := got[2*5+2]
	want := -(9.0/13.0)*math.Log(9.0/13.0) - (4.0/13.0)*math.Log(4.0/13.0)
	if diff := centre - want; diff > 1e-6 || diff < -1e-6 {
		t.Errorf("centre = %v, want %v", centre, want)
	}
}

func TestScenarioRoundTripIdentitySquareRadiusZero(t *testing.T) {
	r := testRaster5x6()
	got := collect(NewSquareSweep(r, 0, NewCount[float64](Pixel)).Values())
	for i, v := range got {
		if v != 1 {
			t.Errorf("cell %d count = %v, want 1", i, v)
		}
	}
}
