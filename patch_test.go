package landscape

import "testing"

func TestDetectPatchesSingleUniformPatch(t *testing.T) {
	r := grid([][]float64{{1, 1}, {1, 1}})
	_, table, err := DetectPatches(r, Rook)
	if err != nil {
		t.Fatalf("DetectPatches error: %v", err)
	}
	if len(table) != 1 {
		t.Fatalf("len(table) = %d, want 1", len(table))
	}
	if table[0].Area != 4 {
		t.Errorf("Area = %d, want 4", table[0].Area)
	}
	if table[0].Perimeter != 8 {
		t.Errorf("Perimeter = %d, want 8", table[0].Perimeter)
	}
}

func TestDetectPatchesFourPatchesRook(t *testing.T) {
	// Diagonal pixels of the same category are NOT rook-adjacent, so
	// this produces four separate single-cell patches under Rook.
	r := grid([][]float64{{1, 2}, {2, 1}})
	labels, table, err := DetectPatches(r, Rook)
	if err != nil {
		t.Fatalf("DetectPatches error: %v", err)
	}
	if len(table) != 4 {
		t.Fatalf("len(table) = %d, want 4", len(table))
	}
	l00 := labels.At(Coord{Row: 0, Col: 0})
	l11 := labels.At(Coord{Row: 1, Col: 1})
	if l00 == l11 {
		t.Errorf("diagonal same-category cells merged under Rook connectivity")
	}
}

func TestDetectPatchesQueenMergesDiagonals(t *testing.T) {
	r := grid([][]float64{{1, 2}, {2, 1}})
	labels, table, err := DetectPatches(r, Queen)
	if err != nil {
		t.Fatalf("DetectPatches error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("len(table) = %d, want 2 under Queen connectivity", len(table))
	}
	l00 := labels.At(Coord{Row: 0, Col: 0})
	l11 := labels.At(Coord{Row: 1, Col: 1})
	if l00 != l11 {
		t.Error("diagonal same-category cells should merge under Queen connectivity")
	}
}

func TestDetectPatchesEmptyRaster(t *testing.T) {
	r := NewDenseRaster[float64](0, 0, nil)
	labels, table, err := DetectPatches(r, Rook)
	if err != nil {
		t.Fatalf("DetectPatches error: %v", err)
	}
	if table != nil {
		t.Errorf("table = %v, want nil", table)
	}
	if labels.Dims() != (Dims{}) {
		t.Errorf("labels.Dims() = %v, want zero value", labels.Dims())
	}
}

func TestPatchTableCategories(t *testing.T) {
	table := PatchTable{{Category: 3}, {Category: 1}, {Category: 3}, {Category: 2}}
	got := table.Categories()
	want := []int64{1, 2, 3}
	if len(got) != len(want) {
		t.Fatalf("Categories() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Categories()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPerimeterMinSquareAndNonSquare(t *testing.T) {
	cases := []struct {
		area int
		want int
	}{
		{0, 0},
		{1, 4},
		{4, 8},  // perfect square n=2
		{2, 6},  // n=1, area == n(n+1)
		{3, 8},  // n=1, area > n(n+1)
		{6, 10}, // n=2, area == n(n+1)
		{9, 12}, // perfect square n=3
	}
	for _, tc := range cases {
		if got := perimeterMin(tc.area); got != tc.want {
			t.Errorf("perimeterMin(%d) = %d, want %d", tc.area, got, tc.want)
		}
	}
}
