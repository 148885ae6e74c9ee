package landscape

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRunPlainPixelIndicator(t *testing.T) {
	r := testRaster5x6()
	seq, err := Run(TagMean, SquareWindow(1), r, nil, false)
	require.NoError(t, err)
	got := collect(seq)
	want := naiveSquarePixel(r, nil, 1, NewMean())
	if diff := diffFloats(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRunEdgeValuedIndicator(t *testing.T) {
	r := testRaster5x6()
	seq, err := Run(TagEdgeDensity, SquareWindow(1), r, nil, false)
	require.NoError(t, err)
	got := collect(seq)
	want := naiveSquareEdge(r, 1, NewEdgeDensity())
	if diff := diffFloats(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRunPatchDependentIndicator(t *testing.T) {
	data := make([]float64, 16)
	for i := range data {
		data[i] = 3
	}
	r := NewDenseRaster[float64](4, 4, data)
	seq, err := Run(TagAreaWeightedPatchSize, SquareWindow(1), r, nil, true)
	require.NoError(t, err)
	got := collect(seq)
	for i, v := range got {
		if v != 16.0 {
			t.Errorf("cell %d = %v, want 16.0", i, v)
		}
	}
}

func TestRunCircularWindow(t *testing.T) {
	r := testRaster5x6()
	seq, err := Run(TagCount, CircularWindow(2), r, nil, false)
	require.NoError(t, err)
	got := collect(seq)
	want := naiveCircularPixel(r, nil, 2, NewCount[float64](Pixel))
	if diff := diffFloats(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRunNilRasterIsShapeMismatch(t *testing.T) {
	_, err := Run(TagMean, SquareWindow(1), nil, nil, false)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestRunWeightShapeMismatch(t *testing.T) {
	r := testRaster5x6()
	weight := grid([][]float64{{1, 1}, {1, 1}})
	_, err := Run(TagMean, SquareWindow(1), r, weight, false)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestRunWeightedMean(t *testing.T) {
	r := testRaster5x6()
	weight := grid([][]float64{
		{1, 2, 1, 1, 2, 1},
		{2, 1, 1, 1, 1, 2},
		{1, 1, 2, 2, 1, 1},
		{1, 1, 1, 1, 1, 1},
		{2, 2, 1, 1, 1, 2},
	})
	seq, err := Run(TagMean, SquareWindow(1), r, weight, false)
	require.NoError(t, err)
	got := collect(seq)
	want := naiveSquarePixel(r, weight, 1, NewMean())
	if diff := diffFloats(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestSquareWindowAndCircularWindowConstructors(t *testing.T) {
	sq := SquareWindow(3)
	if sq.Shape != ShapeSquare || sq.Radius != 3 {
		t.Errorf("SquareWindow(3) = %+v", sq)
	}
	circ := CircularWindow(2.5)
	if circ.Shape != ShapeCircular || circ.Radius != 2.5 {
		t.Errorf("CircularWindow(2.5) = %+v", circ)
	}
}
