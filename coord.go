package landscape

// Coord is a (row, col) grid index. Rows grow downward, columns grow
// rightward; both may be negative transiently while an offset is being
// applied, before being checked against a Dims.
type Coord struct {
	Row, Col int
}

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{Row: c.Row + o.Row, Col: c.Col + o.Col}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{Row: c.Row - o.Row, Col: c.Col - o.Col}
}

// Dims describes a raster's extent: Size1 rows by Size2 columns.
type Dims struct {
	Size1, Size2 int
}

// Contains reports whether c addresses a valid cell of a raster with
// these dimensions.
func (d Dims) Contains(c Coord) bool {
	return c.Row >= 0 && c.Row < d.Size1 && c.Col >= 0 && c.Col < d.Size2
}

// Empty reports whether the raster has no cells at all.
func (d Dims) Empty() bool {
	return d.Size1 <= 0 || d.Size2 <= 0
}

// ElementKind classifies the kind of sample an indicator folds:
// whole pixels, edges between adjacent pixels, or patch indices
// produced by the patch pre-pass.
type ElementKind int

const (
	Pixel ElementKind = iota
	Edge
	Patch
)

func (k ElementKind) String() string {
	switch k {
	case Pixel:
		return "pixel"
	case Edge:
		return "edge"
	case Patch:
		return "patch"
	default:
		return "unknown"
	}
}

// Order selects row-major or column-major traversal of a cursor.
type Order int

const (
	RowMajor Order = iota
	ColMajor
)

// EdgeVariant selects whether an edge cursor reports both neighbours of
// an edge, or forces one side to be treated as absent (a "half edge").
// This is a performance specialisation of the full edge view, not a
// semantic change: any indicator accepting an EdgeSample must treat a
// nil side consistently whether it is absent because the edge is on
// the grid boundary or because the view forced it so.
type EdgeVariant int

const (
	EdgeFull EdgeVariant = iota
	EdgeFirstOnly
	EdgeSecondOnly
)
