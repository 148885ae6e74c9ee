package landscape

// Raster is the external collaborator this package consumes: a bounded
// 2-D array abstraction exposing row- and column-major cursors over
// pixels and over the horizontal/vertical edges between pixels. The
// on-disk format and tile I/O behind a concrete Raster are out of
// scope for this package; DenseRaster is the in-memory
// reference implementation used by the sweep engines' own tests.
//
// Implementations must be safe for concurrent *reads* from independent
// cursors: the sweep engines hold several live cursors into the same
// Raster at once but never mutate it.
type Raster[T any] interface {
	Size1() int
	Size2() int
	Dims() Dims

	// Pixel returns a cursor over pixel values positioned at the first
	// cell in the given traversal order.
	Pixel(order Order) PixelCursor[T]

	// HEdge returns a cursor over horizontal edges (between row r-1 and
	// row r) in the given traversal order and variant.
	HEdge(order Order, variant EdgeVariant) EdgeCursor[T]

	// VEdge returns a cursor over vertical edges (between col c-1 and
	// col c) in the given traversal order and variant.
	VEdge(order Order, variant EdgeVariant) EdgeCursor[T]
}

// Cursor is the behaviour shared by every cursor kind: positioned
// construction, linear advance, and a coordinate reader. Cursors are
// forward-only; Seek may jump to an arbitrary coordinate but never
// rewinds implicitly.
type Cursor interface {
	// Coord returns the coordinate the cursor is positioned at. Its
	// meaning is cursor-kind specific: for edge cursors it is the
	// coordinate that keys the edge — the cell below for an
	// h-edge, the cell to the right for a v-edge.
	Coord() Coord

	// Next advances the cursor by one position in its traversal order.
	// Calling Next when Done is true is undefined.
	Next()

	// Done reports whether the cursor has advanced past the end of its
	// traversal.
	Done() bool
}

// PixelCursor walks pixel samples of type T.
type PixelCursor[T any] interface {
	Cursor
	Value() T
	// Seek repositions the cursor at coord, which must be in-grid.
	Seek(coord Coord)
}

// EdgeSample is the pair of neighbours straddling one edge: First is
// the upper cell for an h-edge or the left cell for a v-edge, Second is
// the lower or right cell. A nil pointer means that side is absent,
// either because the edge is on the grid boundary or because the
// cursor is a first-only/second-only half-edge view.
type EdgeSample[T any] struct {
	First, Second *T
}

// EdgeCursor walks edge samples of type T.
type EdgeCursor[T any] interface {
	Cursor
	Value() EdgeSample[T]
	Seek(coord Coord)
}
