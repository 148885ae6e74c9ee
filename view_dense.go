package landscape

// DenseRaster is the in-memory reference Raster implementation: a flat,
// row-major slice of samples. It exists so the sweep engines (and their
// tests) have a concrete Raster to work against; real deployments back
// Raster with whatever tile-I/O layer owns the on-disk format
// out of scope here).
type DenseRaster[T any] struct {
	dims Dims
	data []T
}

// NewDenseRaster wraps data (row-major, len(data) == size1*size2) as a
// Raster of the given dimensions.
func NewDenseRaster[T any](size1, size2 int, data []T) *DenseRaster[T] {
	if len(data) != size1*size2 {
		panic("landscape: DenseRaster data length does not match dimensions")
	}
	return &DenseRaster[T]{dims: Dims{Size1: size1, Size2: size2}, data: data}
}

func (d *DenseRaster[T]) Size1() int  { return d.dims.Size1 }
func (d *DenseRaster[T]) Size2() int  { return d.dims.Size2 }
func (d *DenseRaster[T]) Dims() Dims  { return d.dims }
func (d *DenseRaster[T]) At(c Coord) T { return d.data[c.Row*d.dims.Size2+c.Col] }
func (d *DenseRaster[T]) Set(c Coord, v T) { d.data[c.Row*d.dims.Size2+c.Col] = v }

func (d *DenseRaster[T]) Pixel(order Order) PixelCursor[T] {
	return newDensePixelCursor(d, order)
}

func (d *DenseRaster[T]) HEdge(order Order, variant EdgeVariant) EdgeCursor[T] {
	return newDenseHEdgeCursor(d, order, variant)
}

func (d *DenseRaster[T]) VEdge(order Order, variant EdgeVariant) EdgeCursor[T] {
	return newDenseVEdgeCursor(d, order, variant)
}

// densePixelCursor walks pixels of a DenseRaster in row- or column-major
// order.
type densePixelCursor[T any] struct {
	r           *DenseRaster[T]
	order       Order
	outer, inner int
	outerLimit, innerLimit int
	done        bool
}

func newDensePixelCursor[T any](r *DenseRaster[T], order Order) *densePixelCursor[T] {
	c := &densePixelCursor[T]{r: r, order: order}
	if order == RowMajor {
		c.outerLimit, c.innerLimit = r.dims.Size1, r.dims.Size2
	} else {
		c.outerLimit, c.innerLimit = r.dims.Size2, r.dims.Size1
	}
	c.done = c.outerLimit == 0 || c.innerLimit == 0
	return c
}

func (c *densePixelCursor[T]) Coord() Coord {
	if c.order == RowMajor {
		return Coord{Row: c.outer, Col: c.inner}
	}
	return Coord{Row: c.inner, Col: c.outer}
}

func (c *densePixelCursor[T]) Value() T { return c.r.At(c.Coord()) }

func (c *densePixelCursor[T]) Next() {
	c.inner++
	if c.inner >= c.innerLimit {
		c.inner = 0
		c.outer++
	}
	c.done = c.outer >= c.outerLimit
}

func (c *densePixelCursor[T]) Done() bool { return c.done }

func (c *densePixelCursor[T]) Seek(coord Coord) {
	if c.order == RowMajor {
		c.outer, c.inner = coord.Row, coord.Col
	} else {
		c.outer, c.inner = coord.Col, coord.Row
	}
	c.done = c.outer >= c.outerLimit || c.inner >= c.innerLimit
}

// denseHEdgeCursor walks horizontal edges: the key row ranges over
// [0, size1] inclusive (size1+1 positions, including the two boundary
// half edges), the key column over [0, size2).
type denseHEdgeCursor[T any] struct {
	r                       *DenseRaster[T]
	order                   Order
	variant                 EdgeVariant
	outer, inner            int
	outerLimit, innerLimit  int
	done                    bool
}

func newDenseHEdgeCursor[T any](r *DenseRaster[T], order Order, variant EdgeVariant) *denseHEdgeCursor[T] {
	c := &denseHEdgeCursor[T]{r: r, order: order, variant: variant}
	if order == RowMajor {
		c.outerLimit, c.innerLimit = r.dims.Size1+1, r.dims.Size2
	} else {
		c.outerLimit, c.innerLimit = r.dims.Size2, r.dims.Size1+1
	}
	c.done = c.outerLimit == 0 || c.innerLimit == 0
	return c
}

func (c *denseHEdgeCursor[T]) Coord() Coord {
	if c.order == RowMajor {
		return Coord{Row: c.outer, Col: c.inner}
	}
	return Coord{Row: c.inner, Col: c.outer}
}

func (c *denseHEdgeCursor[T]) Value() EdgeSample[T] {
	key := c.Coord()
	var s EdgeSample[T]
	if key.Row >= 1 && c.variant != EdgeSecondOnly {
		v := c.r.At(Coord{Row: key.Row - 1, Col: key.Col})
		s.First = &v
	}
	if key.Row < c.r.dims.Size1 && c.variant != EdgeFirstOnly {
		v := c.r.At(Coord{Row: key.Row, Col: key.Col})
		s.Second = &v
	}
	return s
}

func (c *denseHEdgeCursor[T]) Next() {
	c.inner++
	if c.inner >= c.innerLimit {
		c.inner = 0
		c.outer++
	}
	c.done = c.outer >= c.outerLimit
}

func (c *denseHEdgeCursor[T]) Done() bool { return c.done }

func (c *denseHEdgeCursor[T]) Seek(coord Coord) {
	if c.order == RowMajor {
		c.outer, c.inner = coord.Row, coord.Col
	} else {
		c.outer, c.inner = coord.Col, coord.Row
	}
	c.done = c.outer >= c.outerLimit || c.inner >= c.innerLimit
}

// denseVEdgeCursor walks vertical edges: the key column ranges over
// [0, size2] inclusive, the key row over [0, size1).
type denseVEdgeCursor[T any] struct {
	r                      *DenseRaster[T]
	order                  Order
	variant                EdgeVariant
	outer, inner           int
	outerLimit, innerLimit int
	done                   bool
}

func newDenseVEdgeCursor[T any](r *DenseRaster[T], order Order, variant EdgeVariant) *denseVEdgeCursor[T] {
	c := &denseVEdgeCursor[T]{r: r, order: order, variant: variant}
	if order == RowMajor {
		c.outerLimit, c.innerLimit = r.dims.Size1, r.dims.Size2+1
	} else {
		c.outerLimit, c.innerLimit = r.dims.Size2+1, r.dims.Size1
	}
	c.done = c.outerLimit == 0 || c.innerLimit == 0
	return c
}

func (c *denseVEdgeCursor[T]) Coord() Coord {
	if c.order == RowMajor {
		return Coord{Row: c.outer, Col: c.inner}
	}
	return Coord{Row: c.inner, Col: c.outer}
}

func (c *denseVEdgeCursor[T]) Value() EdgeSample[T] {
	key := c.Coord()
	var s EdgeSample[T]
	if key.Col >= 1 && c.variant != EdgeSecondOnly {
		v := c.r.At(Coord{Row: key.Row, Col: key.Col - 1})
		s.First = &v
	}
	if key.Col < c.r.dims.Size2 && c.variant != EdgeFirstOnly {
		v := c.r.At(Coord{Row: key.Row, Col: key.Col})
		s.Second = &v
	}
	return s
}

func (c *denseVEdgeCursor[T]) Next() {
	c.inner++
	if c.inner >= c.innerLimit {
		c.inner = 0
		c.outer++
	}
	c.done = c.outer >= c.outerLimit
}

func (c *denseVEdgeCursor[T]) Done() bool { return c.done }

func (c *denseVEdgeCursor[T]) Seek(coord Coord) {
	if c.order == RowMajor {
		c.outer, c.inner = coord.Row, coord.Col
	} else {
		c.outer, c.inner = coord.Col, coord.Row
	}
	c.done = c.outer >= c.outerLimit || c.inner >= c.innerLimit
}
