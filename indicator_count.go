package landscape

// Count is the simplest indicator: an integer counter over samples of
// any kind. It is valid as a pixel, edge, or patch indicator depending
// on the ElementKind it is constructed with, since it never looks at
// the sample value itself.
type Count[S any] struct {
	kind ElementKind
	n    int
}

// NewCount returns a Factory for a Count indicator of the given kind.
func NewCount[S any](kind ElementKind) Factory[S] {
	return func() Indicator[S] { return &Count[S]{kind: kind} }
}

func (c *Count[S]) ElementKind() ElementKind { return c.kind }

func (c *Count[S]) AddSample(_ S, _ float64) { c.n++ }

func (c *Count[S]) SubtractSample(_ S, _ float64) {
	if c.n == 0 {
		panic("landscape: Count.SubtractSample on empty accumulator")
	}
	c.n--
}

func (c *Count[S]) AddSubtotal(other Indicator[S]) {
	o := other.(*Count[S])
	c.n += o.n
}

func (c *Count[S]) SubtractSubtotal(other Indicator[S]) {
	o := other.(*Count[S])
	if c.n < o.n {
		panic("landscape: Count.SubtractSubtotal would make count negative")
	}
	c.n -= o.n
}

func (c *Count[S]) Extract() float64 { return float64(c.n) }
