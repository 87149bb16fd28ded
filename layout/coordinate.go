// Package layout turns datasets into pixel geometry.
//
// The linear engine assigns positions to every series marker and axis
// label of a line/bar style chart, the circular engine computes sweep
// angles for donut, ring and target charts. Nothing in here draws.
package layout

// Coordinate wraps a value with the pixel position a layout pass assigns
// to it. The position is (0,0) until the first pass and is overwritten by
// every following pass; only the engines in this package write it.
type Coordinate[T any] struct {
	value T
	x, y  float64
}

func NewCoordinate[T any](v T) *Coordinate[T] {
	return &Coordinate[T]{value: v}
}

func (c *Coordinate[T]) Value() T {
	return c.value
}

func (c *Coordinate[T]) X() float64 {
	return c.x
}

func (c *Coordinate[T]) Y() float64 {
	return c.y
}

func (c *Coordinate[T]) Position() (x, y float64) {
	return c.x, c.y
}

func (c *Coordinate[T]) place(x, y float64) {
	c.x = x
	c.y = y
}
