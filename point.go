package curveisect

import "math"

// Point is a coordinate in 2D space.
type Point struct {
	X, Y float64
}

// Sub subtracts q from p.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Length returns the length of OP.
func (p Point) Length() float64 {
	return math.Hypot(p.X, p.Y)
}
