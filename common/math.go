package common

import "github.com/jakecoffman/cp"

// Point is a 2D position. Velocities use the same shape so they can be
// combined with positions without conversion.
type Point struct {
	X, Y float64
}

func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

func Add(a, b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// Vector converts a point into a chipmunk vector.
func (p Point) Vector() cp.Vector {
	return cp.Vector{X: p.X, Y: p.Y}
}

// FromVector converts a chipmunk vector (position or linear velocity) into a point.
func FromVector(v cp.Vector) Point {
	return Point{X: v.X, Y: v.Y}
}
