package core

// Point is a position in host units (cells for the terminal host, pixels for pixel hosts)
type Point struct {
	X, Y float64
}

// Add returns p translated by d
func (p Point) Add(d Delta) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Sub returns the delta from q to p
func (p Point) Sub(q Point) Delta {
	return Delta{X: p.X - q.X, Y: p.Y - q.Y}
}

// Delta is a relative displacement produced by a gesture
type Delta struct {
	X, Y float64
}

// LengthSq returns squared euclidean length, avoids sqrt for threshold checks
func (d Delta) LengthSq() float64 {
	return d.X*d.X + d.Y*d.Y
}

// Bounds is a measured width/height of a rendered element
type Bounds struct {
	Width, Height float64
}

// Rect is an axis-aligned rectangle
type Rect struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// RectAt returns the rectangle of bounds b placed at p
func RectAt(p Point, b Bounds) Rect {
	return Rect{X: p.X, Y: p.Y, Width: b.Width, Height: b.Height}
}

// Center returns the center point of the rectangle
func (r Rect) Center() Point {
	return Point{
		X: r.X + r.Width/2,
		Y: r.Y + r.Height/2,
	}
}

// Contains checks if p is within the half-open rectangle
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.Width && p.Y >= r.Y && p.Y < r.Y+r.Height
}

// Inflate grows the rectangle by m on every side
func (r Rect) Inflate(m float64) Rect {
	return Rect{X: r.X - m, Y: r.Y - m, Width: r.Width + 2*m, Height: r.Height + 2*m}
}

// ContainsClosed checks if p is within the rectangle including all edges
func (r Rect) ContainsClosed(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}
