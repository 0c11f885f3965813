package core

import "math"

// Vec2 is a 2D float vector used for positions and velocities in world units.
// Operations return new values; Set is the only in-place mutator.
type Vec2 struct {
	X, Y float64
}

// V returns a Vec2 with the given components.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Neg returns -v.
func (v Vec2) Neg() Vec2 {
	return Vec2{X: -v.X, Y: -v.Y}
}

// Len returns the magnitude of v.
func (v Vec2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Normalize returns a unit vector in the direction of v.
// The zero vector normalizes to itself.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Set updates both components in place.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// RectF is a float axis-aligned box in world units.
// X, Y is the top-left corner; y grows downward.
type RectF struct {
	X, Y float64
	W, H float64
}

// NewRectF creates a box from its top-left corner and size.
func NewRectF(x, y, w, h float64) RectF {
	return RectF{X: x, Y: y, W: w, H: h}
}

// RectFromCenter creates a box of the given size centered on c.
func RectFromCenter(c Vec2, w, h float64) RectF {
	return RectF{X: c.X - w/2, Y: c.Y - h/2, W: w, H: h}
}

func (r RectF) Left() float64   { return r.X }
func (r RectF) Right() float64  { return r.X + r.W }
func (r RectF) Top() float64    { return r.Y }
func (r RectF) Bottom() float64 { return r.Y + r.H }

// Center returns the center point of the box.
func (r RectF) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

func (r *RectF) SetLeft(x float64)   { r.X = x }
func (r *RectF) SetRight(x float64)  { r.X = x - r.W }
func (r *RectF) SetTop(y float64)    { r.Y = y }
func (r *RectF) SetBottom(y float64) { r.Y = y - r.H }

// SetCenter moves the box so its center is c.
func (r *RectF) SetCenter(c Vec2) {
	r.X = c.X - r.W/2
	r.Y = c.Y - r.H/2
}

// Translate moves the box by d.
func (r *RectF) Translate(d Vec2) {
	r.X += d.X
	r.Y += d.Y
}

// Intersects reports whether the boxes overlap. Touching edges do not count.
func (r RectF) Intersects(o RectF) bool {
	if r.X >= o.Right() || o.X >= r.Right() {
		return false
	}
	if r.Y >= o.Bottom() || o.Y >= r.Bottom() {
		return false
	}
	return true
}
