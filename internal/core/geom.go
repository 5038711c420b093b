// Package core provides fundamental types and utilities for the game.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Vec2 is a 2D vector in world units.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for Vec2{X: x, Y: y}.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector pointing at theta radians
// (counter-clockwise from +X).
func FromAngle(theta float64) Vec2 {
	return Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Dot returns the dot product.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// LengthSquared avoids the sqrt when only comparisons are needed.
func (v Vec2) LengthSquared() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Length returns the magnitude of v.
func (v Vec2) Length() float64 {
	return math.Sqrt(v.LengthSquared())
}

// Abs returns the componentwise absolute value.
func (v Vec2) Abs() Vec2 {
	return Vec2{X: math.Abs(v.X), Y: math.Abs(v.Y)}
}

// Rotate rotates v by the unit direction dir (complex multiplication).
// Rotating (1, 0) by dir yields dir.
func (v Vec2) Rotate(dir Vec2) Vec2 {
	return Vec2{
		X: v.X*dir.X - v.Y*dir.Y,
		Y: v.X*dir.Y + v.Y*dir.X,
	}
}

// Min returns the componentwise minimum.
func (v Vec2) Min(o Vec2) Vec2 {
	return Vec2{X: math.Min(v.X, o.X), Y: math.Min(v.Y, o.Y)}
}

// Max returns the componentwise maximum.
func (v Vec2) Max(o Vec2) Vec2 {
	return Vec2{X: math.Max(v.X, o.X), Y: math.Max(v.Y, o.Y)}
}

// Segment is a line segment between two points.
type Segment struct {
	A, B Vec2
}

// OrientedBox is a rectangle described by two perpendicular half-axes
// from its center. The axes are fixed when the box is built; only the
// owner's center moves afterwards.
type OrientedBox struct {
	Axis0 Vec2
	Axis1 Vec2
}

// NewOrientedBox builds a box with half extents (halfX, halfY) rotated
// to heading radians.
func NewOrientedBox(halfX, halfY, heading float64) OrientedBox {
	dir := FromAngle(heading)
	return OrientedBox{
		Axis0: Vec2{X: halfX}.Rotate(dir),
		Axis1: Vec2{Y: halfY}.Rotate(dir),
	}
}

// HalfExtent returns a conservative axis-aligned half size:
// |axis0| + |axis1| componentwise.
func (b OrientedBox) HalfExtent() Vec2 {
	return b.Axis0.Abs().Add(b.Axis1.Abs())
}

// Corners returns center ± axis0 ± axis1.
func (b OrientedBox) Corners(center Vec2) [4]Vec2 {
	return [4]Vec2{
		center.Add(b.Axis0).Add(b.Axis1),
		center.Add(b.Axis0).Sub(b.Axis1),
		center.Sub(b.Axis0).Sub(b.Axis1),
		center.Sub(b.Axis0).Add(b.Axis1),
	}
}

// Edges returns the four outline segments of the box at center.
func (b OrientedBox) Edges(center Vec2) [4]Segment {
	d := b.Axis0.Sub(b.Axis1)
	s := b.Axis0.Add(b.Axis1)
	e := b.Axis1.Sub(b.Axis0)
	return [4]Segment{
		{A: center.Sub(d), B: center.Sub(s)},
		{A: center.Add(d), B: center.Add(s)},
		{A: center.Sub(e), B: center.Sub(s)},
		{A: center.Add(e), B: center.Add(s)},
	}
}

// Triangle is a closed three-vertex silhouette.
type Triangle struct {
	A, B, C Vec2
}

// Edges returns AB, BC and CA.
func (t Triangle) Edges() [3]Segment {
	return [3]Segment{
		{A: t.A, B: t.B},
		{A: t.B, B: t.C},
		{A: t.C, B: t.A},
	}
}

// Bounds returns the axis-aligned min and max corners.
func (t Triangle) Bounds() (lo, hi Vec2) {
	lo = t.A.Min(t.B).Min(t.C)
	hi = t.A.Max(t.B).Max(t.C)
	return lo, hi
}

// Rect represents an axis-aligned cell rectangle on the character screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
