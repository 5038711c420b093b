package core

import (
	"math"
	"testing"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func approxVec(a, b Vec2) bool {
	return approx(a.X, b.X) && approx(a.Y, b.Y)
}

func TestVecOps(t *testing.T) {
	a := V(3, 4)
	b := V(-1, 2)

	if got := a.Add(b); got != V(2, 6) {
		t.Errorf("Add() = %v, expected (2, 6)", got)
	}
	if got := a.Sub(b); got != V(4, 2) {
		t.Errorf("Sub() = %v, expected (4, 2)", got)
	}
	if got := a.Dot(b); got != 5 {
		t.Errorf("Dot() = %v, expected 5", got)
	}
	if got := a.Length(); got != 5 {
		t.Errorf("Length() = %v, expected 5", got)
	}
	if got := V(-3, -4).Abs(); got != a {
		t.Errorf("Abs() = %v, expected %v", got, a)
	}
}

func TestVecRotate(t *testing.T) {
	tests := []struct {
		name    string
		v       Vec2
		heading float64
		want    Vec2
	}{
		{"identity", V(46, 0), 0, V(46, 0)},
		{"quarter turn x", V(46, 0), math.Pi / 2, V(0, 46)},
		{"quarter turn y", V(0, 64), math.Pi / 2, V(-64, 0)},
		{"half turn", V(1, 2), math.Pi, V(-1, -2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Rotate(FromAngle(tc.heading))
			if !approxVec(got, tc.want) {
				t.Errorf("Rotate() = %v, expected %v", got, tc.want)
			}
		})
	}
}

func TestNewOrientedBoxAxesPerpendicular(t *testing.T) {
	for _, heading := range []float64{0, 0.3, 1.2, math.Pi, 5.9} {
		b := NewOrientedBox(46, 64, heading)
		if !approx(b.Axis0.Dot(b.Axis1), 0) {
			t.Errorf("heading %v: axes not perpendicular, dot = %v", heading, b.Axis0.Dot(b.Axis1))
		}
		if !approx(b.Axis0.Length(), 46) || !approx(b.Axis1.Length(), 64) {
			t.Errorf("heading %v: axis lengths = %v, %v", heading, b.Axis0.Length(), b.Axis1.Length())
		}
	}
}

func TestOrientedBoxHalfExtent(t *testing.T) {
	b := OrientedBox{Axis0: V(3, -4), Axis1: V(4, 3)}
	if got := b.HalfExtent(); got != V(7, 7) {
		t.Errorf("HalfExtent() = %v, expected (7, 7)", got)
	}
}

func TestOrientedBoxEdgesFormOutline(t *testing.T) {
	b := OrientedBox{Axis0: V(46, 0), Axis1: V(0, 64)}
	center := V(10, 20)
	corners := b.Corners(center)

	isCorner := func(p Vec2) bool {
		for _, c := range corners {
			if c == p {
				return true
			}
		}
		return false
	}

	for i, e := range b.Edges(center) {
		if !isCorner(e.A) || !isCorner(e.B) {
			t.Errorf("edge %d = %v does not join two corners", i, e)
		}
		length := e.B.Sub(e.A).Length()
		if length != 92 && length != 128 {
			t.Errorf("edge %d length = %v, expected a side of the box", i, length)
		}
	}
}

func TestTriangleBounds(t *testing.T) {
	tri := Triangle{A: V(0, 10), B: V(-5, -3), C: V(7, -1)}
	lo, hi := tri.Bounds()
	if lo != V(-5, -3) || hi != V(7, 10) {
		t.Errorf("Bounds() = %v, %v, expected (-5,-3), (7,10)", lo, hi)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}
