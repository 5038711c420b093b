package core

// WrapEpsilon nudges a wrapped entity back inside the far edge so it does
// not wrap again on the next tick.
const WrapEpsilon = 0.1

// Viewport is the visible world area. Y grows upwards, so Top > Bottom.
type Viewport struct {
	Left, Right float64
	Bottom, Top float64
}

// NewViewport returns a w×h viewport centered on the origin.
func NewViewport(w, h float64) Viewport {
	return Viewport{
		Left:   -w / 2,
		Right:  w / 2,
		Bottom: -h / 2,
		Top:    h / 2,
	}
}

// Width returns Right - Left.
func (v Viewport) Width() float64 {
	return v.Right - v.Left
}

// Height returns Top - Bottom.
func (v Viewport) Height() float64 {
	return v.Top - v.Bottom
}

// Contains reports whether p is inside the viewport, edges included.
func (v Viewport) Contains(p Vec2) bool {
	return p.X >= v.Left && p.X <= v.Right && p.Y >= v.Bottom && p.Y <= v.Top
}

// WrapBox moves pos to the opposite edge on each axis where the
// axis-aligned extent pos±half has fully left the viewport. Both axes may
// wrap in the same call.
func (v Viewport) WrapBox(pos, half Vec2) Vec2 {
	lo := pos.Sub(half)
	hi := pos.Add(half)

	if hi.Y < v.Bottom {
		pos.Y = v.Top + half.Y - WrapEpsilon
	} else if lo.Y > v.Top {
		pos.Y = v.Bottom - half.Y + WrapEpsilon
	}
	if hi.X < v.Left {
		pos.X = v.Right + half.X - WrapEpsilon
	} else if lo.X > v.Right {
		pos.X = v.Left - half.X + WrapEpsilon
	}
	return pos
}

// WrapPoint wraps a circular entity of the given radius.
func (v Viewport) WrapPoint(pos Vec2, radius float64) Vec2 {
	return v.WrapBox(pos, Vec2{X: radius, Y: radius})
}

// WrapTriangle wraps an entity at pos whose silhouette is tri. The
// triangle's real bounds are used, which need not be centered on pos.
func (v Viewport) WrapTriangle(pos Vec2, tri Triangle) Vec2 {
	lo, hi := tri.Bounds()

	if hi.Y < v.Bottom {
		pos.Y = v.Top + (pos.Y - lo.Y) - WrapEpsilon
	} else if lo.Y > v.Top {
		pos.Y = v.Bottom - (hi.Y - pos.Y) + WrapEpsilon
	}
	if hi.X < v.Left {
		pos.X = v.Right + (pos.X - lo.X) - WrapEpsilon
	} else if lo.X > v.Right {
		pos.X = v.Left - (hi.X - pos.X) + WrapEpsilon
	}
	return pos
}
