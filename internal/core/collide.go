package core

// PointInOrientedBox reports whether point lies strictly inside box centered
// at boxCenter.
//
// The axes are not normalized: the projection of (boxCenter - point) on each
// half-axis is compared against that axis' squared length. Points exactly on
// an edge are outside.
func PointInOrientedBox(box OrientedBox, boxCenter, point Vec2) bool {
	lenSq0 := box.Axis0.LengthSquared()
	lenSq1 := box.Axis1.LengthSquared()
	toBox := boxCenter.Sub(point)
	dot0 := box.Axis0.Dot(toBox)
	dot1 := box.Axis1.Dot(toBox)
	return dot0 > -lenSq0 && dot0 < lenSq0 && dot1 > -lenSq1 && dot1 < lenSq1
}

// SegmentsIntersect reports whether segment p0-p1 crosses segment p2-p3.
//
// Comparisons are exact. Parallel segments count as intersecting only when
// both cross terms vanish, which is looser than a real colinear-overlap
// test: colinear but disjoint segments are reported as intersecting.
func SegmentsIntersect(p0, p1, p2, p3 Vec2) bool {
	dir0 := p1.Sub(p0)
	dir1 := p3.Sub(p2)
	denominator := dir0.X*dir1.Y - dir0.Y*dir1.X
	numerator1 := (p0.Y-p2.Y)*dir1.X - (p0.X-p2.X)*dir1.Y
	numerator2 := (p0.Y-p2.Y)*dir0.X - (p0.X-p2.X)*dir0.Y
	if denominator == 0 {
		return numerator1 == 0 && numerator2 == 0
	}

	r := numerator1 / denominator
	s := numerator2 / denominator
	return r >= 0 && r <= 1 && s >= 0 && s <= 1
}

// Intersects is SegmentsIntersect for Segment values.
func (s Segment) Intersects(o Segment) bool {
	return SegmentsIntersect(s.A, s.B, o.A, o.B)
}

// TriangleIntersectsBox tests every triangle edge against every box edge
// and stops at the first crossing. A triangle fully inside the box (or the
// reverse) has no crossing edges and is not reported.
func TriangleIntersectsBox(tri Triangle, box OrientedBox, center Vec2) bool {
	boxEdges := box.Edges(center)
	for _, te := range tri.Edges() {
		for _, be := range boxEdges {
			if te.Intersects(be) {
				return true
			}
		}
	}
	return false
}

// PointInAABB reports whether p lies within half of center, edges included.
func PointInAABB(center, half, p Vec2) bool {
	return p.X >= center.X-half.X && p.X <= center.X+half.X &&
		p.Y >= center.Y-half.Y && p.Y <= center.Y+half.Y
}
