package geom

// AABB is an axis-aligned bounding box. Min is the upper-left corner,
// Max the lower-right; Min <= Max must hold componentwise.
type AABB struct {
	Min, Max Vec2
}

// Box builds an AABB from a top-left position and a size.
func Box(pos, size Vec2) AABB {
	return AABB{Min: pos, Max: pos.Add(size)}
}

// Intersects reports whether a and b overlap. Boxes that only share an
// edge do not intersect; the test is symmetric in its arguments.
func (a AABB) Intersects(b AABB) bool {
	return a.Max.X > b.Min.X &&
		b.Max.X > a.Min.X &&
		a.Max.Y > b.Min.Y &&
		b.Max.Y > a.Min.Y
}

// Width returns the horizontal extent of the box.
func (a AABB) Width() float32 {
	return a.Max.X - a.Min.X
}

// Height returns the vertical extent of the box.
func (a AABB) Height() float32 {
	return a.Max.Y - a.Min.Y
}
