// Package geom provides the 2D vector and bounding-box primitives used
// throughout the simulation.
package geom

// Vec2 is a 2D float32 vector. It is a plain value type; all operations
// return new values.
type Vec2 struct {
	X, Y float32
}

// V is shorthand for constructing a Vec2.
func V(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Scale returns v scaled by s.
func (v Vec2) Scale(s float32) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// AddScaled returns v + o*s. This is the integration step pos + vel*dt
// without an intermediate allocation-free temp at call sites.
func (v Vec2) AddScaled(o Vec2, s float32) Vec2 {
	return Vec2{X: v.X + o.X*s, Y: v.Y + o.Y*s}
}
