package geom

import "math"

// Vec3 is a point or extent in world space.
// The travel axis is Z and forward runs toward negative Z.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is shorthand for building a Vec3
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Uniform returns a vector with all three components set to s
func Uniform(s float64) Vec3 {
	return Vec3{X: s, Y: s, Z: s}
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Sub(o Vec3) Vec3 {
	return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z}
}

// Mul multiplies component-wise
func (v Vec3) Mul(o Vec3) Vec3 {
	return Vec3{v.X * o.X, v.Y * o.Y, v.Z * o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Abs returns the component-wise absolute value
func (v Vec3) Abs() Vec3 {
	return Vec3{math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)}
}

// RotateExtentY returns the axis-aligned extent of a box of size e after a
// rotation of theta radians about the Y axis.
func RotateExtentY(e Vec3, theta float64) Vec3 {
	c := math.Abs(math.Cos(theta))
	s := math.Abs(math.Sin(theta))
	return Vec3{
		X: c*e.X + s*e.Z,
		Y: e.Y,
		Z: s*e.X + c*e.Z,
	}
}
