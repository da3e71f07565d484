// Package collision computes axis-aligned bounding boxes for world entities
// and tests them for overlap. It holds no entity list; callers pick the pairs.
package collision

import "github.com/golangdaddy/turnpike/geom"

// Body is anything with a world transform and a model-space extent.
// Extent is the unscaled, unrotated size of the model footprint.
type Body interface {
	Position() geom.Vec3
	RotationY() float64
	Scale() geom.Vec3
	Extent() geom.Vec3
}

// BoundingBoxOf computes the box for b from its current transform.
// The box stands on the body's position (its Y is the base, not the center).
func BoundingBoxOf(b Body) geom.Box3 {
	size := geom.RotateExtentY(b.Extent().Mul(b.Scale()), b.RotationY())
	return geom.BoxFromBase(b.Position(), size)
}

// Intersects reports whether a and b overlap on all three axes.
// Touching faces count as overlap.
func Intersects(a, b geom.Box3) bool {
	return a.Intersects(b)
}
