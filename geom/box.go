package geom

// Box3 is an axis-aligned bounding box. Boxes are values: copying a Box3
// never aliases the original.
type Box3 struct {
	Min, Max Vec3
}

// EmptyBox is a box that intersects nothing and contains nothing
var EmptyBox = Box3{
	Min: Uniform(1),
	Max: Uniform(-1),
}

// BoxFromBase builds a box standing on base: centered on base in X and Z,
// spanning base.Y to base.Y+size.Y vertically.
func BoxFromBase(base, size Vec3) Box3 {
	return Box3{
		Min: Vec3{base.X - size.X/2, base.Y, base.Z - size.Z/2},
		Max: Vec3{base.X + size.X/2, base.Y + size.Y, base.Z + size.Z/2},
	}
}

// BoxFromCenter builds a box of the given size centered on c
func BoxFromCenter(c, size Vec3) Box3 {
	half := size.Scale(0.5)
	return Box3{Min: c.Sub(half), Max: c.Add(half)}
}

// IsEmpty reports whether the box is inverted on any axis
func (b Box3) IsEmpty() bool {
	return b.Max.X < b.Min.X || b.Max.Y < b.Min.Y || b.Max.Z < b.Min.Z
}

func (b Box3) Size() Vec3 {
	if b.IsEmpty() {
		return Vec3{}
	}
	return b.Max.Sub(b.Min)
}

func (b Box3) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// Intersects uses closed intervals on all three axes, so boxes that touch on
// a face overlap.
func (b Box3) Intersects(o Box3) bool {
	if b.IsEmpty() || o.IsEmpty() {
		return false
	}
	return b.Min.X <= o.Max.X && b.Max.X >= o.Min.X &&
		b.Min.Y <= o.Max.Y && b.Max.Y >= o.Min.Y &&
		b.Min.Z <= o.Max.Z && b.Max.Z >= o.Min.Z
}

// ContainsPoint uses closed intervals
func (b Box3) ContainsPoint(p Vec3) bool {
	return p.X >= b.Min.X && p.X <= b.Max.X &&
		p.Y >= b.Min.Y && p.Y <= b.Max.Y &&
		p.Z >= b.Min.Z && p.Z <= b.Max.Z
}

// Union returns the smallest box containing both
func (b Box3) Union(o Box3) Box3 {
	if b.IsEmpty() {
		return o
	}
	if o.IsEmpty() {
		return b
	}
	return Box3{
		Min: Vec3{min(b.Min.X, o.Min.X), min(b.Min.Y, o.Min.Y), min(b.Min.Z, o.Min.Z)},
		Max: Vec3{max(b.Max.X, o.Max.X), max(b.Max.Y, o.Max.Y), max(b.Max.Z, o.Max.Z)},
	}
}
