package math

// AABB is an axis-aligned bounding box, used for BVH nodes, object bounds,
// and displacement-bounds padding.
type AABB struct {
	Min, Max Vec3
}

// EmptyAABB returns a box whose Min/Max are inverted so the first Grow call
// establishes real bounds.
func EmptyAABB() AABB {
	const big = 3.402823466e+38
	return AABB{
		Min: Vec3{X: big, Y: big, Z: big},
		Max: Vec3{X: -big, Y: -big, Z: -big},
	}
}

func (b AABB) Grow(p Vec3) AABB {
	return AABB{Min: MinVec3(b.Min, p), Max: MaxVec3(b.Max, p)}
}

func (b AABB) Union(o AABB) AABB {
	return AABB{Min: MinVec3(b.Min, o.Min), Max: MaxVec3(b.Max, o.Max)}
}

func (b AABB) Centroid() Vec3 {
	return b.Min.Add(b.Max).Mul(0.5)
}

func (b AABB) Extent() Vec3 {
	return b.Max.Sub(b.Min)
}

// SurfaceArea is used by the BVH builder's surface-area-heuristic split.
func (b AABB) SurfaceArea() float32 {
	e := b.Extent()
	if e.X < 0 || e.Y < 0 || e.Z < 0 {
		return 0
	}
	return 2 * (e.X*e.Y + e.Y*e.Z + e.Z*e.X)
}

// LongestAxis returns 0/1/2 for X/Y/Z, the axis the BVH builder splits on.
func (b AABB) LongestAxis() int {
	e := b.Extent()
	axis := 0
	longest := e.X
	if e.Y > longest {
		axis, longest = 1, e.Y
	}
	if e.Z > longest {
		axis = 2
	}
	return axis
}

func (b AABB) Component(axis int, v Vec3) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Transform returns the AABB enclosing all eight corners of b transformed by m.
func (b AABB) Transform(m Mat4) AABB {
	mn, mx := b.Min, b.Max
	corners := [8]Vec3{
		{X: mn.X, Y: mn.Y, Z: mn.Z}, {X: mx.X, Y: mn.Y, Z: mn.Z},
		{X: mn.X, Y: mx.Y, Z: mn.Z}, {X: mx.X, Y: mx.Y, Z: mn.Z},
		{X: mn.X, Y: mn.Y, Z: mx.Z}, {X: mx.X, Y: mn.Y, Z: mx.Z},
		{X: mn.X, Y: mx.Y, Z: mx.Z}, {X: mx.X, Y: mx.Y, Z: mx.Z},
	}
	out := EmptyAABB()
	for _, c := range corners {
		out = out.Grow(m.MulVec3(c))
	}
	return out
}
