package ray

import "github.com/duskray/raycore/math"

// TriangleHit is the narrow-phase result of a ray/triangle test: parametric
// distance and barycentric (u,v) of the hit (w = 1-u-v implied).
type TriangleHit struct {
	T, U, V float32
	Hit     bool
}

// IntersectTriangle implements the Moeller-Trumbore ray/triangle
// intersection, the same algorithm the prior engine's raycast helper used
// for its narrow-phase mesh picking test, now the leaf-level primitive test
// for diced mesh/polysoup RenderPrimitives.
func IntersectTriangle(r Ray, v0, v1, v2 math.Vec3) TriangleHit {
	const epsilon = 1e-7

	edge1 := v1.Sub(v0)
	edge2 := v2.Sub(v0)
	h := r.Dir.Cross(edge2)
	a := edge1.Dot(h)

	if a > -epsilon && a < epsilon {
		return TriangleHit{} // ray parallel to triangle plane
	}

	f := 1.0 / a
	s := r.Origin.Sub(v0)
	u := f * s.Dot(h)
	if u < 0.0 || u > 1.0 {
		return TriangleHit{}
	}

	q := s.Cross(edge1)
	v := f * r.Dir.Dot(q)
	if v < 0.0 || u+v > 1.0 {
		return TriangleHit{}
	}

	t := f * edge2.Dot(q)
	if !r.Finite(t) {
		return TriangleHit{}
	}
	return TriangleHit{T: t, U: u, V: v, Hit: true}
}

// GeometricNormal returns the unnormalized face normal of a triangle,
// consistent with the winding used by IntersectTriangle.
func GeometricNormal(v0, v1, v2 math.Vec3) math.Vec3 {
	return v1.Sub(v0).Cross(v2.Sub(v0))
}
