package objectctx

import (
	stdmath "math"

	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/ray"
)

// PrimKind distinguishes the two leaf-level intersection tests a
// RenderPrimitive can carry: a diced primitive list holds either
// triangles or point/particle sprites.
type PrimKind int

const (
	PrimTriangle PrimKind = iota
	PrimPoint
)

// RenderPrimitive is one diced leaf item: either a triangle (optionally
// with a second motion-blur sample) or a point/particle sprite
// (optionally with a second centre for blur).
type RenderPrimitive struct {
	Kind PrimKind

	// Surface indexes into the owning Object's SurfaceList.
	Surface int

	// Triangle fields, valid when Kind == PrimTriangle.
	V0, V1, V2    core.Vertex
	V0b, V1b, V2b core.Vertex
	Blurred       bool

	// Point/particle fields, valid when Kind == PrimPoint.
	Center0, Center1 math.Vec3
	Radius           float32
}

// Bounds returns the RenderPrimitive's world-space AABB across both motion
// samples when blurred.
func (p RenderPrimitive) Bounds() math.AABB {
	box := math.EmptyAABB()
	switch p.Kind {
	case PrimTriangle:
		box = box.Grow(p.V0.Position).Grow(p.V1.Position).Grow(p.V2.Position)
		if p.Blurred {
			box = box.Grow(p.V0b.Position).Grow(p.V1b.Position).Grow(p.V2b.Position)
		}
	case PrimPoint:
		r := math.Vec3{X: p.Radius, Y: p.Radius, Z: p.Radius}
		box = box.Grow(p.Center0.Sub(r)).Grow(p.Center0.Add(r))
		if p.Blurred {
			box = box.Grow(p.Center1.Sub(r)).Grow(p.Center1.Add(r))
		}
	}
	return box
}

// positionsAt interpolates blurred triangle vertices to ray.Time; for a
// non-blurred primitive the first sample is returned regardless of time.
func (p RenderPrimitive) positionsAt(time float32) (v0, v1, v2 math.Vec3) {
	if !p.Blurred {
		return p.V0.Position, p.V1.Position, p.V2.Position
	}
	return p.V0.Position.Lerp(p.V0b.Position, time),
		p.V1.Position.Lerp(p.V1b.Position, time),
		p.V2.Position.Lerp(p.V2b.Position, time)
}

func (p RenderPrimitive) centerAt(time float32) math.Vec3 {
	if !p.Blurred {
		return p.Center0
	}
	return p.Center0.Lerp(p.Center1, time)
}

// Intersect runs the leaf-level narrow-phase test for this primitive at
// r.Time, returning barycentric coordinates (for triangles) or (0,0) (for
// points) in the Intersection's U/V fields — the object/material IDs are
// filled in by the caller (Object.IntersectItem), which alone knows them.
func (p RenderPrimitive) Intersect(r ray.Ray) (isect.Intersection, bool) {
	switch p.Kind {
	case PrimTriangle:
		v0, v1, v2 := p.positionsAt(r.Time)
		hit := ray.IntersectTriangle(r, v0, v1, v2)
		if !hit.Hit || !r.Finite(hit.T) {
			return isect.Intersection{}, false
		}
		return isect.Intersection{
			T:  hit.T,
			U:  hit.U,
			V:  hit.V,
			Ng: ray.GeometricNormal(v0, v1, v2).Normalize(),
		}, true
	case PrimPoint:
		c := p.centerAt(r.Time)
		t, hit := intersectSphere(r, c, p.Radius)
		if !hit || !r.Finite(t) {
			return isect.Intersection{}, false
		}
		hp := r.At(t)
		return isect.Intersection{T: t, Ng: hp.Sub(c).Normalize()}, true
	default:
		return isect.Intersection{}, false
	}
}

// intersectSphere is the ray/sphere quadratic test used for point and
// particle-sprite primitives, the same analytic form a similar engine's
// bounding-sphere picking helper used for a single implicit shape.
func intersectSphere(r ray.Ray, center math.Vec3, radius float32) (float32, bool) {
	oc := r.Origin.Sub(center)
	a := r.Dir.Dot(r.Dir)
	b := 2 * oc.Dot(r.Dir)
	c := oc.Dot(oc) - radius*radius
	disc := b*b - 4*a*c
	if disc < 0 {
		return 0, false
	}
	sq := float32(stdmath.Sqrt(float64(disc)))
	t := (-b - sq) / (2 * a)
	if t <= 0 {
		t = (-b + sq) / (2 * a)
	}
	if t <= 0 {
		return 0, false
	}
	return t, true
}
