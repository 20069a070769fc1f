// Package ray defines the Ray and RayDifferential types that flow through
// every stage of raycore: camera construction, BVH traversal, and shader
// evaluation. It also carries the slab-test AABB intersection and the
// Moeller-Trumbore triangle test, both generalized from the broad/narrow
// phase split in the prior engine's editor raycast helper into routines
// the BVH package drives node-by-node.
package ray

import "github.com/duskray/raycore/math"

// TypeMask identifies what a ray is being cast for. A ray can carry more
// than one bit as it is reused across recursive shader evaluation.
type TypeMask uint16

const (
	Camera TypeMask = 1 << iota
	Shadow
	Diffuse
	Glossy
	Reflection
	Transmission
)

// Has reports whether m includes every bit set in other.
func (m TypeMask) Has(other TypeMask) bool { return m&other == other }

// Any reports whether m includes any bit set in other.
func (m TypeMask) Any(other TypeMask) bool { return m&other != 0 }

// Ray is a single ray cast into the scene: origin, direction, the shutter
// time it was constructed at, a type mask, and the [MinDist,MaxDist]
// interval a hit must fall within. InvDir and Sign are precomputed once at
// construction since every BVH node the ray visits needs them.
type Ray struct {
	Origin  math.Vec3
	Dir     math.Vec3
	Time    float32
	Type    TypeMask
	MinDist float32
	MaxDist float32

	InvDir math.Vec3 // 1/Dir, precomputed for the AABB slab test
	Sign   [3]int    // 1 where Dir's component is negative, else 0
}

// New builds a Ray and precomputes its reciprocal direction and axis signs.
func New(origin, dir math.Vec3, time float32, typ TypeMask, minDist, maxDist float32) Ray {
	r := Ray{Origin: origin, Dir: dir, Time: time, Type: typ, MinDist: minDist, MaxDist: maxDist}
	r.InvDir = dir.Reciprocal()
	if r.InvDir.X < 0 {
		r.Sign[0] = 1
	}
	if r.InvDir.Y < 0 {
		r.Sign[1] = 1
	}
	if r.InvDir.Z < 0 {
		r.Sign[2] = 1
	}
	return r
}

// At evaluates the ray's position at parametric distance t.
func (r Ray) At(t float32) math.Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}

// Finite reports whether t lies strictly inside the ray's valid interval;
// NaN/Inf distances are rejected here rather than propagated downstream.
func (r Ray) Finite(t float32) bool {
	return t > r.MinDist && t < r.MaxDist && t == t && !isInf(t)
}

func isInf(f float32) bool {
	return f > 3.402823466e+38 || f < -3.402823466e+38
}

// Differential holds the two auxiliary rays (pixel +x, pixel +y) used to
// size texture filter kernels and shading derivatives.
type Differential struct {
	HasDifferentials bool
	RxDir, RyDir     math.Vec3
	RxOrigin, RyOrigin math.Vec3
}

// ScaleDifferentials shrinks the auxiliary ray offsets toward the primary
// ray by s, used when a shader narrows the effective footprint (e.g. after
// a sharp reflection).
func (d Differential) ScaleDifferentials(primary Ray, s float32) Differential {
	if !d.HasDifferentials {
		return d
	}
	out := d
	out.RxOrigin = primary.Origin.Add(d.RxOrigin.Sub(primary.Origin).Mul(s))
	out.RyOrigin = primary.Origin.Add(d.RyOrigin.Sub(primary.Origin).Mul(s))
	out.RxDir = primary.Dir.Add(d.RxDir.Sub(primary.Dir).Mul(s))
	out.RyDir = primary.Dir.Add(d.RyDir.Sub(primary.Dir).Mul(s))
	return out
}
