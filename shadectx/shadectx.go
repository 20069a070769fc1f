// Package shadectx defines the shader-evaluation context ("stx"), kept
// essentially POD so copying it is a memcpy: the current ray, the current
// intersection's geometric and shading data (with analytic x/y
// derivatives), recursion depth counters, and the pointers that let a
// pushed frame walk back to its caller.
//
// ShaderContext sits below both channel and shader in the import graph (it
// has no dependency on either) so that AOV handlers (channel.AOVLayer) and
// shaders (shader.Instance) can both take a *ShaderContext without a cycle.
// Its Thread/Render back-pointers are narrow interfaces rather than
// concrete *rendercontext types for the same reason — a reference that
// needs behavior (cancellation polling) rather than identity is better
// expressed as an interface handle than a cross-package cycle.
package shadectx

import (
	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/ray"
)

// SideMode controls which side(s) of a surface a shader treats as front-facing.
type SideMode int

const (
	SideFront SideMode = iota
	SideBack
	SideBoth
)

// DepthCounters tracks per-ray-type recursion depth so a shader can refuse
// to spawn another reflection/refraction ray past a configured limit.
type DepthCounters struct {
	Diffuse, Glossy, Reflection, Transmission, Shadow int
}

// Deriv2 is a scalar or vector quantity plus its analytic derivatives with
// respect to screen-space x and y, the shape every per-intersection field
// on ShaderContext carries.
type Deriv2 struct {
	Val, DX, DY math.Vec3
}

// ThreadScratch is the subset of thread-local state a shader evaluation
// needs: cooperative cancellation polling.
type ThreadScratch interface {
	Aborted() bool
}

// RenderInfo is the subset of render-context state a shader evaluation
// needs: the shutter length, for motion-dependent shading.
type RenderInfo interface {
	ShutterLength() float32
}

// ShaderContext is pushed once per shader-tree recursion level. Callers
// must treat it as copy-by-value POD; Previous chains a frame back to
// whichever frame pushed it, or nil for the pixel-sample driver's root frame.
type ShaderContext struct {
	Ray  ray.Ray
	Diff ray.Differential

	Isect isect.Intersection

	P         Deriv2 // world-space hit point
	Pl        math.Vec3
	Ng        math.Vec3 // geometric normal, raw
	Ngf       math.Vec3 // geometric normal, face-forward
	Ns        Deriv2    // shading normal (Val=raw), DX/DY hold dNsdx/dNsdy
	Nsf       math.Vec3 // shading normal, face-forward
	LocalToWorld math.Mat4

	UV    Deriv2 // Z unused; X=u, Y=v
	ST    math.Vec3
	Color Deriv2

	// VertexColor is the diced surface's interpolated vertex colour at
	// this hit, read by shaders that bind an "attribute" input to it.
	VertexColor core.Color

	Time         float32
	ShutterOffset float32

	Side  SideMode
	Depth DepthCounters

	Previous *ShaderContext
	Thread   ThreadScratch
	Render   RenderInfo
}

// Push returns a new frame chained to c, copying the fields that carry
// forward by default (ray, time, side mode, thread/render pointers) while
// resetting the intersection-derived fields for the callee to fill in.
func (c *ShaderContext) Push() *ShaderContext {
	next := &ShaderContext{
		Ray:           c.Ray,
		Diff:          c.Diff,
		Time:          c.Time,
		ShutterOffset: c.ShutterOffset,
		Side:          c.Side,
		Depth:         c.Depth,
		Previous:      c,
		Thread:        c.Thread,
		Render:        c.Render,
	}
	return next
}

// FaceForward flips n to oppose d if they point the same way, the
// raw-vs-face-forward distinction applied to Ng/Ns.
func FaceForward(n, d math.Vec3) math.Vec3 {
	if n.Dot(d) > 0 {
		return n.Negate()
	}
	return n
}
