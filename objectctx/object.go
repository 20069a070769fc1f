// Package objectctx implements lazy per-object
// dicing: an Object holds host-side motion samples until the first ray
// touches it, at which point one goroutine dices it into SurfaceContext
// and RenderPrimitive lists and builds its primitive BVH, while any other
// goroutine arriving during that window blocks on a condition variable
// rather than spin-waiting.
package objectctx

import (
	"sync"
	"sync/atomic"

	"github.com/duskray/raycore/bvh"
	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/material"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/rendererr"
)

// Status is an Object's lifecycle state. It is stored in Object.status
// and accessed with sync/atomic.
type Status int32

const (
	NotDiced Status = iota
	Dicing
	Diced
)

// HostType selects which dicing handler processes an object's motion
// samples: one handler per host primitive type (triangle/polygon ->
// polysoup, mesh, point, particle-sprite, generic node, light-volume).
type HostType int

const (
	HostPolysoup HostType = iota
	HostMesh
	HostPoint
	HostParticleSprite
	HostGenericNode
	HostLightVolume
)

// MotionSample is one (scene, object-index) snapshot: a world transform,
// a frame time, and the host mesh data valid at that time.
type MotionSample struct {
	Time      float32
	Transform core.Transform
	Mesh      core.MeshData
}

// Object is either a geometry object or a light-volume object.
type Object struct {
	ID         isect.ObjectID
	HostType   HostType
	Samples    []MotionSample
	Material   *material.Material
	MaterialID isect.MaterialID

	status int32 // Status, atomic

	mu   sync.Mutex
	cond *sync.Cond

	bounds math.AABB

	SurfaceList []SurfaceContext
	PrimList    []RenderPrimitive
	primTree    *bvh.Tree

	// Blurred records whether motion blur survived dicing; a topology
	// mismatch across samples (different vertex or index counts) demotes
	// the object to non-blurred rendering instead of failing outright.
	Blurred bool
}

// NewObject returns a fresh, un-diced Object. World-space AABB is derived
// from samples at construction so the object BVH can be built before any
// dicing happens — dicing only needs to run lazily for the expensive
// per-primitive work, not for bounding.
func NewObject(id isect.ObjectID, hostType HostType, samples []MotionSample, mat *material.Material) *Object {
	obj := &Object{ID: id, HostType: hostType, Samples: samples, Material: mat}
	obj.cond = sync.NewCond(&obj.mu)
	obj.bounds = computeBounds(samples)
	return obj
}

func computeBounds(samples []MotionSample) math.AABB {
	box := math.EmptyAABB()
	for _, s := range samples {
		local := meshBounds(s.Mesh)
		box = box.Union(local.Transform(s.Transform.GetMatrix()))
	}
	return box
}

func meshBounds(mesh core.MeshData) math.AABB {
	box := math.EmptyAABB()
	for _, v := range mesh.Vertices {
		box = box.Grow(v.Position)
	}
	return box
}

// Bounds returns the object's world-space AABB across all motion samples.
func (o *Object) Bounds() math.AABB { return o.bounds }

// StatusNow returns the object's current lifecycle status.
func (o *Object) StatusNow() Status { return Status(atomic.LoadInt32(&o.status)) }

// EnsureDiced implements the NotDiced -> Dicing -> Diced transition.
// Only one goroutine performs the transition to
// Dicing (guarded by the narrow mutex section below); others block on
// o.cond until the dicing goroutine broadcasts the outcome, replacing a
// literal poll-with-a-short-sleep with a condition variable.
func (o *Object) EnsureDiced() error {
	if o.StatusNow() == Diced {
		return nil
	}

	o.mu.Lock()
	switch Status(o.status) {
	case Diced:
		o.mu.Unlock()
		return nil
	case Dicing:
		for Status(o.status) == Dicing {
			o.cond.Wait()
		}
		diced := Status(o.status) == Diced
		o.mu.Unlock()
		if !diced {
			return rendererr.NewTopologyError("objectctx", nil, "object %d failed to dice", o.ID)
		}
		return nil
	default: // NotDiced: this goroutine performs the dicing.
		atomic.StoreInt32(&o.status, int32(Dicing))
		o.mu.Unlock()
	}

	surfaces, prims, blurred, err := dice(o)

	o.mu.Lock()
	if err != nil {
		// error/abort: Dicing -> NotDiced, retries permitted.
		atomic.StoreInt32(&o.status, int32(NotDiced))
		o.mu.Unlock()
		o.cond.Broadcast()
		return err
	}
	o.SurfaceList = surfaces
	o.PrimList = prims
	o.Blurred = blurred
	o.primTree = bvh.Build(primBounds(prims))
	atomic.StoreInt32(&o.status, int32(Diced))
	o.mu.Unlock()
	o.cond.Broadcast()
	return nil
}

func primBounds(prims []RenderPrimitive) []math.AABB {
	boxes := make([]math.AABB, len(prims))
	for i, p := range prims {
		boxes[i] = p.Bounds()
	}
	return boxes
}
