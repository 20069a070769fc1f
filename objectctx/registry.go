package objectctx

import (
	"github.com/duskray/raycore/bvh"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/ray"
)

// IntersectItem implements bvh.LeafIntersector for an Object's own
// primitive tree: item indexes into o.PrimList. The object/material IDs,
// which only the owning Object and its Material know, are filled in here
// rather than in RenderPrimitive.Intersect.
func (o *Object) IntersectItem(item int, r ray.Ray) (isect.Intersection, bool) {
	prim := o.PrimList[item]
	hit, ok := prim.Intersect(r)
	if !ok {
		return isect.Intersection{}, false
	}
	hit.Object = o.ID
	hit.Prim = isect.PrimID(item + 1) // 0 is reserved for isect.NoPrim
	hit.Material = o.MaterialID
	return hit, true
}

// Registry is the top-level two-level BVH: an object tree whose leaves are Objects, each of which owns its own
// primitive tree built lazily on first touch.
type Registry struct {
	objects []*Object
	byID    map[isect.ObjectID]*Object
	tree    *bvh.Tree
}

// NewRegistry builds the top-level object BVH over the given objects'
// bounds. Objects are not diced here; EnsureDiced runs lazily the first
// time a ray actually reaches that leaf.
func NewRegistry(objects []*Object) *Registry {
	boxes := make([]math.AABB, len(objects))
	byID := make(map[isect.ObjectID]*Object, len(objects))
	for i, o := range objects {
		boxes[i] = o.Bounds()
		byID[o.ID] = o
	}
	return &Registry{objects: objects, byID: byID, tree: bvh.Build(boxes)}
}

// Objects returns the registry's object list, in the order passed to
// NewRegistry (not the BVH's internal item order).
func (r *Registry) Objects() []*Object { return r.objects }

// ObjectByID returns the object with the given stable ID, the reverse
// direction from an isect.Intersection.Object field back to the Object the
// pixel-sample driver needs to interpolate shading data from.
func (r *Registry) ObjectByID(id isect.ObjectID) (*Object, bool) {
	o, ok := r.byID[id]
	return o, ok
}

// IntersectItem implements bvh.LeafIntersector for the object tree: item
// indexes into r.objects. It ensures the target object is diced before
// testing its primitive tree, since the nested BVH traversal needs a
// built primitive tree to descend into.
func (r *Registry) IntersectItem(item int, ray ray.Ray) (isect.Intersection, bool) {
	obj := r.objects[item]
	if err := obj.EnsureDiced(); err != nil {
		return isect.Intersection{}, false
	}
	if obj.primTree == nil || obj.primTree.Empty() {
		return isect.Intersection{}, false
	}
	return obj.primTree.FirstIntersection(ray, obj)
}

// FirstIntersection traverses the object tree, dicing objects on demand as
// their bounds are reached.
func (r *Registry) FirstIntersection(rr ray.Ray) (isect.Intersection, bool) {
	if r.tree.Empty() {
		return isect.Intersection{}, false
	}
	return r.tree.FirstIntersection(rr, r)
}
