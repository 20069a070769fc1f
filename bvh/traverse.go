package bvh

import (
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/ray"
)

const stackDepth = 256

// LeafIntersector tests a ray against one original item index (as stored in
// Tree.Items) and returns the hit, if any. The object BVH's LeafIntersector
// ensures the target object is diced before testing its primitives; a
// primitive BVH's LeafIntersector runs the triangle/point test directly.
type LeafIntersector interface {
	IntersectItem(item int, r ray.Ray) (isect.Intersection, bool)
}

// FirstIntersection returns the closest hit in [r.MinDist, r.MaxDist],
// descending near-child-first so a cheaper leaf test can tighten r.MaxDist
// before far subtrees are even box-tested. Must agree with the minimum hit
// a brute-force scan of AllIntersections would find.
func (t *Tree) FirstIntersection(r ray.Ray, lx LeafIntersector) (isect.Intersection, bool) {
	if t.Empty() {
		return isect.Intersection{}, false
	}

	var best isect.Intersection
	found := false

	var stack [stackDepth]int32
	sp := 0
	nodeIndex := int32(0)

	for {
		node := t.Nodes[nodeIndex]
		if _, hit := ray.IntersectAABB(r, node.Bounds); hit {
			if node.IsLeaf() {
				for i := node.ItemStart; i < node.ItemStart+node.ItemCount; i++ {
					if hitI, ok := lx.IntersectItem(t.Items[i], r); ok && hitI.Closer(best) {
						best = hitI
						found = true
						r.MaxDist = hitI.T
					}
				}
			} else {
				near, far := nodeIndex+1, node.SecondChild
				if r.Sign[node.SplitAxis] == 1 {
					near, far = far, near
				}
				if sp < stackDepth {
					stack[sp] = far
					sp++
				}
				nodeIndex = near
				continue
			}
		}

		if sp == 0 {
			break
		}
		sp--
		nodeIndex = stack[sp]
	}

	return best, found
}

// AllIntersections returns every hit in [tmin, tmax], unordered. Used by
// volume marching, which needs every volume the ray overlaps rather than
// just the nearest.
func (t *Tree) AllIntersections(r ray.Ray, lx LeafIntersector) []isect.Intersection {
	if t.Empty() {
		return nil
	}
	var out []isect.Intersection

	var stack [stackDepth]int32
	sp := 0
	nodeIndex := int32(0)

	for {
		node := t.Nodes[nodeIndex]
		if _, hit := ray.IntersectAABB(r, node.Bounds); hit {
			if node.IsLeaf() {
				for i := node.ItemStart; i < node.ItemStart+node.ItemCount; i++ {
					if hitI, ok := lx.IntersectItem(t.Items[i], r); ok {
						out = append(out, hitI)
					}
				}
			} else {
				near, far := nodeIndex+1, node.SecondChild
				if r.Sign[node.SplitAxis] == 1 {
					near, far = far, near
				}
				if sp < stackDepth {
					stack[sp] = far
					sp++
				}
				nodeIndex = near
				continue
			}
		}

		if sp == 0 {
			break
		}
		sp--
		nodeIndex = stack[sp]
	}

	return out
}
