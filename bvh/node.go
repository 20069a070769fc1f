// Package bvh implements the two-level bounding volume hierarchy: an
// object BVH whose leaves are scene objects, and
// for each diced object a primitive BVH whose leaves are render
// primitives. The tree itself is a generic structure over caller-supplied
// bounding boxes; the object and primitive layers are wired together by
// the objectctx package via the LeafIntersector interface, keeping this
// package free of any dependency on object/dicing state.
package bvh

import "github.com/duskray/raycore/math"

// Node is one entry of the flat BVH node array. A leaf has ItemCount > 0
// and ItemStart indexing into Tree.Items; an interior node has
// ItemCount == 0 and SecondChild is the index of the far child (the near
// child is always node index+1).
type Node struct {
	Bounds      math.AABB
	ItemStart   int32
	ItemCount   int32 // 0 for interior nodes
	SecondChild int32 // index of the second (far) child, interior nodes only
	SplitAxis   uint8
}

func (n Node) IsLeaf() bool { return n.ItemCount > 0 }

// Bounded is implemented by anything a BVH can be built over.
type Bounded interface {
	Bounds() math.AABB
}

// Tree is a built BVH plus the permutation of original item indices that
// groups spatially-coherent leaves together.
type Tree struct {
	Nodes []Node
	Items []int // Items[node.ItemStart : node.ItemStart+node.ItemCount] are original indices
}

// Empty reports whether the tree has no items (e.g. an object diced with no
// geometry, or a scene with no objects).
func (t *Tree) Empty() bool { return len(t.Nodes) == 0 }

// Bounds returns the tree's root bounding box.
func (t *Tree) Bounds() math.AABB {
	if t.Empty() {
		return math.EmptyAABB()
	}
	return t.Nodes[0].Bounds
}
