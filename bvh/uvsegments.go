package bvh

import "github.com/duskray/raycore/math"

// UVSegment is one piece of a primitive whose UV footprint overlaps the
// line from uv0 to uv1, expressed as a parametric range [TStart,TEnd] along
// that line.
type UVSegment struct {
	Item           int
	TStart, TEnd   float32
}

// UVBounded is implemented by primitive BVH items that can report their UV
// bounding rectangle, needed for getIntersectionsWithUVs queries : texture-space picking of which diced primitives a UV line
// crosses, independent of any 3-D ray.
type UVBounded interface {
	UVBounds(item int) (min, max math.Vec2)
}

// UVSegments walks the tree's leaves (ignoring the 3-D AABBs; this query is
// purely in UV space) and returns the parametric overlap of each leaf whose
// UV rectangle the uv0->uv1 segment crosses.
func UVSegments(t *Tree, src UVBounded, uv0, uv1 math.Vec2) []UVSegment {
	if t.Empty() {
		return nil
	}
	var out []UVSegment
	dir := uv1.Sub(uv0)

	var walk func(nodeIndex int32)
	walk = func(nodeIndex int32) {
		node := t.Nodes[nodeIndex]
		if node.IsLeaf() {
			for i := node.ItemStart; i < node.ItemStart+node.ItemCount; i++ {
				item := t.Items[i]
				mn, mx := src.UVBounds(item)
				if ts, te, ok := clipSegmentToRect(uv0, dir, mn, mx); ok {
					out = append(out, UVSegment{Item: item, TStart: ts, TEnd: te})
				}
			}
			return
		}
		walk(nodeIndex + 1)
		walk(node.SecondChild)
	}
	walk(0)
	return out
}

// clipSegmentToRect is a 2-D Liang-Barsky clip of the parametric segment
// uv0 + t*dir, t in [0,1], against the axis-aligned rectangle [mn,mx].
func clipSegmentToRect(uv0, dir, mn, mx math.Vec2) (tStart, tEnd float32, ok bool) {
	t0, t1 := float32(0), float32(1)
	p := [4]float32{-dir.X, dir.X, -dir.Y, dir.Y}
	q := [4]float32{uv0.X - mn.X, mx.X - uv0.X, uv0.Y - mn.Y, mx.Y - uv0.Y}

	for i := 0; i < 4; i++ {
		if p[i] == 0 {
			if q[i] < 0 {
				return 0, 0, false
			}
			continue
		}
		r := q[i] / p[i]
		if p[i] < 0 {
			if r > t1 {
				return 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	if t0 > t1 {
		return 0, 0, false
	}
	return t0, t1, true
}
