package objectctx

import "github.com/duskray/raycore/core"

// SurfaceContext groups the RenderPrimitives that share one dicing unit
// (one input face, one point/particle emission, one generic-node patch).
// A RenderPrimitive.Surface index selects into the object's surface
// list.
type SurfaceContext struct {
	// HostFace identifies which source polygon/point this surface came
	// from, for diagnostics and AOV attribution.
	HostFace int

	// UVMin and UVMax are the parametric footprint of this surface, in
	// source UV space. Nothing in this package exposes them through the
	// bvh.UVBounded interface that bvh.UVSegments queries.
	UVMin, UVMax [2]float32
}

// surfaceFromTriangle derives a SurfaceContext's UV bounds from the three
// diced vertices of one triangle.
func surfaceFromTriangle(face int, v0, v1, v2 core.Vertex) SurfaceContext {
	min := [2]float32{v0.UV.X, v0.UV.Y}
	max := min
	for _, v := range []core.Vertex{v1, v2} {
		if v.UV.X < min[0] {
			min[0] = v.UV.X
		}
		if v.UV.Y < min[1] {
			min[1] = v.UV.Y
		}
		if v.UV.X > max[0] {
			max[0] = v.UV.X
		}
		if v.UV.Y > max[1] {
			max[1] = v.UV.Y
		}
	}
	return SurfaceContext{HostFace: face, UVMin: min, UVMax: max}
}
