package objectctx

import (
	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/shadectx"
)

// FillShading interpolates this object's diced surface data at hit onto
// stx: world position and its screen-space derivatives, geometric and
// shading normals (raw and face-forward), UV, and vertex colour. The UDIM
// tile offset is not applied here; texture bindings carry it. hit.Prim is
// 1-based; isect.NoPrim (0) is never passed in.
func (o *Object) FillShading(hit isect.Intersection, stx *shadectx.ShaderContext) {
	if hit.Prim == isect.NoPrim || int(hit.Prim-1) >= len(o.PrimList) {
		return
	}
	prim := o.PrimList[hit.Prim-1]

	stx.Isect = hit
	stx.Ng = hit.Ng
	stx.Ngf = shadectx.FaceForward(hit.Ng, stx.Ray.Dir)
	stx.P.Val = stx.Ray.At(hit.T)
	stx.Pl = stx.P.Val
	stx.LocalToWorld = math.Mat4Identity()

	switch prim.Kind {
	case PrimTriangle:
		fillTriangleShading(prim, hit, stx)
	case PrimPoint:
		fillPointShading(prim, hit, stx)
	}
}

// fillTriangleShading barycentrically interpolates a triangle's vertex
// attributes and derives screen-space derivatives of P and UV from the
// camera ray's differentials, reintersected against the hit's tangent
// plane.
func fillTriangleShading(prim RenderPrimitive, hit isect.Intersection, stx *shadectx.ShaderContext) {
	w := 1 - hit.U - hit.V
	v0, v1, v2 := prim.V0, prim.V1, prim.V2

	n := v0.Normal.Mul(w).Add(v1.Normal.Mul(hit.U)).Add(v2.Normal.Mul(hit.V)).Normalize()
	if n.LengthSqr() == 0 {
		n = hit.Ng
	}
	stx.Ns.Val = n
	stx.Nsf = shadectx.FaceForward(n, stx.Ray.Dir)

	uv := math.Vec2{
		X: v0.UV.X*w + v1.UV.X*hit.U + v2.UV.X*hit.V,
		Y: v0.UV.Y*w + v1.UV.Y*hit.U + v2.UV.Y*hit.V,
	}
	stx.UV.Val = math.Vec3{X: uv.X, Y: uv.Y}
	stx.ST = math.Vec3{X: uv.X, Y: uv.Y}

	c := v0.Color.Mul(w).Add(v1.Color.Mul(hit.U)).Add(v2.Color.Mul(hit.V))
	stx.Color.Val = math.Vec3{X: c.R, Y: c.G, Z: c.B}
	stx.VertexColor = c

	if !stx.Diff.HasDifferentials {
		return
	}

	p0, p1, p2 := v0.Position, v1.Position, v2.Position
	edge1 := p1.Sub(p0)
	edge2 := p2.Sub(p0)
	uvEdge1 := math.Vec2{X: v1.UV.X - v0.UV.X, Y: v1.UV.Y - v0.UV.Y}
	uvEdge2 := math.Vec2{X: v2.UV.X - v0.UV.X, Y: v2.UV.Y - v0.UV.Y}

	planeOffset := hit.Ng.Dot(stx.P.Val)
	dpdx := auxiliaryPlaneDelta(stx.Diff.RxOrigin, stx.Diff.RxDir, hit.Ng, planeOffset, stx.P.Val)
	dpdy := auxiliaryPlaneDelta(stx.Diff.RyOrigin, stx.Diff.RyDir, hit.Ng, planeOffset, stx.P.Val)
	stx.P.DX = dpdx
	stx.P.DY = dpdy

	du, dv := solveBarycentricDelta(edge1, edge2, hit.Ng, dpdx)
	stx.UV.DX = math.Vec3{X: du*uvEdge1.X + dv*uvEdge2.X, Y: du*uvEdge1.Y + dv*uvEdge2.Y}
	du, dv = solveBarycentricDelta(edge1, edge2, hit.Ng, dpdy)
	stx.UV.DY = math.Vec3{X: du*uvEdge1.X + dv*uvEdge2.X, Y: du*uvEdge1.Y + dv*uvEdge2.Y}
}

// fillPointShading treats a point/particle-sprite hit as shading along the
// sphere normal already computed by RenderPrimitive.Intersect; points carry
// no per-vertex UV or colour so UV falls back to (0,0) and colour to white.
func fillPointShading(prim RenderPrimitive, hit isect.Intersection, stx *shadectx.ShaderContext) {
	stx.Ns.Val = hit.Ng
	stx.Nsf = shadectx.FaceForward(hit.Ng, stx.Ray.Dir)
	stx.UV.Val = math.Vec3Zero
	stx.ST = math.Vec3Zero
	stx.Color.Val = math.Vec3One
	stx.VertexColor = core.ColorWhite
}

// auxiliaryPlaneDelta reintersects an auxiliary differential ray with the
// plane through hitP with normal planeN, returning the offset of that
// intersection from hitP; used to turn a screen-space ray offset into a
// world-space position derivative.
func auxiliaryPlaneDelta(origin, dir, planeN math.Vec3, planeOffset float32, hitP math.Vec3) math.Vec3 {
	denom := planeN.Dot(dir)
	if denom == 0 {
		return math.Vec3Zero
	}
	t := (planeOffset - planeN.Dot(origin)) / denom
	return origin.Add(dir.Mul(t)).Sub(hitP)
}

// solveBarycentricDelta solves delta = da*edge1 + db*edge2 for (da, db) in
// the triangle's plane, dropping whichever axis of ng has the largest
// magnitude since the 3x2 system is singular along the normal direction.
func solveBarycentricDelta(edge1, edge2, ng, delta math.Vec3) (da, db float32) {
	ax, ay, az := absf(ng.X), absf(ng.Y), absf(ng.Z)
	var e1x, e1y, e2x, e2y, dx, dy float32
	switch {
	case ax >= ay && ax >= az:
		e1x, e1y = edge1.Y, edge1.Z
		e2x, e2y = edge2.Y, edge2.Z
		dx, dy = delta.Y, delta.Z
	case ay >= ax && ay >= az:
		e1x, e1y = edge1.X, edge1.Z
		e2x, e2y = edge2.X, edge2.Z
		dx, dy = delta.X, delta.Z
	default:
		e1x, e1y = edge1.X, edge1.Y
		e2x, e2y = edge2.X, edge2.Y
		dx, dy = delta.X, delta.Y
	}
	det := e1x*e2y - e2x*e1y
	if det == 0 {
		return 0, 0
	}
	invDet := 1 / det
	da = (dx*e2y - e2x*dy) * invDet
	db = (e1x*dy - dx*e1y) * invDet
	return da, db
}

func absf(f float32) float32 {
	if f < 0 {
		return -f
	}
	return f
}
