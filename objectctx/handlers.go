package objectctx

import (
	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/rendererr"
)

// diceMesh handles HostPolysoup and HostMesh: triangulated/triangle-soup
// input faces, diced straight into RenderPrimitive triangles in world
// space, grounded on a prior engine's CreateSphere/CreateCylinder generators
// which likewise emit a flat Vertex/index pair per procedural shape.
func diceMesh(o *Object) ([]SurfaceContext, []RenderPrimitive, bool, error) {
	if len(o.Samples) == 0 || len(o.Samples[0].Mesh.Vertices) == 0 {
		return nil, nil, false, rendererr.NewTopologyError("objectctx", nil, "object %d has no geometry to dice", o.ID)
	}

	blurred := meshTopologyMatches(o.Samples)

	first := worldVertices(o.Samples[0])
	var second []core.Vertex
	if blurred {
		second = worldVertices(o.Samples[1])
	}

	indices := o.Samples[0].Mesh.Indices
	surfaces := make([]SurfaceContext, 0, len(indices)/3)
	prims := make([]RenderPrimitive, 0, len(indices)/3)

	for face := 0; face+2 < len(indices); face += 3 {
		i0, i1, i2 := indices[face], indices[face+1], indices[face+2]
		v0, v1, v2 := first[i0], first[i1], first[i2]

		surfIdx := len(surfaces)
		surfaces = append(surfaces, surfaceFromTriangle(face/3, v0, v1, v2))

		prim := RenderPrimitive{Kind: PrimTriangle, Surface: surfIdx, V0: v0, V1: v1, V2: v2}
		if blurred {
			prim.V0b, prim.V1b, prim.V2b = second[i0], second[i1], second[i2]
			prim.Blurred = true
		}
		prims = append(prims, prim)
	}

	return surfaces, prims, blurred, nil
}

// meshTopologyMatches reports whether two motion samples have identical
// vertex/index counts, the precondition for treating a pair of samples as a
// valid motion-blur interpolation endpoint; a mismatch demotes the object
// to its first sample only.
func meshTopologyMatches(samples []MotionSample) bool {
	if len(samples) != 2 {
		return false
	}
	a, b := samples[0].Mesh, samples[1].Mesh
	return len(a.Vertices) == len(b.Vertices) && len(a.Indices) == len(b.Indices)
}

func worldVertices(sample MotionSample) []core.Vertex {
	m := sample.Transform.GetMatrix()
	out := make([]core.Vertex, len(sample.Mesh.Vertices))
	for i, v := range sample.Mesh.Vertices {
		out[i] = core.Vertex{
			Position:  m.MulVec3(v.Position),
			Normal:    sample.Transform.Rotation.RotateVector(v.Normal),
			UV:        v.UV,
			Color:     v.Color,
			Tangent:   sample.Transform.Rotation.RotateVector(v.Tangent),
			Bitangent: sample.Transform.Rotation.RotateVector(v.Bitangent),
		}
	}
	return out
}

// dicePoints handles HostPoint and HostParticleSprite: each input vertex
// becomes a single sphere-test RenderPrimitive, grounded on a prior engine's
// ParticleEmitter whose live Particles carry a per-particle world Position
// and billboard half-size Size standing in for a point radius.
func dicePoints(o *Object) ([]SurfaceContext, []RenderPrimitive, bool, error) {
	if len(o.Samples) == 0 {
		return nil, nil, false, rendererr.NewTopologyError("objectctx", nil, "object %d has no points to dice", o.ID)
	}

	blurred := meshTopologyMatches(o.Samples)
	first := worldVertices(o.Samples[0])
	var second []core.Vertex
	if blurred {
		second = worldVertices(o.Samples[1])
	}

	surfaces := make([]SurfaceContext, len(first))
	prims := make([]RenderPrimitive, len(first))
	for i, v := range first {
		surfaces[i] = SurfaceContext{HostFace: i, UVMin: [2]float32{v.UV.X, v.UV.Y}, UVMax: [2]float32{v.UV.X, v.UV.Y}}
		radius := pointRadius(o, v)
		prim := RenderPrimitive{Kind: PrimPoint, Surface: i, Center0: v.Position, Radius: radius}
		if blurred {
			prim.Center1 = second[i].Position
			prim.Blurred = true
		}
		prims[i] = prim
	}
	return surfaces, prims, blurred, nil
}

// pointRadius derives a per-point render radius: particle sprites with a
// positive vertex colour alpha use that alpha as the radius (the
// convention a similar engine's particle Size field plays for billboards);
// every other point gets a small constant footprint of 0.01.
func pointRadius(o *Object, v core.Vertex) float32 {
	if o.HostType == HostParticleSprite && v.Color.A > 0 {
		return v.Color.A
	}
	return 0.01
}

// diceGenericNode handles a host-procedural node by treating its baked
// MeshData exactly like a polysoup: the distinction only matters upstream,
// at scene-description time, for how the samples were produced.
func diceGenericNode(o *Object) ([]SurfaceContext, []RenderPrimitive, bool, error) {
	return diceMesh(o)
}

// diceLightVolume dices a light-volume object's bounding mesh into
// triangles the same way diceMesh does; the volume renderer (package
// volume) uses this object's Bounds for its ray-marching entry/exit tests
// rather than these triangles' shading data.
func diceLightVolume(o *Object) ([]SurfaceContext, []RenderPrimitive, bool, error) {
	return diceMesh(o)
}
