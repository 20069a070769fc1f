// Package fixture builds objectctx.Object test geometry from real
// triangle topology instead of hand-typed vertex literals, by reading
// the first mesh primitive out of a glTF asset the same way the prior
// engine's scene.LoadGLTF did, redirected from a scene-graph Node tree
// toward a single diceable core.MeshData.
package fixture

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/material"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/objectctx"
)

// meshFromAttributes assembles a core.MeshData from a primitive's raw
// attribute arrays, defaulting any vertex's normal to +Y when the source
// omits NORMAL, matching the prior engine's loadGLTFPrimitive defaults.
// Vertex colour is always white: COLOR_0 is not read.
func meshFromAttributes(positions [][3]float32, normals [][3]float32, uvs [][2]float32, indices []uint32) core.MeshData {
	verts := make([]core.Vertex, len(positions))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3{Y: 1},
			Color:    core.ColorWhite,
		}
		if i < len(normals) {
			n := normals[i]
			v.Normal = math.Vec3{X: n[0], Y: n[1], Z: n[2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		verts[i] = v
	}
	return core.MeshData{Vertices: verts, Indices: indices}
}

// meshFromPrimitive reads POSITION (required) plus NORMAL/TEXCOORD_0/
// indices (optional) out of one glTF primitive's accessors.
func meshFromPrimitive(doc *gltf.Document, prim *gltf.Primitive) (core.MeshData, error) {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return core.MeshData{}, fmt.Errorf("fixture: primitive has no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return core.MeshData{}, fmt.Errorf("fixture: reading positions: %w", err)
	}

	var normals [][3]float32
	var uvs [][2]float32
	if idx, ok := prim.Attributes["NORMAL"]; ok {
		normals, _ = modeler.ReadNormal(doc, doc.Accessors[idx], nil)
	}
	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, _ = modeler.ReadTextureCoord(doc, doc.Accessors[idx], nil)
	}

	var indices []uint32
	if prim.Indices != nil {
		indices, err = modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
		if err != nil {
			return core.MeshData{}, fmt.Errorf("fixture: reading indices: %w", err)
		}
	}

	return meshFromAttributes(positions, normals, uvs, indices), nil
}

// FirstMesh returns the first mesh primitive in doc, the minimal slice a
// BVH/dicing test needs from an arbitrary real asset: it does not walk
// the node hierarchy or resolve materials/textures, since those concerns
// belong to a host's own SceneSource, not to this library's test
// fixtures.
func FirstMesh(doc *gltf.Document) (core.MeshData, error) {
	for _, m := range doc.Meshes {
		for _, prim := range m.Primitives {
			return meshFromPrimitive(doc, prim)
		}
	}
	return core.MeshData{}, fmt.Errorf("fixture: document has no mesh primitives")
}

// LoadObject opens a .glb/.gltf file at path and wraps its first mesh
// primitive in a single-motion-sample Object at the identity transform,
// ready for an objectctx.Registry.
func LoadObject(path string, id isect.ObjectID, mat *material.Material) (*objectctx.Object, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("fixture: opening %q: %w", path, err)
	}
	mesh, err := FirstMesh(doc)
	if err != nil {
		return nil, err
	}
	samples := []objectctx.MotionSample{{Time: 0, Transform: core.NewTransform(), Mesh: mesh}}
	return objectctx.NewObject(id, objectctx.HostMesh, samples, mat), nil
}
