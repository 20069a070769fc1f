package fixture

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/duskray/raycore/objectctx"
)

func TestMeshFromAttributesDefaultsMissingNormalAndUV(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
	mesh := meshFromAttributes(positions, nil, nil, []uint32{0, 1, 2})

	if len(mesh.Vertices) != 3 {
		t.Fatalf("got %d vertices, want 3", len(mesh.Vertices))
	}
	for i, v := range mesh.Vertices {
		if v.Normal.Y != 1 || v.Normal.X != 0 || v.Normal.Z != 0 {
			t.Errorf("vertex %d normal = %v, want default +Y", i, v.Normal)
		}
		if v.Color.R != 1 || v.Color.G != 1 || v.Color.B != 1 || v.Color.A != 1 {
			t.Errorf("vertex %d colour = %v, want white", i, v.Color)
		}
		if v.UV.X != 0 || v.UV.Y != 0 {
			t.Errorf("vertex %d UV = %v, want zero default", i, v.UV)
		}
	}
	if len(mesh.Indices) != 3 || mesh.Indices[2] != 2 {
		t.Errorf("indices = %v, want [0 1 2] passed through unchanged", mesh.Indices)
	}
}

func TestMeshFromAttributesUsesSuppliedNormalsAndUVs(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}}
	normals := [][3]float32{{0, 0, 1}, {0, 0, 1}}
	uvs := [][2]float32{{0, 0}, {1, 0}}

	mesh := meshFromAttributes(positions, normals, uvs, nil)
	if mesh.Vertices[1].Normal.Z != 1 {
		t.Errorf("vertex 1 normal.Z = %v, want 1", mesh.Vertices[1].Normal.Z)
	}
	if mesh.Vertices[1].UV.X != 1 {
		t.Errorf("vertex 1 UV.X = %v, want 1", mesh.Vertices[1].UV.X)
	}
}

func TestMeshFromAttributesTruncatesToShorterOptionalArrays(t *testing.T) {
	positions := [][3]float32{{0, 0, 0}, {1, 0, 0}, {2, 0, 0}}
	normals := [][3]float32{{0, 1, 0}} // only one normal for three vertices
	mesh := meshFromAttributes(positions, normals, nil, nil)

	if mesh.Vertices[0].Normal.Y != 1 {
		t.Errorf("vertex 0 normal.Y = %v, want 1 (supplied)", mesh.Vertices[0].Normal.Y)
	}
	if mesh.Vertices[1].Normal.Y != 1 || mesh.Vertices[1].Normal.X != 0 {
		t.Errorf("vertex 1 normal = %v, want the +Y default once the supplied array runs out", mesh.Vertices[1].Normal)
	}
}

// TestLoadObjectFromRealAsset exercises the glTF decode path end to end
// against a real .glb/.gltf file when one is available next to the test
// binary; it skips rather than fails when no fixture asset is checked
// in, since this repository does not vendor binary test data.
func TestLoadObjectFromRealAsset(t *testing.T) {
	path := filepath.Join("testdata", "triangle.glb")
	if _, err := os.Stat(path); err != nil {
		t.Skipf("no glTF fixture asset at %s: %v", path, err)
	}

	obj, err := LoadObject(path, 1, nil)
	if err != nil {
		t.Fatalf("LoadObject: %v", err)
	}
	reg := objectctx.NewRegistry([]*objectctx.Object{obj})
	if reg.Objects()[0].StatusNow() != objectctx.NotDiced {
		t.Error("expected a freshly loaded object to start NotDiced")
	}
}
