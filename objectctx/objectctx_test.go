package objectctx

import (
	"sync"
	"testing"

	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/ray"
)

func quadMesh() core.MeshData {
	return core.MeshData{
		Vertices: []core.Vertex{
			{Position: math.Vec3{X: -1, Y: -1, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 0}},
			{Position: math.Vec3{X: 1, Y: -1, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 0}},
			{Position: math.Vec3{X: 1, Y: 1, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 1, Y: 1}},
			{Position: math.Vec3{X: -1, Y: 1, Z: 0}, Normal: math.Vec3{Z: 1}, UV: math.Vec2{X: 0, Y: 1}},
		},
		Indices: []uint32{0, 1, 2, 0, 2, 3},
	}
}

func newQuadObject(id isect.ObjectID) *Object {
	samples := []MotionSample{{Time: 0, Transform: core.NewTransform(), Mesh: quadMesh()}}
	return NewObject(id, HostMesh, samples, nil)
}

// TestEnsureDicedConcurrentRace 8 goroutines race on the
// NotDiced -> Dicing transition; exactly one performs the work and all
// observe Diced afterward with PrimList populated exactly once and no
// duplicate dicing pass.
func TestEnsureDicedConcurrentRace(t *testing.T) {
	obj := newQuadObject(1)

	const n = 8
	var wg sync.WaitGroup
	errs := make([]error, n)
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(i int) {
			defer wg.Done()
			errs[i] = obj.EnsureDiced()
		}(i)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			t.Fatalf("goroutine %d: EnsureDiced: %v", i, err)
		}
	}
	if obj.StatusNow() != Diced {
		t.Fatalf("status = %v, want Diced", obj.StatusNow())
	}
	if len(obj.PrimList) != 2 {
		t.Fatalf("PrimList has %d entries, want exactly 2 (one dicing pass)", len(obj.PrimList))
	}
	if len(obj.SurfaceList) != 2 {
		t.Fatalf("SurfaceList has %d entries, want exactly 2", len(obj.SurfaceList))
	}
}

func TestEnsureDicedRejectsEmptyMesh(t *testing.T) {
	obj := NewObject(1, HostMesh, []MotionSample{{Transform: core.NewTransform()}}, nil)
	if err := obj.EnsureDiced(); err == nil {
		t.Fatal("expected an error dicing an object with no geometry")
	}
	if obj.StatusNow() != NotDiced {
		t.Errorf("status = %v, want NotDiced after a failed dice so a later fix can retry", obj.StatusNow())
	}
}

func TestRegistryFirstIntersectionHitsDicedObject(t *testing.T) {
	obj := newQuadObject(1)
	reg := NewRegistry([]*Object{obj})

	r := ray.New(math.Vec3{X: 0, Y: 0, Z: -5}, math.Vec3{Z: 1}, 0, ray.Camera, 1e-4, 1e6)
	hit, ok := reg.FirstIntersection(r)
	if !ok {
		t.Fatal("expected a hit on the quad")
	}
	if hit.Object != 1 {
		t.Errorf("Object = %d, want 1", hit.Object)
	}
	if hit.T <= 4.9 || hit.T >= 5.1 {
		t.Errorf("T = %v, want approximately 5", hit.T)
	}
}

func TestRegistryMissesWhenRayDoesNotIntersect(t *testing.T) {
	obj := newQuadObject(1)
	reg := NewRegistry([]*Object{obj})

	r := ray.New(math.Vec3{X: 100, Y: 100, Z: -5}, math.Vec3{Z: 1}, 0, ray.Camera, 1e-4, 1e6)
	if _, ok := reg.FirstIntersection(r); ok {
		t.Error("expected a miss far from the quad")
	}
}

// TestBlurredMeshDicesBothSamples exercises a two-sample motion-blurred
// mesh with matching topology.
func TestBlurredMeshDicesBothSamples(t *testing.T) {
	m0 := quadMesh()
	m1 := quadMesh()
	for i := range m1.Vertices {
		m1.Vertices[i].Position.X += 2
	}
	samples := []MotionSample{
		{Time: 0, Transform: core.NewTransform(), Mesh: m0},
		{Time: 1, Transform: core.NewTransform(), Mesh: m1},
	}
	obj := NewObject(1, HostMesh, samples, nil)
	if err := obj.EnsureDiced(); err != nil {
		t.Fatal(err)
	}
	if !obj.Blurred {
		t.Fatal("expected motion blur to survive matching-topology samples")
	}
	for _, p := range obj.PrimList {
		if !p.Blurred {
			t.Error("expected every triangle to carry a second motion sample")
		}
	}
}

func TestMismatchedTopologyDemotesToUnblurred(t *testing.T) {
	m0 := quadMesh()
	m1 := quadMesh()
	m1.Vertices = m1.Vertices[:3] // drop a vertex: topology mismatch
	m1.Indices = []uint32{0, 1, 2}
	samples := []MotionSample{
		{Time: 0, Transform: core.NewTransform(), Mesh: m0},
		{Time: 1, Transform: core.NewTransform(), Mesh: m1},
	}
	obj := NewObject(1, HostMesh, samples, nil)
	if err := obj.EnsureDiced(); err != nil {
		t.Fatal(err)
	}
	if obj.Blurred {
		t.Error("expected mismatched topology to demote the object to non-blurred")
	}
}

func TestDicePointsBuildsOneSphereTestPerVertex(t *testing.T) {
	samples := []MotionSample{{
		Transform: core.NewTransform(),
		Mesh: core.MeshData{
			Vertices: []core.Vertex{
				{Position: math.Vec3{X: 0, Y: 0, Z: 0}},
				{Position: math.Vec3{X: 5, Y: 0, Z: 0}},
			},
		},
	}}
	obj := NewObject(2, HostPoint, samples, nil)
	if err := obj.EnsureDiced(); err != nil {
		t.Fatal(err)
	}
	if len(obj.PrimList) != 2 {
		t.Fatalf("got %d point primitives, want 2", len(obj.PrimList))
	}
	for _, p := range obj.PrimList {
		if p.Kind != PrimPoint {
			t.Error("expected PrimPoint primitives from a point host")
		}
	}
}
