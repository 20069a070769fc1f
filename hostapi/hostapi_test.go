package hostapi

import (
	"testing"

	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/material"
	"github.com/duskray/raycore/math"
)

type fakeScene struct {
	mat *material.Material
}

func (f fakeScene) ObjectCount() int { return 1 }

func (f fakeScene) ObjectSamples(index int) []ObjectSample {
	return []ObjectSample{{Time: 0, Transform: core.NewTransform(), Mesh: core.MeshData{}}}
}

func (f fakeScene) ObjectMaterial(index int) *material.Material { return f.mat }

func (f fakeScene) ObjectScreenBoundsHint(index int) (math.Vec2, math.Vec2, bool) {
	return math.Vec2{}, math.Vec2{X: 1, Y: 1}, true
}

func TestSceneSourceSatisfiedByFake(t *testing.T) {
	var s SceneSource = fakeScene{mat: material.New("test")}
	if s.ObjectCount() != 1 {
		t.Fatalf("ObjectCount() = %d, want 1", s.ObjectCount())
	}
	samples := s.ObjectSamples(0)
	if len(samples) != 1 {
		t.Fatalf("ObjectSamples() returned %d samples, want 1", len(samples))
	}
	if s.ObjectMaterial(0).Name != "test" {
		t.Error("expected the fake's material to round-trip")
	}
	_, max, ok := s.ObjectScreenBoundsHint(0)
	if !ok || max.X != 1 {
		t.Errorf("ObjectScreenBoundsHint = %v, %v, want (., (1,1), true)", max, ok)
	}
}

func TestNeverCancelNeverAborts(t *testing.T) {
	var c Canceler = NeverCancel{}
	if c.Aborted() {
		t.Error("NeverCancel.Aborted() should always be false")
	}
}
