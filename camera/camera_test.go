package camera

import (
	"testing"

	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/math"
)

const eps = 1e-3

func approxVec3(a, b math.Vec3, e float32) bool { return a.Distance(b) <= e }

func singleSample() Sample {
	return Sample{
		Time:        0,
		FocalLength: 50,
		FilmWidth:   50,
		Near:        0.01,
		Far:         1000,
		Transform:   core.NewTransform(),
	}
}

// TestPerspectiveSinglePixel at pixel center (0.5, 0.5) of a
// 2x2 image, the constructed local direction equals normalize(-0.25,-0.25,-1).
func TestPerspectiveSinglePixel(t *testing.T) {
	c := &Camera{Projection: Perspective, Samples: []Sample{singleSample()}, AspectRatio: 1}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	r, _ := c.NewRay(RaySpec{X: 0.5, Y: 0.5, ImageWidth: 2, ImageHeight: 2})

	want := math.Vec3{X: -0.25, Y: -0.25, Z: -1}.Normalize()
	if !approxVec3(r.Dir, want, eps) {
		t.Errorf("direction = %v, want %v", r.Dir, want)
	}
}

// TestSphericalCenterDirection NDC (0,0) under the Spherical
// projection maps to direction (0,0,1).
func TestSphericalCenterDirection(t *testing.T) {
	c := &Camera{Projection: Spherical, Samples: []Sample{singleSample()}, AspectRatio: 1}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	dir := c.direction(math.Vec2{X: 0, Y: 0}, c.Samples[0])

	want := math.Vec3{X: 0, Y: 0, Z: 1}
	if !approxVec3(dir, want, eps) {
		t.Errorf("direction = %v, want %v", dir, want)
	}
}

func TestValidateRejectsUnknownProjection(t *testing.T) {
	c := &Camera{Projection: Projection(99), Samples: []Sample{singleSample()}}
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for an unknown projection")
	}
}

func TestValidateRejectsNoSamples(t *testing.T) {
	c := &Camera{Projection: Perspective}
	if err := c.Validate(); err == nil {
		t.Fatal("expected an error for a camera with no shutter samples")
	}
}

func TestValidateRecoversNearExceedsFar(t *testing.T) {
	s := singleSample()
	s.Near, s.Far = 10, 1
	c := &Camera{Projection: Perspective, Samples: []Sample{s}}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate should recover locally, got error: %v", err)
	}
	if c.Samples[0].Far <= c.Samples[0].Near {
		t.Errorf("expected Far to be pushed past Near, got Near=%v Far=%v", c.Samples[0].Near, c.Samples[0].Far)
	}
}

// TestShutterInterpolationMidpoint checks that a shutter fraction of 0.5
// between two time samples produces the midpoint transform.
func TestShutterInterpolationMidpoint(t *testing.T) {
	open := singleSample()
	open.Time = 0
	open.Transform.Position = math.Vec3{X: 0, Y: 0, Z: 0}

	closeSample := singleSample()
	closeSample.Time = 1
	closeSample.Transform.Position = math.Vec3{X: 10, Y: 0, Z: 0}

	c := &Camera{Projection: Perspective, Samples: []Sample{open, closeSample}, AspectRatio: 1}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	r, _ := c.NewRay(RaySpec{X: 1, Y: 1, ImageWidth: 2, ImageHeight: 2, ShutterT: 0.5})
	if !approxVec3(r.Origin, math.Vec3{X: 5, Y: 0, Z: 0}, eps) {
		t.Errorf("origin = %v, want (5,0,0)", r.Origin)
	}
}

// TestDifferentialRaysAreDistinctButClose checks that differential ray
// origins coincide with the primary ray's origin, and their directions lie
// close to the primary direction for a one-pixel offset.
func TestDifferentialRaysAreDistinctButClose(t *testing.T) {
	c := &Camera{Projection: Perspective, Samples: []Sample{singleSample()}, AspectRatio: 1}
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	r, diff := c.NewRay(RaySpec{X: 100, Y: 100, ImageWidth: 200, ImageHeight: 200, WantDifferentials: true})
	if !diff.HasDifferentials {
		t.Fatal("expected HasDifferentials")
	}
	if diff.RxOrigin != r.Origin || diff.RyOrigin != r.Origin {
		t.Error("differential origins should match the primary ray's origin for a pinhole camera")
	}
	if diff.RxDir == r.Dir || diff.RyDir == r.Dir {
		t.Error("differential directions should differ from the primary direction off-axis")
	}
	if r.Dir.Distance(diff.RxDir) > 0.1 || r.Dir.Distance(diff.RyDir) > 0.1 {
		t.Error("differential directions should stay close to the primary direction for a one-pixel offset")
	}
}
