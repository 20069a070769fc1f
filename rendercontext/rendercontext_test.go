package rendercontext

import (
	"testing"

	"github.com/duskray/raycore/camera"
	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/objectctx"
	"github.com/duskray/raycore/ray"
)

func testCamera() *camera.Camera {
	return &camera.Camera{
		Projection: camera.Perspective,
		Samples: []camera.Sample{{
			Time: 0, FocalLength: 50, FilmWidth: 50, Near: 0.1, Far: 1000,
			Transform: core.NewTransform(),
		}},
		AspectRatio: 1,
	}
}

func TestValidateRequiresCameraAndObjects(t *testing.T) {
	r := NewRender()
	if err := r.Validate(); err == nil {
		t.Fatal("expected an error with no camera")
	}
	r.Camera = testCamera()
	if err := r.Validate(); err == nil {
		t.Fatal("expected an error with no object registry")
	}
	r.Objects = objectctx.NewRegistry(nil)
	if err := r.Validate(); err == nil {
		t.Fatal("expected an error with no output format")
	}
	r.FormatWidth, r.FormatHeight = 640, 480
	if err := r.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if !r.Validated() {
		t.Error("expected Validated() to report true after a successful Validate")
	}
}

func TestThreadPushPopIsLIFO(t *testing.T) {
	r := NewRender()
	r.Camera = testCamera()
	r.Objects = objectctx.NewRegistry(nil)
	_ = r.Validate()

	th := NewThread(r, nil, 16)
	root := th.NewRootContext(ray.New(core.NewTransform().Position, core.NewTransform().GetForward(), 0, ray.Camera, 0, 100), ray.Differential{}, 0)
	if th.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1", th.Depth())
	}
	child := root.Push()
	th.Push(child)
	if th.Depth() != 2 {
		t.Fatalf("Depth() = %d, want 2", th.Depth())
	}
	popped := th.Pop()
	if popped != child {
		t.Error("expected Pop to return the most recently pushed frame")
	}
	if th.Depth() != 1 {
		t.Fatalf("Depth() = %d, want 1 after one Pop", th.Depth())
	}
}

func TestInterestRatchetCachesLastLookup(t *testing.T) {
	r := NewRender()
	r.Channels.Add("myAOV")

	ratchet := NewInterestRatchet(r.Channels)
	first := ratchet.Lookup("myAOV")
	second := ratchet.Lookup("myAOV")
	if first != second {
		t.Errorf("expected repeated lookups of the same name to agree: %v vs %v", first, second)
	}

	other := ratchet.Lookup("z")
	if other != r.Channels.Lookup("z") {
		t.Errorf("Lookup(\"z\") = %v, want %v", other, r.Channels.Lookup("z"))
	}
}

func TestThreadPixelSizedAgainstChannels(t *testing.T) {
	r := NewRender()
	r.Channels.Add("myAOV")
	th := NewThread(r, nil, 4)
	if len(th.Pixel()) != r.Channels.Width() {
		t.Errorf("Pixel() has %d entries, want %d", len(th.Pixel()), r.Channels.Width())
	}
}
