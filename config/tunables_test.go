package config

import "testing"

func TestLoadOverridesDefaults(t *testing.T) {
	doc := []byte(`
min_ray_steps: 4
max_ray_steps: 64
filter: cubic
preview: true
`)
	tun, err := Load(doc)
	if err != nil {
		t.Fatal(err)
	}
	if tun.MinRaySteps != 4 || tun.MaxRaySteps != 64 {
		t.Errorf("got min=%d max=%d", tun.MinRaySteps, tun.MaxRaySteps)
	}
	if tun.Filter != FilterCubic {
		t.Errorf("Filter = %q, want cubic", tun.Filter)
	}
	if tun.RayDepth.Reflection != Default().RayDepth.Reflection {
		t.Error("expected unspecified fields to keep their defaults")
	}
}

func TestValidateRejectsInvertedStepBounds(t *testing.T) {
	tun := Default()
	tun.MinRaySteps = 100
	tun.MaxRaySteps = 10
	if err := tun.Validate(); err == nil {
		t.Error("expected an error for min > max")
	}
}

func TestValidateRejectsUnknownFilter(t *testing.T) {
	tun := Default()
	tun.Filter = "lanczos"
	if err := tun.Validate(); err == nil {
		t.Error("expected an error for an unknown filter")
	}
}

func TestEffectiveMaxStepsCapsInPreview(t *testing.T) {
	tun := Default()
	tun.Preview = true
	if got := tun.EffectiveMaxSteps(); got != tun.MaxPreviewRaySteps {
		t.Errorf("EffectiveMaxSteps() = %d, want %d", got, tun.MaxPreviewRaySteps)
	}
	tun.Preview = false
	if got := tun.EffectiveMaxSteps(); got != tun.MaxRaySteps {
		t.Errorf("EffectiveMaxSteps() = %d, want %d", got, tun.MaxRaySteps)
	}
}
