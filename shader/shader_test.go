package shader

import (
	"testing"

	"github.com/duskray/raycore/shadectx"
)

func constantUVTexture(t *testing.T, r, g, b, a float64) *Instance {
	t.Helper()
	inst, err := NewInstance("UVTexture")
	if err != nil {
		t.Fatal(err)
	}
	texIdx, _ := inst.InputIndex("texture")
	inst.inputs[texIdx] = Binding{Kind: BindConstant, Constant: Value{Type: TColor4, Vec: [4]float64{r, g, b, a}}}
	return inst
}

// TestCutoutChain checks that Cutout(UVTexture(constant red)) yields
// rgb=(0,0,0), alpha=1, cutout=1 at any UV.
func TestCutoutChain(t *testing.T) {
	red := constantUVTexture(t, 1, 0, 0, 1)

	cutout, err := NewInstance("Cutout")
	if err != nil {
		t.Fatal(err)
	}
	rgbIdx, _ := cutout.InputIndex("rgb")
	alphaIdx, _ := cutout.InputIndex("alpha")
	if err := cutout.ConnectInput(rgbIdx, red, "rgb"); err != nil {
		t.Fatalf("ConnectInput rgb: %v", err)
	}
	if err := cutout.ConnectInput(alphaIdx, red, "alpha"); err != nil {
		t.Fatalf("ConnectInput alpha: %v", err)
	}

	stx := &shadectx.ShaderContext{}
	res, err := cutout.EvaluateSurface(stx)
	if err != nil {
		t.Fatal(err)
	}
	if res.RGBA[0] != 0 || res.RGBA[1] != 0 || res.RGBA[2] != 0 {
		t.Errorf("rgb = %v, want (0,0,0)", res.RGBA[:3])
	}
	if res.RGBA[3] != 1 {
		t.Errorf("alpha = %v, want 1", res.RGBA[3])
	}
	if res.Extra["cutout"] != 1 {
		t.Errorf("cutout = %v, want 1", res.Extra["cutout"])
	}
}

// TestCutoutInvariant checks that a cutout surface always produces
// {rgb=0, alpha=passthrough, cutout=1} regardless of upstream shader values.
func TestCutoutInvariant(t *testing.T) {
	for _, alpha := range []float64{0, 0.25, 1} {
		upstream := constantUVTexture(t, 0.3, 0.6, 0.9, alpha)
		cutout, _ := NewInstance("Cutout")
		rgbIdx, _ := cutout.InputIndex("rgb")
		alphaIdx, _ := cutout.InputIndex("alpha")
		if err := cutout.ConnectInput(rgbIdx, upstream, "rgb"); err != nil {
			t.Fatal(err)
		}
		if err := cutout.ConnectInput(alphaIdx, upstream, "alpha"); err != nil {
			t.Fatal(err)
		}
		res, err := cutout.EvaluateSurface(&shadectx.ShaderContext{})
		if err != nil {
			t.Fatal(err)
		}
		if res.RGBA != [4]float32{0, 0, 0, float32(alpha)} {
			t.Errorf("alpha=%v: got %v", alpha, res.RGBA)
		}
		if res.Extra["cutout"] != 1 {
			t.Errorf("alpha=%v: cutout not set", alpha)
		}
	}
}

// TestEvaluateSurfaceDeterministic checks that, given all-constant inputs,
// EvaluateSurface yields identical bits for identical stx across
// goroutines.
func TestEvaluateSurfaceDeterministic(t *testing.T) {
	inst := constantUVTexture(t, 0.1, 0.2, 0.3, 0.4)
	stx := &shadectx.ShaderContext{}

	results := make(chan [4]float32, 8)
	for i := 0; i < 8; i++ {
		go func() {
			res, err := inst.EvaluateSurface(stx)
			if err != nil {
				t.Error(err)
				results <- [4]float32{}
				return
			}
			results <- res.RGBA
		}()
	}
	first := <-results
	for i := 1; i < 8; i++ {
		if got := <-results; got != first {
			t.Errorf("evaluation %d = %v, want %v", i, got, first)
		}
	}
}

func TestConnectInputRejectsCycle(t *testing.T) {
	a, _ := NewInstance("Cutout")
	b, _ := NewInstance("Cutout")

	bRGB, _ := b.InputIndex("rgb")
	if err := b.ConnectInput(bRGB, a, "rgb"); err != nil {
		t.Fatal(err)
	}

	aRGB, _ := a.InputIndex("rgb")
	if err := a.ConnectInput(aRGB, b, "rgb"); err == nil {
		t.Error("expected a cycle error")
	}
}

func TestConnectInputRejectsTypeMismatch(t *testing.T) {
	colorSource, _ := NewInstance("UVTexture")
	target, _ := NewInstance("AttributeReadout")

	attrIdx, _ := target.InputIndex("attribute")
	if err := target.ConnectInput(attrIdx, colorSource, "rgb"); err == nil {
		t.Error("expected a type-mismatch error binding a color3 output to a string input")
	}
}

func TestParseLiteralArity(t *testing.T) {
	if _, err := ParseLiteral(TVec3, "1 1"); err == nil {
		t.Error("expected an arity error")
	}
	v, err := ParseLiteral(TVec3, "1 0.5 0.5")
	if err != nil {
		t.Fatal(err)
	}
	if v.Vec3Value().X != 1 {
		t.Errorf("got %v", v.Vec3Value())
	}
}

func TestValidateIsIdempotent(t *testing.T) {
	inst, _ := NewInstance("Cutout")
	if err := inst.Validate(); err != nil {
		t.Fatal(err)
	}
	if err := inst.Validate(); err != nil {
		t.Fatal(err)
	}
}
