package material

import (
	"testing"

	"github.com/duskray/raycore/channel"
	"github.com/duskray/raycore/shader"
)

func TestValidateRequiresAnOutput(t *testing.T) {
	m := New("empty")
	if err := m.Validate(); err == nil {
		t.Error("expected an error for a material with no outputs")
	}
}

func TestValidateWalksReachableShaders(t *testing.T) {
	tex, err := shader.NewInstance("UVTexture")
	if err != nil {
		t.Fatal(err)
	}
	cutout, err := shader.NewInstance("Cutout")
	if err != nil {
		t.Fatal(err)
	}
	rgbIdx, _ := cutout.InputIndex("rgb")
	if err := cutout.ConnectInput(rgbIdx, tex, "rgb"); err != nil {
		t.Fatal(err)
	}

	m := New("cutout-test")
	m.Surface = cutout
	if err := m.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

// TestChannelsUnionsReachableShaders checks that a material's channel
// set equals the union of channels output by all shaders reachable from
// its outputs.
func TestChannelsUnionsReachableShaders(t *testing.T) {
	tex, _ := shader.NewInstance("UVTexture")
	cutout, _ := shader.NewInstance("Cutout")
	rgbIdx, _ := cutout.InputIndex("rgb")
	_ = cutout.ConnectInput(rgbIdx, tex, "rgb")

	m := New("cutout-test")
	m.Surface = cutout

	set := channel.NewSet()
	m.Channels(set)

	for _, want := range []string{"rgb", "alpha", "cutout"} {
		if set.Lookup(want) == channel.NoIndex {
			t.Errorf("expected channel %q to be present after union", want)
		}
	}
}
