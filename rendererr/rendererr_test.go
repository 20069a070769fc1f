package rendererr

import (
	"errors"
	"testing"
)

func TestErrorFormatsWithAndWithoutCause(t *testing.T) {
	plain := NewConfigurationError("camera", nil, "unknown projection %d", 7)
	if plain.Error() != "configuration: camera: unknown projection 7" {
		t.Errorf("unexpected message: %q", plain.Error())
	}

	wrapped := NewResourceError("texture", errors.New("no such file"), "load %q", "tile.exr")
	want := "resource: texture: load \"tile.exr\": no such file"
	if wrapped.Error() != want {
		t.Errorf("got %q, want %q", wrapped.Error(), want)
	}
}

func TestUnwrapExposesCause(t *testing.T) {
	cause := errors.New("boom")
	err := NewNumericalError("volume", cause, "march diverged")
	if !errors.Is(err, cause) {
		t.Error("errors.Is should find the wrapped cause")
	}
}

func TestIsWalksWrapChain(t *testing.T) {
	inner := NewTopologyError("shader", nil, "cycle detected")
	outer := NewResourceError("material", inner, "while validating")
	if !Is(outer, Topology) {
		t.Error("Is should find the Topology kind through the wrap chain")
	}
	if Is(outer, Cancellation) {
		t.Error("Is should not match an unrelated kind")
	}
}
