package channel

import (
	"testing"

	"github.com/duskray/raycore/shadectx"
)

func TestSetInternDeduplicates(t *testing.T) {
	s := NewSet()
	base := s.Width()
	a := s.Add("normal")
	b := s.Add("Normal")
	if a != b {
		t.Errorf("Add should be case-insensitive and dedupe, got %v and %v", a, b)
	}
	if s.Width() != base+1 {
		t.Errorf("expected width %d, got %d", base+1, s.Width())
	}
}

func TestSetUnionRemapsIndices(t *testing.T) {
	a := NewSet()
	aIdx := a.Add("position")

	b := NewSet()
	bIdx := b.Add("position")

	remap := a.Union(b)
	if remap[bIdx] != aIdx {
		t.Errorf("union should map b's %q index onto a's existing index", "position")
	}
}

func TestMergeModes(t *testing.T) {
	dst := []float32{1, 1, 1}
	src := []float32{0, 2, 0.5}

	Plus.Merge(dst, src, 1)
	if dst[0] != 1 || dst[1] != 3 || dst[2] != 1.5 {
		t.Errorf("Plus merge wrong: %v", dst)
	}

	dst = []float32{1, 1, 1}
	Min.Merge(dst, src, 1)
	if dst[0] != 0 || dst[1] != 1 || dst[2] != 0.5 {
		t.Errorf("Min merge wrong: %v", dst)
	}
}

func TestAOVLayerFillScattersToOwnedChannels(t *testing.T) {
	s := NewSet()
	nx := s.Add("n.x")
	_ = s.Add("n.y") // occupies a slot between nx and nz, used to test scatter
	nz := s.Add("n.z")

	layer := &AOVLayer{
		Name:     "n",
		Channels: []Index{nx, nz},
		Merge:    Plus,
		Handler: func(_ *shadectx.ShaderContext, out []float32) {
			out[0] = 1
			out[1] = 2
		},
	}

	pixel := s.NewPixel()
	layer.Fill(nil, pixel, 1)
	if pixel[nx] != 1 || pixel[nz] != 2 {
		t.Errorf("expected scattered values at nx/nz, got %v", pixel)
	}
}

func TestNullHandlerWritesZero(t *testing.T) {
	out := []float32{1, 2, 3}
	NullHandler(nil, out)
	for i, v := range out {
		if v != 0 {
			t.Errorf("out[%d] = %v, want 0", i, v)
		}
	}
}
