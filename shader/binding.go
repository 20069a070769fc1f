package shader

import (
	"github.com/duskray/raycore/shadectx"
	"github.com/duskray/raycore/texture"
)

// BindingKind selects which of the five forms an input's value comes from.
type BindingKind int

const (
	BindNone BindingKind = iota
	BindConstant
	BindAttribute
	BindTexture
	BindUpstream
	BindLegacyPixel
)

// TextureBinding holds a texture source's tile cache, four channel
// indices, and the UDIM tile offset. Sampling always reads the source's
// first four channels in order; R, G, B and A are not consulted.
type TextureBinding struct {
	Cache              *texture.TileCache
	R, G, B, A         int
	TileU, TileV       int
}

// LegacyPixelFunc is the "external image-pixel source" binding kind: a
// per-pixel sampler callable with a vertex context, kept as a plain Go
// func since the legacy callers this binding exists for vary per host.
type LegacyPixelFunc func(stx *shadectx.ShaderContext) [4]float32

// Binding is the tagged union over an input knob's bound form.
type Binding struct {
	Kind BindingKind

	Constant Value

	AttributeName string

	Texture *TextureBinding

	Upstream       *Instance
	UpstreamOutput int

	LegacyPixel LegacyPixelFunc
}
