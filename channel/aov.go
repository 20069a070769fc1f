package channel

import "github.com/duskray/raycore/shadectx"

// MergeMode selects how an AOV layer's values are composited into the
// accumulated pixel buffer.
type MergeMode int

const (
	PremultUnder MergeMode = iota
	Under
	Plus
	Min
	Mid
	Max
)

// Merge combines src into dst in place using m, one float per channel.
func (m MergeMode) Merge(dst, src []float32, alpha float32) {
	n := len(dst)
	if len(src) < n {
		n = len(src)
	}
	switch m {
	case PremultUnder:
		for i := 0; i < n; i++ {
			dst[i] = src[i]*alpha + dst[i]*(1-alpha)
		}
	case Under:
		for i := 0; i < n; i++ {
			dst[i] = src[i] + dst[i]*(1-alpha)
		}
	case Plus:
		for i := 0; i < n; i++ {
			dst[i] += src[i]
		}
	case Min:
		for i := 0; i < n; i++ {
			if src[i] < dst[i] {
				dst[i] = src[i]
			}
		}
	case Max:
		for i := 0; i < n; i++ {
			if src[i] > dst[i] {
				dst[i] = src[i]
			}
		}
	case Mid:
		for i := 0; i < n; i++ {
			dst[i] = (dst[i] + src[i]) / 2
		}
	}
}

// Handler reads whatever fields an AOV layer is interested in out of the
// shader context and writes them into out, sized to the layer's output
// channels.
type Handler func(stx *shadectx.ShaderContext, out []float32)

// AOVLayer is one extra named output image layer: a set of output
// channels, a merge mode, an unpremult flag, and the handler that fills
// its channels from a shader context.
type AOVLayer struct {
	Name      string
	Channels  []Index
	Merge     MergeMode
	Unpremult bool
	Handler   Handler
}

// Fill invokes the layer's handler and merges its result into dst using
// the layer's Merge mode, scattering the handler's contiguous output into
// the (possibly non-contiguous) channel indices this layer owns.
func (l *AOVLayer) Fill(stx *shadectx.ShaderContext, dst []float32, alpha float32) {
	out := make([]float32, len(l.Channels))
	l.Handler(stx, out)
	tmp := make([]float32, len(l.Channels))
	for i, idx := range l.Channels {
		tmp[i] = dst[idx]
	}
	l.Merge.Merge(tmp, out, alpha)
	for i, idx := range l.Channels {
		dst[idx] = tmp[i]
	}
}

// NullHandler writes zero to every output channel. Nothing in this package
// maps AOV names to handlers, so a layer uses it only when its Handler is
// set to it.
func NullHandler(_ *shadectx.ShaderContext, out []float32) {
	for i := range out {
		out[i] = 0
	}
}
