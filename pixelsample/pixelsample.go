package pixelsample

import "github.com/duskray/raycore/rendercontext"

// Sample renders one output pixel at (px, py): it lays out the configured
// sub-sample grid, shades each sub-sample independently through th, and
// reconstructs the final channel-width pixel by a weighted sum of the
// sub-sample buffers, normalized by the total filter weight.
//
// shutterT is passed straight through to every sub-sample's camera ray, so
// repeated calls for stills (shutterT constant) reuse the same camera
// sample; a host animating shutter-time sampling varies it per call.
func Sample(render *rendercontext.Render, th *rendercontext.Thread, px, py int, shutterT float32) []float32 {
	samples := Generate(px, py, render.Tunables)

	out := render.Channels.NewPixel()
	var totalWeight float32
	for _, ss := range samples {
		buf := shadeSample(render, th, ss, shutterT)
		for i, v := range buf {
			out[i] += v * ss.Weight
		}
		totalWeight += ss.Weight
	}

	if totalWeight > 0 {
		inv := 1 / totalWeight
		for i := range out {
			out[i] *= inv
		}
	}
	return out
}
