// Package pixelsample implements the per-pixel render driver: it turns one
// pixel into a grid of camera sub-samples, shades each through the BVH and
// shader graph, marches any volumes the ray crosses, and filters the
// sub-samples back down into the channel buffer the host receives.
package pixelsample

import (
	"math/rand"

	"github.com/duskray/raycore/config"
)

// SubSample is one sample position within a pixel: continuous image-space
// coordinates ready for camera.RaySpec.X/Y, and the reconstruction-filter
// weight this sample contributes to the final pixel once shaded.
type SubSample struct {
	X, Y   float32
	Weight float32
}

// Generate lays out tun.SubSampleGridX * tun.SubSampleGridY sample
// positions within the pixel at (px, py), regular or stochastically
// jittered per tun.StochasticJitter, each carrying the filter weight its
// offset from the pixel center earns under tun.Filter.
func Generate(px, py int, tun config.Tunables) []SubSample {
	gx, gy := tun.SubSampleGridX, tun.SubSampleGridY
	if gx <= 0 {
		gx = 1
	}
	if gy <= 0 {
		gy = 1
	}

	var rng *rand.Rand
	if tun.StochasticJitter {
		rng = rand.New(rand.NewSource(pixelSeed(px, py)))
	}

	out := make([]SubSample, 0, gx*gy)
	for j := 0; j < gy; j++ {
		for i := 0; i < gx; i++ {
			cellX := (float32(i) + 0.5) / float32(gx)
			cellY := (float32(j) + 0.5) / float32(gy)
			if rng != nil {
				cellX = (float32(i) + rng.Float32()) / float32(gx)
				cellY = (float32(j) + rng.Float32()) / float32(gy)
			}
			dx, dy := cellX-0.5, cellY-0.5
			out = append(out, SubSample{
				X:      float32(px) + cellX,
				Y:      float32(py) + cellY,
				Weight: filterWeight(dx, dy, tun),
			})
		}
	}
	return out
}

// pixelSeed folds a pixel coordinate into a single deterministic seed so
// re-rendering the same pixel reproduces the same jitter pattern.
func pixelSeed(px, py int) int64 {
	return int64(px)*1000003 + int64(py)
}

// filterWeight returns the reconstruction-filter weight for a sub-sample
// offset (dx, dy) from the pixel center, in pixel units.
func filterWeight(dx, dy float32, tun config.Tunables) float32 {
	if tun.Filter == config.FilterCubic {
		return cubicFilter1D(dx) * cubicFilter1D(dy)
	}
	return 1
}

// cubicFilter1D is the same Mitchell-Netravali (B=C=1/3) kernel
// texture.Sample's minification filter uses, applied here to a sample's
// distance from the pixel center instead of a texel footprint.
func cubicFilter1D(x float32) float32 {
	const b, c = 1.0 / 3, 1.0 / 3
	if x < 0 {
		x = -x
	}
	x2, x3 := x*x, x*x*x
	switch {
	case x < 1:
		return ((12-9*b-6*c)*x3 + (-18+12*b+6*c)*x2 + (6 - 2*b)) / 6
	case x < 2:
		return ((-b-6*c)*x3 + (6*b+30*c)*x2 + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	default:
		return 0
	}
}
