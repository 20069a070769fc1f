package volume

import (
	stdmath "math"

	"github.com/duskray/raycore/math"
)

// FalloffCurve shapes density along one world axis, e.g. a gaussian or
// linear ramp used to taper a volume's edges.
type FalloffCurve func(coord float32) float32

// DensityParams configures volume.Density: atmospheric density ×
// (1 + mixed 3-D noise sample, if enabled) × (product of spatial
// falloff curves along X, Y, Z, if enabled) + base density.
type DensityParams struct {
	AtmosphericDensity float32
	BaseDensity        float32

	NoiseEnabled bool
	NoiseScale   float32

	FalloffEnabled bool
	FalloffX       FalloffCurve
	FalloffY       FalloffCurve
	FalloffZ       FalloffCurve
}

// Density evaluates the density field at world point p.
func Density(p math.Vec3, params DensityParams) float32 {
	d := params.AtmosphericDensity
	if params.NoiseEnabled {
		d *= 1 + noise3(p.X*params.NoiseScale, p.Y*params.NoiseScale, p.Z*params.NoiseScale)
	}
	if params.FalloffEnabled {
		d *= falloffOrOne(params.FalloffX, p.X) * falloffOrOne(params.FalloffY, p.Y) * falloffOrOne(params.FalloffZ, p.Z)
	}
	return d + params.BaseDensity
}

func falloffOrOne(curve FalloffCurve, coord float32) float32 {
	if curve == nil {
		return 1
	}
	return curve(coord)
}

// noise3 is a deterministic hash-based value noise in [-1,1], the same
// cheap mixing-hash idiom as shader.hashNoise3, standing in for a real
// Perlin/Worley implementation — only the mixed-noise term needs to
// exist, not a specific algorithm.
func noise3(x, y, z float32) float32 {
	h := uint32(2166136261)
	for _, f := range [3]float32{x, y, z} {
		bits := uint32(int64(f * 1000003))
		h = (h ^ bits) * 16777619
	}
	return float32(h%200001)/100000 - 1
}

// absorb applies per-step light absorption: multiplies the light
// colour by exp(−density · (dist − near)).
func absorb(color math.Vec3, density, dist, near float32) math.Vec3 {
	if dist <= near {
		return color
	}
	factor := float32(stdmath.Exp(float64(-density * (dist - near))))
	return color.Mul(factor)
}

// alphaFromDensity converts a density accumulated over Δz into a voxel
// absorption factor: α = 1 − exp(−density·Δz).
func alphaFromDensity(density, dz float32) float32 {
	return 1 - float32(stdmath.Exp(float64(-density*dz)))
}
