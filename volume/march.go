package volume

import (
	"github.com/duskray/raycore/config"
	"github.com/duskray/raycore/hostapi"
	"github.com/duskray/raycore/lighting"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/ray"
	"github.com/duskray/raycore/rendererr"
)

var errCanceled = rendererr.NewCancellationError("volume", nil, "march aborted by host")

// Options configures one March call: the density field, whether to record
// deep samples instead of compositing, and the density-based light
// absorption toggle.
type Options struct {
	Density        DensityParams
	BaseStep       float32
	RecordDeep     bool
	AbsorptionMode bool
	Diagnostic     bool
}

// March collects the overlap range of the given bounds, chooses a step
// size, then steps front-to-back accumulating either a composited pixel or
// a deep-sample list. cancel is polled every tun.CancelPollInterval steps,
// the same cooperative-cancellation cadence hostapi.Canceler documents.
func March(r ray.Ray, bounds []Bound, opts Options, tun config.Tunables, cancel hostapi.Canceler) (Result, error) {
	tmin, tmax, ok := overlapRange(bounds)
	if !ok {
		return Result{}, nil
	}
	if tmin < 0 {
		// A volume entered behind the ray origin: march only the portion
		// ahead of the ray, matching how a surface hit's tmin is already
		// clamped to r.MinDist before this point in the real integration
		// path.
		tmin = 0
	}

	if opts.Diagnostic {
		return Result{Color: math.Vec3{X: tmin, Y: tmax, Z: tmax - tmin}, Alpha: 0, Z: tmax}, nil
	}

	step := chooseStep(opts.BaseStep, tmin, tmax, bounds, tun)
	if step <= 0 {
		return Result{}, nil
	}

	var (
		color       math.Vec3
		alpha       float32
		z           = tmax
		zRecorded   bool
		deep        []DeepSample
		iterations  int
	)

	for zf := tmin; zf < tmax; {
		iterations++
		if tun.CancelPollInterval > 0 && iterations%tun.CancelPollInterval == 0 && cancel != nil && cancel.Aborted() {
			return Result{}, errCanceled
		}

		zb := zf + step
		if zb > tmax {
			zb = tmax
		}
		dz := zb - zf
		mid := (zf + zb) / 2
		p := r.At(mid)

		dens := Density(p, opts.Density)
		alphaStep := alphaFromDensity(dens, dz)

		illum := accumulateIllumination(bounds, mid, p, dens, opts.AbsorptionMode)
		weighted := illum.Mul(alphaStep)

		if opts.RecordDeep {
			deep = append(deep, DeepSample{Front: zf, Back: zb, Z: zb, Color: weighted, Alpha: alphaStep})
		} else {
			color = color.Add(weighted.Mul(1 - alpha))
			alpha += alphaStep * (1 - alpha)
		}

		if alphaStep > 1e-4 && !zRecorded {
			z = zb
			zRecorded = true
		}

		zf = zb
	}

	return Result{Color: color, Alpha: alpha, Z: z, Deep: deep}, nil
}

// accumulateIllumination sums the weighted colour of every bound whose
// range contains the step midpoint.
func accumulateIllumination(bounds []Bound, mid float32, p math.Vec3, density float32, absorptionMode bool) math.Vec3 {
	var total math.Vec3
	for _, b := range bounds {
		if mid < b.Enter || mid > b.Exit {
			continue
		}
		sample := lighting.Evaluate(b.Light, p, math.Vec3{})
		c := sample.Color.Mul(sample.Shadow)
		if absorptionMode {
			c = absorb(c, density, sample.Dist, b.Light.Near())
		}
		total = total.Add(c)
	}
	return total
}
