// Package volume implements the volume integrator: front-to-back density marching through a set of light-volume
// bounds, with an optional deep-sample output and a diagnostic
// visualization substitution.
package volume

import (
	"github.com/duskray/raycore/lighting"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/ray"
)

// Bound is one volume intersection along a ray: a light's geometric
// extent, entered at parametric distance Enter and exited at Exit — a
// [tmin, tmax] pair on the ray, one per ray-volume overlap.
type Bound struct {
	Light      lighting.VolumetricSource
	Enter, Exit float32
}

// Entry is a scene-level light-volume: a light's geometric extent plus the
// world-space AABB a ray is tested against to find where it enters and
// exits, independent of any particular ray.
type Entry struct {
	Light  lighting.VolumetricSource
	Bounds math.AABB
}

// BoundsAlong ray-tests every entry's AABB and returns the per-ray Bound
// list March needs, skipping entries the ray misses entirely. Each Exit is
// clamped to r.MaxDist, so a bound never extends past the ray's far end.
func BoundsAlong(r ray.Ray, entries []Entry) []Bound {
	var out []Bound
	for _, e := range entries {
		tmin, tmax, hit := ray.IntersectAABBRange(r, e.Bounds)
		if !hit {
			continue
		}
		if tmax > r.MaxDist {
			tmax = r.MaxDist
		}
		out = append(out, Bound{Light: e.Light, Enter: tmin, Exit: tmax})
	}
	return out
}

// segmentLength returns a bound's march length along the ray.
func (b Bound) segmentLength() float32 { return b.Exit - b.Enter }

// overlapRange returns the tightest [tmin, tmax] spanning every bound,
// the window volume.March actually steps across.
func overlapRange(bounds []Bound) (tmin, tmax float32, ok bool) {
	if len(bounds) == 0 {
		return 0, 0, false
	}
	tmin, tmax = bounds[0].Enter, bounds[0].Exit
	for _, b := range bounds[1:] {
		if b.Enter < tmin {
			tmin = b.Enter
		}
		if b.Exit > tmax {
			tmax = b.Exit
		}
	}
	return tmin, tmax, true
}
