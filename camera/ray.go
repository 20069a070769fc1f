package camera

import (
	"github.com/duskray/raycore/ray"
)

// RaySpec is the input to NewRay: pixel coordinates in continuous image
// space (sub-sample offsets already folded in by the caller), the output
// image dimensions, the shutter fraction in [0,1], and whether auxiliary
// differential rays are needed.
type RaySpec struct {
	X, Y                 float32
	ImageWidth, ImageHeight float32
	ShutterT             float32 // 0..1 within [open,close]
	WantDifferentials    bool
}

const epsShutter = 1e-6

// NewRay implements: pixel -> NDC -> projected
// direction -> shutter interpolation -> normalize -> optional
// differentials.
func (c *Camera) NewRay(spec RaySpec) (ray.Ray, ray.Differential) {
	absTime := c.absoluteTime(spec.ShutterT)
	sample := c.interpolated(absTime)

	ndc := c.pixelToNDC(spec.X, spec.Y, spec.ImageWidth, spec.ImageHeight)
	localDir := c.direction(ndc, sample)

	origin := sample.Transform.Position
	worldDir := sample.Transform.Rotation.RotateVector(localDir).Normalize()

	r := ray.New(origin, worldDir, absTime, ray.Camera, sample.Near, sample.Far)

	var diff ray.Differential
	if spec.WantDifferentials {
		diff.HasDifferentials = true
		diff.RxOrigin, diff.RyOrigin = origin, origin

		ndcX := c.pixelToNDC(spec.X+1, spec.Y, spec.ImageWidth, spec.ImageHeight)
		diff.RxDir = sample.Transform.Rotation.RotateVector(c.direction(ndcX, sample)).Normalize()

		ndcY := c.pixelToNDC(spec.X, spec.Y+1, spec.ImageWidth, spec.ImageHeight)
		diff.RyDir = sample.Transform.Rotation.RotateVector(c.direction(ndcY, sample)).Normalize()
	}

	return r, diff
}

// absoluteTime maps a normalized shutter fraction onto the camera's
// absolute shutter-open/close interval, snapping to an endpoint sample
// when t is within epsShutter of 0 or 1.
func (c *Camera) absoluteTime(t float32) float32 {
	if len(c.Samples) == 0 {
		return 0
	}
	open, closeT := c.Samples[0].Time, c.Samples[len(c.Samples)-1].Time
	if t <= epsShutter {
		return open
	}
	if t >= 1-epsShutter {
		return closeT
	}
	return open + t*(closeT-open)
}
