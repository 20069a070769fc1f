// Package camera constructs primary and differential rays from a
// parameterized, motion-blurred camera, adapted from the prior engine's
// scene.Camera and redirected from view/projection matrices toward
// per-shutter-sample ray direction generation. No matrix is cached: every
// ray is computed from the interpolated shutter sample.
package camera

import (
	"sort"

	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/rendererr"
)

// Projection selects the ray-direction mapping used by NewRay.
type Projection int

const (
	Perspective Projection = iota
	Spherical
	Cylindrical
)

// Sample is one shutter-time snapshot of the camera's parameters.
type Sample struct {
	Time float32

	FocalLength float32
	FilmWidth   float32
	Near, Far   float32
	FocusDist   float32
	FStop       float32

	WindowTranslate math.Vec2
	WindowScale     math.Vec2
	WindowRoll      float32
	FilmbackShift   math.Vec2

	Transform core.Transform
}

// Camera holds an ordered-by-time list of shutter Samples and the
// projection used to turn NDC coordinates into a ray direction.
type Camera struct {
	Projection  Projection
	Samples     []Sample // must be sorted by Time; ShutterOpen/Close are Samples[0]/Samples[len-1]
	AspectRatio float32  // image aspect (width/height in pixels, adjusted for pixel aspect)
	PixelAspect float32
}

// ShutterLength returns close-open, the closed-form shutter duration.
func (c *Camera) ShutterLength() float32 {
	if len(c.Samples) < 2 {
		return 0
	}
	return c.Samples[len(c.Samples)-1].Time - c.Samples[0].Time
}

// Validate checks the camera's static configuration. NearExceedsFar is
// recovered locally (max = min + eps) rather than failing the whole
// render, since a reasonable fallback exists; an unknown Projection is a
// ConfigurationError since there is no sane fallback direction to
// substitute.
func (c *Camera) Validate() error {
	if c.Projection != Perspective && c.Projection != Spherical && c.Projection != Cylindrical {
		return rendererr.NewConfigurationError("camera", nil, "unknown projection %d", c.Projection)
	}
	if len(c.Samples) == 0 {
		return rendererr.NewConfigurationError("camera", nil, "camera has no shutter samples")
	}
	sort.Slice(c.Samples, func(i, j int) bool { return c.Samples[i].Time < c.Samples[j].Time })
	for i := range c.Samples {
		if c.Samples[i].Near > c.Samples[i].Far {
			c.Samples[i].Far = c.Samples[i].Near + 1e-4
		}
	}
	return nil
}

// bracket finds the two samples bracketing absolute time t, returning their
// index and the fraction between them, by binary search over the ordered
// sample list, generalizing two-sample interpolation to an arbitrary
// ordered list.
func (c *Camera) bracket(t float32) (i0, i1 int, frac float32) {
	n := len(c.Samples)
	if n == 1 {
		return 0, 0, 0
	}
	if t <= c.Samples[0].Time {
		return 0, 0, 0
	}
	if t >= c.Samples[n-1].Time {
		return n - 1, n - 1, 0
	}
	lo, hi := 0, n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if c.Samples[mid].Time <= t {
			lo = mid
		} else {
			hi = mid
		}
	}
	span := c.Samples[hi].Time - c.Samples[lo].Time
	if span <= 0 {
		return lo, lo, 0
	}
	return lo, hi, (t - c.Samples[lo].Time) / span
}

// interpolated returns the Sample at absolute shutter time t, interpolating
// between bracketing samples when t falls strictly between two of them.
func (c *Camera) interpolated(t float32) Sample {
	i0, i1, frac := c.bracket(t)
	if i0 == i1 || frac <= 0 {
		return c.Samples[i0]
	}
	if frac >= 1 {
		return c.Samples[i1]
	}
	a, b := c.Samples[i0], c.Samples[i1]
	out := a
	out.Transform = a.Transform.Lerp(b.Transform, frac)
	out.FocalLength = lerp(a.FocalLength, b.FocalLength, frac)
	out.FilmWidth = lerp(a.FilmWidth, b.FilmWidth, frac)
	out.FocusDist = lerp(a.FocusDist, b.FocusDist, frac)
	out.WindowTranslate = a.WindowTranslate.Lerp(b.WindowTranslate, frac)
	out.WindowScale = a.WindowScale.Lerp(b.WindowScale, frac)
	out.WindowRoll = lerp(a.WindowRoll, b.WindowRoll, frac)
	out.FilmbackShift = a.FilmbackShift.Lerp(b.FilmbackShift, frac)
	return out
}

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

// pixelToNDC converts a pixel coordinate (with sub-pixel offset already
// applied by the caller) into screen-window [-1,+1]^2 coordinates,
// accounting for image and pixel aspect: the aspect is width/height times
// PixelAspect, with a zero PixelAspect treated as square pixels.
func (c *Camera) pixelToNDC(x, y, width, height float32) math.Vec2 {
	ndcX := 2*x/width - 1
	ndcY := 2*y/height - 1
	aspect := width / height
	if c.PixelAspect > 0 {
		aspect *= c.PixelAspect
	}
	if aspect >= 1 {
		ndcX *= aspect
	} else {
		ndcY /= aspect
	}
	return math.Vec2{X: ndcX, Y: ndcY}
}

// direction computes the camera-space ray direction for an NDC coordinate
// under the sample's window transform and the camera's projection.
func (c *Camera) direction(ndc math.Vec2, s Sample) math.Vec3 {
	// Window translate/scale/roll is applied before projection for every
	// projection type, matching the prior engine's "params apply to the
	// window, then the window maps to a direction" ordering.
	p := ndc.Sub(s.WindowTranslate)
	if s.WindowRoll != 0 {
		cr, sr := cosf(s.WindowRoll), sinf(s.WindowRoll)
		p = math.Vec2{X: p.X*cr - p.Y*sr, Y: p.X*sr + p.Y*cr}
	}
	if s.WindowScale.X != 0 {
		p.X /= s.WindowScale.X
	}
	if s.WindowScale.Y != 0 {
		p.Y /= s.WindowScale.Y
	}
	p = p.Add(s.FilmbackShift)

	switch c.Projection {
	case Spherical:
		theta := (1 - (p.Y+1)/2) * piF
		phi := (p.X + 1) / 2 * piF
		return math.Vec3{
			X: sinf(theta) * cosf(phi),
			Y: cosf(theta),
			Z: sinf(theta) * sinf(phi),
		}.Normalize()
	case Cylindrical:
		phi := p.X * piF
		return math.Vec3{X: sinf(phi), Y: p.Y, Z: -cosf(phi)}.Normalize()
	default: // Perspective
		scale := s.FilmWidth / (2 * s.FocalLength)
		return math.Vec3{X: p.X * scale, Y: p.Y * scale, Z: -1}.Normalize()
	}
}
