package pixelsample

import (
	"github.com/duskray/raycore/camera"
	"github.com/duskray/raycore/channel"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/lighting"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/rendercontext"
	"github.com/duskray/raycore/ray"
	"github.com/duskray/raycore/shadectx"
	"github.com/duskray/raycore/volume"
)

// shadeSample traces one camera sub-sample through the object BVH and any
// volumes it crosses, evaluates the hit surface's shader graph plus direct
// lighting, composites the volume result over the surface result, and
// returns a channel-width buffer (unweighted — the caller applies the
// sub-sample's filter weight).
func shadeSample(render *rendercontext.Render, th *rendercontext.Thread, ss SubSample, shutterT float32) []float32 {
	spec := camera.RaySpec{
		X:                 ss.X,
		Y:                 ss.Y,
		ImageWidth:        float32(render.FormatWidth),
		ImageHeight:       float32(render.FormatHeight),
		ShutterT:          shutterT,
		WantDifferentials: true,
	}
	r, diff := render.Camera.NewRay(spec)

	stx := th.NewRootContext(r, diff, r.Time)
	defer th.Pop()

	hit, hasHit := render.Objects.FirstIntersection(r)

	volumeRay := r
	if hasHit {
		volumeRay.MaxDist = hit.T
	}
	volResult := marchVolumes(render, th, volumeRay)
	if len(volResult.Deep) > 0 {
		th.Deep = append(th.Deep, volResult.Deep...)
	}

	var surfRGBA [4]float32
	var surfAlpha float32
	if hasHit {
		surfRGBA, surfAlpha = shadeSurface(render, stx, hit)
	}

	out := render.Channels.NewPixel()
	composited := compositeOver(volResult.Color, volResult.Alpha, math.Vec3{X: surfRGBA[0], Y: surfRGBA[1], Z: surfRGBA[2]}, surfAlpha)
	out[channel.R] = composited.X
	out[channel.G] = composited.Y
	out[channel.B] = composited.Z
	out[channel.A] = volResult.Alpha + surfAlpha*(1-volResult.Alpha)
	if hasHit {
		out[channel.Z] = hit.T
	} else if len(volResult.Deep) == 0 {
		out[channel.Z] = volResult.Z
	}

	for i := range render.AOVs {
		render.AOVs[i].Fill(stx, out, out[channel.A])
	}

	return out
}

// marchVolumes resolves r's overlap with every registered volume and marches
// across the union, returning a zero Result when the ray touches none.
func marchVolumes(render *rendercontext.Render, th *rendercontext.Thread, r ray.Ray) volume.Result {
	bounds := volume.BoundsAlong(r, render.Volumes)
	if len(bounds) == 0 {
		return volume.Result{}
	}
	opts := volume.Options{
		Density:        render.VolumeDensity,
		BaseStep:       render.Tunables.VolumeBaseStep,
		RecordDeep:     render.Channels.Lookup("deep.front") != channel.NoIndex,
		AbsorptionMode: render.Tunables.VolumeAbsorption,
		Diagnostic:     render.Diagnostic,
	}
	res, err := volume.March(r, bounds, opts, render.Tunables, th)
	if err != nil {
		return volume.Result{}
	}
	return res
}

// shadeSurface fills stx's shading data from hit, evaluates the hit
// object's surface shader, and layers a Lambertian direct-lighting pass
// over render.Lights on top of the shader's base colour.
func shadeSurface(render *rendercontext.Render, stx *shadectx.ShaderContext, hit isect.Intersection) (rgba [4]float32, alpha float32) {
	obj, ok := render.Objects.ObjectByID(hit.Object)
	if !ok {
		return [4]float32{}, 0
	}
	obj.FillShading(hit, stx)

	if obj.Material != nil && obj.Material.Surface != nil {
		res, err := obj.Material.Surface.EvaluateSurface(stx)
		if err == nil {
			rgba = res.RGBA
		}
	}

	lit := applyDirectLighting(render.Lights, stx, math.Vec3{X: rgba[0], Y: rgba[1], Z: rgba[2]})
	rgba[0], rgba[1], rgba[2] = lit.X, lit.Y, lit.Z

	alpha = rgba[3]
	if alpha == 0 {
		// An untextured/unlit surface still occludes the background.
		alpha = 1
		rgba[3] = 1
	}
	return rgba, alpha
}

// applyDirectLighting sums max(0, N·L) * light.Color * light.Shadowing over
// every light, scaling the shader's base colour by the accumulated
// intensity — the surface-shading use of lighting.Evaluate the volume
// marcher's accumulateIllumination also exercises.
func applyDirectLighting(lights []lighting.Source, stx *shadectx.ShaderContext, base math.Vec3) math.Vec3 {
	if len(lights) == 0 {
		return base
	}
	var intensity math.Vec3
	for _, light := range lights {
		sample := lighting.Evaluate(light, stx.P.Val, stx.Nsf)
		ndotl := stx.Nsf.Dot(sample.Dir)
		if ndotl <= 0 {
			continue
		}
		intensity = intensity.Add(sample.Color.Mul(sample.Shadow * ndotl))
	}
	return math.Vec3{X: base.X * intensity.X, Y: base.Y * intensity.Y, Z: base.Z * intensity.Z}
}

// compositeOver combines a volume result (front) with a surface result
// (behind it) under standard front-to-back "A over B" alpha compositing.
func compositeOver(volColor math.Vec3, volAlpha float32, surfColor math.Vec3, surfAlpha float32) math.Vec3 {
	return volColor.Add(surfColor.Mul(surfAlpha * (1 - volAlpha)))
}
