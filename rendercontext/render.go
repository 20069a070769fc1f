// Package rendercontext implements Render context and
// Thread context: the immutable-after-setup scene description every
// worker goroutine renders from, and the per-goroutine scratch state that
// never needs synchronization. Lifecycle method names (NewRender,
// Validate, Destroy) mirror a similar engine's
// renderer.NewRenderEngine/Render/Destroy pattern, generalized from owning
// a GPU swapchain to owning the object registry (with its top-level
// object BVH) and the volume-bound list.
package rendercontext

import (
	"github.com/duskray/raycore/camera"
	"github.com/duskray/raycore/channel"
	"github.com/duskray/raycore/config"
	"github.com/duskray/raycore/hostapi"
	"github.com/duskray/raycore/lighting"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/objectctx"
	"github.com/duskray/raycore/rendererr"
	"github.com/duskray/raycore/volume"
)

// Render is the immutable-after-Validate scene: camera, render region,
// the object and volume-bound registries, the unioned channel set, the
// AOV table, the shutter-time list, the lighting scene, ray-depth
// limits, and diagnostic mode.
type Render struct {
	Camera *camera.Camera
	Region hostapi.Region

	// FormatWidth/FormatHeight are the full output image resolution a
	// camera ray's NDC mapping is computed against; Region may cover only
	// part of this format when rendering a tile.
	FormatWidth, FormatHeight int

	Objects *objectctx.Registry
	Volumes []volume.Entry
	Lights  []lighting.Source

	VolumeDensity volume.DensityParams

	Channels *channel.Set
	AOVs     []channel.AOVLayer

	ShutterTimes []float32

	Tunables   config.Tunables
	Diagnostic bool

	validated bool
}

// NewRender returns an unvalidated Render; callers populate its exported
// fields then call Validate before attaching any Thread.
func NewRender() *Render {
	return &Render{Channels: channel.NewSet(), Tunables: config.Default()}
}

// ShutterLength implements shadectx.RenderInfo, handing the camera's
// shutter duration to shaders that bind a motion-dependent attribute.
func (r *Render) ShutterLength() float32 {
	if r.Camera == nil {
		return 0
	}
	return r.Camera.ShutterLength()
}

// Validate checks the render is internally consistent and freezes it:
// after a successful Validate, every exported field is read-only for
// the lifetime of the render.
func (r *Render) Validate() error {
	if r.Camera == nil {
		return rendererr.NewConfigurationError("rendercontext", nil, "render has no camera")
	}
	if err := r.Camera.Validate(); err != nil {
		return err
	}
	if err := r.Tunables.Validate(); err != nil {
		return err
	}
	if r.Objects == nil {
		return rendererr.NewConfigurationError("rendercontext", nil, "render has no object registry")
	}
	if r.FormatWidth <= 0 || r.FormatHeight <= 0 {
		return rendererr.NewConfigurationError("rendercontext", nil, "render has no positive output format")
	}
	r.validated = true
	return nil
}

// Validated reports whether Validate has succeeded.
func (r *Render) Validated() bool { return r.validated }

// SceneBounds returns the world-space AABB of every registered object.
func (r *Render) SceneBounds() math.AABB {
	box := math.EmptyAABB()
	if r.Objects == nil {
		return box
	}
	for _, o := range r.Objects.Objects() {
		box = box.Union(o.Bounds())
	}
	return box
}

// Destroy releases the render's registries so their memory can be
// collected between renders, mirroring a common
// RenderEngine.Destroy lifecycle bookend.
func (r *Render) Destroy() {
	r.Objects = nil
	r.Volumes = nil
	r.Lights = nil
}
