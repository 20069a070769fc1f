// Package hostapi collects the small set of interfaces a host compositing
// application implements and raycore consumes:
// scene input, image sources, frame notifications, and cancellation. None
// of these are implemented by raycore itself — they are the library's
// inbound boundary, the mirror image of a similar engine's outbound
// renderer.RenderEngine API.
package hostapi

import (
	"github.com/duskray/raycore/core"
	"github.com/duskray/raycore/isect"
	"github.com/duskray/raycore/lighting"
	"github.com/duskray/raycore/material"
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/texture"
)

// ObjectSample is one (scene, object-index) motion sample as the host
// exposes it: a world transform plus topology reference for that frame
// time.
type ObjectSample struct {
	Time      float32
	Transform core.Transform
	Mesh      core.MeshData
}

// SceneSource is the scene-input boundary: per object, motion samples, a
// material handle, and a screen-space AABB hint.
type SceneSource interface {
	ObjectCount() int
	ObjectSamples(index int) []ObjectSample
	ObjectMaterial(index int) *material.Material
	ObjectScreenBoundsHint(index int) (min, max math.Vec2, ok bool)
}

// ImageSource re-exports texture.ImageSource at the host boundary: an
// abstract image source with channels(), format(), sample(...).
type ImageSource = texture.ImageSource

// LightSource re-exports lighting.Source at the host boundary: an
// abstract light source with get_L_vector/get_color/get_shadowing and a
// light-type tag.
type LightSource = lighting.Source

// VolumetricLightSource re-exports lighting.VolumetricSource.
type VolumetricLightSource = lighting.VolumetricSource

// FrameNotifier is the host frame-notification boundary: validate, then
// region/channel/count requests, then per-scanline engine callbacks.
type FrameNotifier interface {
	// Validate is called once before rendering; forReal distinguishes a
	// final render from a UI-only knob-change preview.
	Validate(forReal bool) error

	// Request reports the pixel region, channel set, and sample count the
	// render is about to produce, before the first Engine call.
	Request(region Region, channels []string, sampleCount int)

	// Engine delivers one fully-resolved scanline row: y is the row
	// index, x is the starting column, r is the column count, channels
	// names each interleaved channel in row.
	Engine(y, x, r int, channels []string, row []float32)
}

// Region is a rectangular pixel range, inclusive of Min, exclusive of Max.
type Region struct {
	MinX, MinY, MaxX, MaxY int
}

// Canceler is the cooperative cancellation boundary: the volume marcher and
// long BVH traversals poll Aborted every few iterations so a host can cut a
// render short.
type Canceler interface {
	Aborted() bool
}

// NeverCancel is a Canceler that never aborts, used by tests and
// single-shot host integrations that have no cancellation UI.
type NeverCancel struct{}

func (NeverCancel) Aborted() bool { return false }

// ObjectID re-exports isect.ObjectID so host code implementing SceneSource
// never needs to import the isect package directly.
type ObjectID = isect.ObjectID
