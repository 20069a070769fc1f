package volume

import "github.com/duskray/raycore/math"

// DeepSample is one front-to-back march segment recorded instead of being
// composited into the final color, for deep-output compositing.
type DeepSample struct {
	Front, Back, Z float32
	Color          math.Vec3
	Alpha          float32
}

// Result is volume.March's output: either a single composited pixel
// (Deep is nil) or an ordered list of DeepSamples (Color/Alpha are then
// left zero, since the segments are recorded instead of composited).
type Result struct {
	Color math.Vec3
	Alpha float32
	Z     float32
	Deep  []DeepSample
}
