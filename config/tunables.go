// Package config loads the render-wide tunables as named
// constants — volume-march step bounds, the preview step cap, ray-depth
// limits per ray type, and the default pixel filter and sub-sample grid —
// from YAML, grounded on gazed-vu's load.Shd shader-config loader
// (gopkg.in/yaml.v3, struct tags, an Unmarshal-then-validate shape).
package config

import (
	"gopkg.in/yaml.v3"

	"github.com/duskray/raycore/rendererr"
)

// RayDepthLimits caps recursion per ray type depth
// counters (shadectx.DepthCounters) read against at shader-evaluation
// time.
type RayDepthLimits struct {
	Diffuse      int `yaml:"diffuse"`
	Glossy       int `yaml:"glossy"`
	Reflection   int `yaml:"reflection"`
	Transmission int `yaml:"transmission"`
}

// FilterKind selects a pixel-sample reconstruction filter.
type FilterKind string

const (
	FilterBox   FilterKind = "box"
	FilterCubic FilterKind = "cubic"
)

// Tunables is the render-wide configuration a host would
// otherwise leave as named constants (`k_ray_step_count_min`, ...).
type Tunables struct {
	MinRaySteps        int            `yaml:"min_ray_steps"`
	MaxRaySteps        int            `yaml:"max_ray_steps"`
	MaxPreviewRaySteps int            `yaml:"max_preview_ray_steps"`
	CancelPollInterval int            `yaml:"cancel_poll_interval"`
	RayDepth           RayDepthLimits `yaml:"ray_depth"`
	SubSampleGridX     int            `yaml:"sub_sample_grid_x"`
	SubSampleGridY     int            `yaml:"sub_sample_grid_y"`
	StochasticJitter   bool           `yaml:"stochastic_jitter"`
	Filter             FilterKind     `yaml:"filter"`
	Preview            bool           `yaml:"preview"`

	VolumeBaseStep   float32 `yaml:"volume_base_step"`
	VolumeAbsorption bool    `yaml:"volume_absorption"`
}

// Default returns the documented defaults.
func Default() Tunables {
	return Tunables{
		MinRaySteps:        8,
		MaxRaySteps:        256,
		MaxPreviewRaySteps: 32,
		CancelPollInterval: 64,
		RayDepth:           RayDepthLimits{Diffuse: 1, Glossy: 2, Reflection: 4, Transmission: 4},
		SubSampleGridX:     1,
		SubSampleGridY:     1,
		StochasticJitter:   false,
		Filter:             FilterBox,
		Preview:            false,
		VolumeBaseStep:     1,
		VolumeAbsorption:   false,
	}
}

// Load parses tunables from YAML, starting from Default() so a partial
// document only overrides the fields it mentions.
func Load(data []byte) (Tunables, error) {
	t := Default()
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tunables{}, rendererr.NewConfigurationError("config", err, "parsing tunables yaml")
	}
	if err := t.Validate(); err != nil {
		return Tunables{}, err
	}
	return t, nil
}

// Validate rejects a configuration that would make volume.March or
// pixelsample.Driver misbehave.
func (t Tunables) Validate() error {
	if t.MinRaySteps <= 0 || t.MaxRaySteps < t.MinRaySteps {
		return rendererr.NewConfigurationError("config", nil,
			"min_ray_steps=%d must be positive and <= max_ray_steps=%d", t.MinRaySteps, t.MaxRaySteps)
	}
	if t.MaxPreviewRaySteps <= 0 {
		return rendererr.NewConfigurationError("config", nil, "max_preview_ray_steps must be positive")
	}
	if t.SubSampleGridX <= 0 || t.SubSampleGridY <= 0 {
		return rendererr.NewConfigurationError("config", nil, "sub-sample grid dimensions must be positive")
	}
	if t.Filter != FilterBox && t.Filter != FilterCubic {
		return rendererr.NewConfigurationError("config", nil, "unknown filter %q", t.Filter)
	}
	if t.VolumeBaseStep <= 0 {
		return rendererr.NewConfigurationError("config", nil, "volume_base_step must be positive")
	}
	return nil
}

// EffectiveMaxSteps returns max_ray_steps, capped by max_preview_ray_steps
// when t.Preview is set.
func (t Tunables) EffectiveMaxSteps() int {
	if t.Preview && t.MaxPreviewRaySteps < t.MaxRaySteps {
		return t.MaxPreviewRaySteps
	}
	return t.MaxRaySteps
}
