// Package material implements the Material triple: surface,
// displacement, and volume shader outputs, plus the transitive
// closure of reachable shaders, grounded on a prior engine's
// materials/material.go constructor-library pattern (DefaultMaterial,
// RedMaterial, MetalMaterial, ...) generalized from fixed structs to
// shader-graph outputs.
package material

import (
	"github.com/duskray/raycore/channel"
	"github.com/duskray/raycore/rendererr"
	"github.com/duskray/raycore/shader"
)

// SidesMode controls which face(s) of a surface shade, carried alongside
// the material the way a similar engine's scene.Material carries a
// double-sided flag.
type SidesMode int

const (
	SidesFront SidesMode = iota
	SidesBoth
)

// Material is the triple (surface-output, displacement-output,
// volume-output) plus whatever channels its reachable shaders declare.
type Material struct {
	Name string

	Surface      *shader.Instance
	Displacement *shader.Instance
	Volume       *shader.Instance

	DisplacementBound float32
	Sides             SidesMode
}

// New returns an empty, surfaceless material; callers assign Surface,
// Displacement, Volume directly, then call Validate.
func New(name string) *Material {
	return &Material{Name: name}
}

// Validate walks the reachable shader graph from each non-nil output. A
// shader is either valid or invalid, and re-validating an
// already-valid instance is a no-op (Instance.Validate is itself
// idempotent).
func (m *Material) Validate() error {
	if m.Surface == nil && m.Displacement == nil && m.Volume == nil {
		return rendererr.NewConfigurationError("material", nil, "material %q has no outputs", m.Name)
	}
	for _, inst := range []*shader.Instance{m.Surface, m.Displacement, m.Volume} {
		if inst == nil {
			continue
		}
		if err := inst.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Channels returns the union of channels output by every shader
// reachable from this material's outputs.
func (m *Material) Channels(into *channel.Set) {
	seen := map[*shader.Instance]bool{}
	var walk func(inst *shader.Instance)
	walk = func(inst *shader.Instance) {
		if inst == nil || seen[inst] {
			return
		}
		seen[inst] = true
		for _, name := range inst.OutputNames() {
			into.Add(name)
		}
		for _, up := range inst.Upstreams() {
			walk(up)
		}
	}
	walk(m.Surface)
	walk(m.Displacement)
	walk(m.Volume)
}
