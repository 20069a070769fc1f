package shader

import (
	"sync"

	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/rendererr"
	"github.com/duskray/raycore/shadectx"
)

// InputKnobDef and OutputKnobDef are a shader class's static knob
// tables: every shader exposes one of each.
type InputKnobDef struct {
	Name string
	Type KnobType
}

type OutputKnobDef struct {
	Name string
	Type KnobType
}

// SurfaceFunc fills out (RGBA, plus Extra for any other channels) from
// resolved input values.
type SurfaceFunc func(inputs []Value, stx *shadectx.ShaderContext, out *SurfaceResult) error

// DisplacementFunc writes a perturbed position and normal.
type DisplacementFunc func(inputs []Value, stx *shadectx.ShaderContext, out *DisplacementResult) error

// SurfaceResult is a surface shader's output: RGBA plus any AOV-owned
// extra channels it writes directly (e.g. Cutout's cutout channel).
type SurfaceResult struct {
	RGBA  [4]float32
	Extra map[string]float32
}

// DisplacementResult is a displacement shader's output: a perturbed
// position and normal.
type DisplacementResult struct {
	Position math.Vec3
	Normal   math.Vec3
}

// Class is a shader's static descriptor: name, knob tables, and the
// eval functions. Classes are registered into a package-level table at
// init, mirroring a similar engine's materials/material.go
// constructor-library shape, generalized from a fixed set of functions
// into a name-keyed registry of class descriptors.
type Class struct {
	Name    string
	Inputs  []InputKnobDef
	Outputs []OutputKnobDef

	EvalSurface      SurfaceFunc
	EvalDisplacement DisplacementFunc
}

var (
	registryMu sync.RWMutex
	registry   = map[string]*Class{}
)

// RegisterClass adds c to the global registry. Called from each built-in
// shader's init(), and available to hosts registering their own classes.
func RegisterClass(c *Class) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[c.Name] = c
}

// LookupClass returns the registered class named name.
func LookupClass(name string) (*Class, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	c, ok := registry[name]
	return c, ok
}

// NewInstance builds a new, unbound Instance of the named class.
func NewInstance(className string) (*Instance, error) {
	class, ok := LookupClass(className)
	if !ok {
		return nil, rendererr.NewConfigurationError("shader", nil, "unknown shader class %q", className)
	}
	inst := &Instance{
		Class:      class,
		inputs:     make([]Binding, len(class.Inputs)),
		outputs:    make([]Value, len(class.Outputs)),
		inputIndex: make(map[string]int, len(class.Inputs)),
		outputIndex: make(map[string]int, len(class.Outputs)),
	}
	for i, def := range class.Inputs {
		inst.inputIndex[def.Name] = i
	}
	for i, def := range class.Outputs {
		inst.outputIndex[def.Name] = i
		inst.outputs[i] = Value{Type: def.Type}
	}
	return inst, nil
}
