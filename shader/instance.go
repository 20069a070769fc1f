package shader

import (
	"github.com/duskray/raycore/rendererr"
	"github.com/duskray/raycore/shadectx"
	"github.com/duskray/raycore/texture"
)

// Instance is one shader node: a class reference plus mutable
// per-instance input bindings and resolved output values, copied into
// mutable per-instance vectors with name->index maps built alongside.
type Instance struct {
	Class *Class

	inputs      []Binding
	outputs     []Value
	inputIndex  map[string]int
	outputIndex map[string]int

	valid       bool
	textureChannels map[string]bool
	outputChannels  map[string]bool
}

// InputIndex returns the index of the named input knob.
func (inst *Instance) InputIndex(name string) (int, bool) {
	i, ok := inst.inputIndex[name]
	return i, ok
}

// OutputIndex returns the index of the named output knob.
func (inst *Instance) OutputIndex(name string) (int, bool) {
	i, ok := inst.outputIndex[name]
	return i, ok
}

// OutputNames returns the names of this instance's static output knobs.
func (inst *Instance) OutputNames() []string {
	names := make([]string, len(inst.Class.Outputs))
	for i, def := range inst.Class.Outputs {
		names[i] = def.Name
	}
	return names
}

// Upstreams returns the distinct instances this instance's inputs are
// directly bound to via BindUpstream, used to walk a material's
// reachable shader set.
func (inst *Instance) Upstreams() []*Instance {
	var out []*Instance
	for _, b := range inst.inputs {
		if b.Kind == BindUpstream && b.Upstream != nil {
			out = append(out, b.Upstream)
		}
	}
	return out
}

// SetInputValue binds inputIndex to a parsed constant literal.
func (inst *Instance) SetInputValue(inputIndex int, literal string) error {
	def := inst.Class.Inputs[inputIndex]
	v, err := ParseLiteral(def.Type, literal)
	if err != nil {
		return err
	}
	inst.inputs[inputIndex] = Binding{Kind: BindConstant, Constant: v}
	inst.valid = false
	return nil
}

// BindAttribute binds inputIndex to a named attribute handler.
func (inst *Instance) BindAttribute(inputIndex int, attrName string) error {
	if _, ok := LookupAttribute(attrName); !ok {
		return rendererr.NewConfigurationError("shader", nil, "unknown attribute %q", attrName)
	}
	inst.inputs[inputIndex] = Binding{Kind: BindAttribute, AttributeName: attrName}
	inst.valid = false
	return nil
}

// BindTexture binds inputIndex to a texture source.
func (inst *Instance) BindTexture(inputIndex int, tb *TextureBinding) {
	inst.inputs[inputIndex] = Binding{Kind: BindTexture, Texture: tb}
	inst.valid = false
}

// ConnectInput binds inputIndex to an upstream instance's named output:
// succeeds iff the upstream output's type is assignable to the input's
// type and no cycle is created.
func (inst *Instance) ConnectInput(inputIndex int, upstream *Instance, outputName string) error {
	outIdx, ok := upstream.OutputIndex(outputName)
	if !ok {
		return rendererr.NewConfigurationError("shader", nil, "upstream has no output %q", outputName)
	}
	inDef := inst.Class.Inputs[inputIndex]
	outDef := upstream.Class.Outputs[outIdx]
	if !assignable(outDef.Type, inDef.Type) {
		return rendererr.NewConfigurationError("shader", nil,
			"cannot connect %s output to %s input", outDef.Type, inDef.Type)
	}
	if reaches(upstream, inst) {
		return rendererr.NewTopologyError("shader", nil, "connecting would create a cycle")
	}
	inst.inputs[inputIndex] = Binding{Kind: BindUpstream, Upstream: upstream, UpstreamOutput: outIdx}
	inst.valid = false
	return nil
}

// reaches reports whether target is reachable from start by following
// upstream bindings; ConnectInput uses this as its cycle check.
func reaches(start, target *Instance) bool {
	if start == target {
		return true
	}
	seen := map[*Instance]bool{}
	var walk func(n *Instance) bool
	walk = func(n *Instance) bool {
		if n == target {
			return true
		}
		if seen[n] {
			return false
		}
		seen[n] = true
		for _, b := range n.inputs {
			if b.Kind == BindUpstream && b.Upstream != nil {
				if walk(b.Upstream) {
					return true
				}
			}
		}
		return false
	}
	return walk(start)
}

// Validate walks input bindings, validates each upstream shader
// transitively and idempotently, then publishes
// TextureChannels/OutputChannels. Calling Validate on an already-valid
// instance is a no-op.
func (inst *Instance) Validate() error {
	if inst.valid {
		return nil
	}
	for _, b := range inst.inputs {
		if b.Kind == BindUpstream && b.Upstream != nil {
			if err := b.Upstream.Validate(); err != nil {
				return err
			}
		}
	}

	inst.textureChannels = map[string]bool{}
	inst.outputChannels = map[string]bool{}
	for _, b := range inst.inputs {
		if b.Kind == BindTexture {
			inst.textureChannels["r"] = true
			inst.textureChannels["g"] = true
			inst.textureChannels["b"] = true
			inst.textureChannels["a"] = true
		}
	}
	for _, def := range inst.Class.Outputs {
		inst.outputChannels[def.Name] = true
	}

	inst.valid = true
	return nil
}

// resolveInput evaluates input i's binding against stx into a Value.
func (inst *Instance) resolveInput(i int, stx *shadectx.ShaderContext) (Value, error) {
	b := inst.inputs[i]
	switch b.Kind {
	case BindConstant:
		return b.Constant, nil
	case BindAttribute:
		h, ok := LookupAttribute(b.AttributeName)
		if !ok {
			return Value{}, rendererr.NewConfigurationError("shader", nil, "unknown attribute %q", b.AttributeName)
		}
		return h(stx), nil
	case BindTexture:
		return resolveTextureBinding(b.Texture, stx)
	case BindUpstream:
		res := &SurfaceResult{}
		if err := b.Upstream.Class.EvalSurface(mustResolveAll(b.Upstream, stx), stx, res); err != nil {
			return Value{}, err
		}
		return extractOutput(b.Upstream.Class, b.UpstreamOutput, res), nil
	case BindLegacyPixel:
		px := b.LegacyPixel(stx)
		return colorValue(px), nil
	default:
		return Value{Type: inst.Class.Inputs[i].Type}, nil
	}
}

// mustResolveAll resolves every input of inst against stx, in order,
// returning the zero Value for any input that fails to resolve — shader
// evaluation must not abort the render, so a bad upstream binding degrades
// to a default rather than propagating.
func mustResolveAll(inst *Instance, stx *shadectx.ShaderContext) []Value {
	out := make([]Value, len(inst.inputs))
	for i := range inst.inputs {
		v, err := inst.resolveInput(i, stx)
		if err == nil {
			out[i] = v
		} else {
			out[i] = Value{Type: inst.Class.Inputs[i].Type}
		}
	}
	return out
}

func colorValue(c [4]float32) Value {
	return Value{Type: TColor4, Vec: [4]float64{float64(c[0]), float64(c[1]), float64(c[2]), float64(c[3])}}
}

// extractOutput maps a shader's named output knob onto the fields of its
// SurfaceResult: "rgb" reads the colour channels, "alpha" the fourth,
// and anything else (e.g. Cutout's "cutout") reads the result's Extra
// map.
func extractOutput(class *Class, outputIndex int, res *SurfaceResult) Value {
	def := class.Outputs[outputIndex]
	switch def.Name {
	case "rgb":
		return Value{Type: def.Type, Vec: [4]float64{float64(res.RGBA[0]), float64(res.RGBA[1]), float64(res.RGBA[2]), 1}}
	case "alpha":
		return floatValue(def.Type, float64(res.RGBA[3]))
	default:
		return floatValue(def.Type, float64(res.Extra[def.Name]))
	}
}

// EvaluateSurface resolves every input, then dispatches to the class's
// SurfaceFunc.
func (inst *Instance) EvaluateSurface(stx *shadectx.ShaderContext) (*SurfaceResult, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if inst.Class.EvalSurface == nil {
		return nil, rendererr.NewConfigurationError("shader", nil, "class %q has no surface shader", inst.Class.Name)
	}
	inputs := mustResolveAll(inst, stx)
	res := &SurfaceResult{}
	if err := inst.Class.EvalSurface(inputs, stx, res); err != nil {
		return nil, err
	}
	return res, nil
}

// EvaluateDisplacement resolves every input, then dispatches to the
// class's DisplacementFunc.
func (inst *Instance) EvaluateDisplacement(stx *shadectx.ShaderContext) (*DisplacementResult, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	if inst.Class.EvalDisplacement == nil {
		return nil, rendererr.NewConfigurationError("shader", nil, "class %q has no displacement shader", inst.Class.Name)
	}
	inputs := mustResolveAll(inst, stx)
	res := &DisplacementResult{}
	if err := inst.Class.EvalDisplacement(inputs, stx, res); err != nil {
		return nil, err
	}
	return res, nil
}

func resolveTextureBinding(tb *TextureBinding, stx *shadectx.ShaderContext) (Value, error) {
	u := stx.UV.Val.X - float32(tb.TileU)
	v := stx.UV.Val.Y - float32(tb.TileV)
	out, err := texture.Sample(tb.Cache, u, v, stx.UV.DX.X, stx.UV.DY.X, stx.UV.DX.Y, stx.UV.DY.Y) // dudx, dudy, dvdx, dvdy
	if err != nil {
		// ResourceError: sampler returns its fallback colour
		return colorValue([4]float32{0, 0, 0, 0}), nil
	}
	return colorValue(out), nil
}
