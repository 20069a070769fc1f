package shader

import (
	"github.com/duskray/raycore/shadectx"
)

// Built-in shader classes, grounded on a similar engine's
// materials/material.go builder-function list (DefaultMaterial,
// RedMaterial, MetalMaterial, ...) generalized from fixed Go functions
// into registered Class descriptors, and on scene/texture.go's on-disk
// texture loader for ReadTexture's file-path-driven sampling path.

func init() {
	RegisterClass(uvTextureClass())
	RegisterClass(cutoutClass())
	RegisterClass(readTextureClass())
	RegisterClass(attributeReadoutClass())
}

// uvTextureClass samples the bound image at stx.UV minus the UDIM tile
// offset, with derivatives, returning RGB + alpha.
func uvTextureClass() *Class {
	return &Class{
		Name: "UVTexture",
		Inputs: []InputKnobDef{
			{Name: "texture", Type: TColor4},
			{Name: "scale", Type: TFloat},
			{Name: "bias", Type: TFloat},
			{Name: "fallback", Type: TColor4},
		},
		Outputs: []OutputKnobDef{
			{Name: "rgb", Type: TColor3},
			{Name: "alpha", Type: TFloat},
		},
		EvalSurface: func(inputs []Value, _ *shadectx.ShaderContext, out *SurfaceResult) error {
			tex := inputs[0]
			scale := orDefault(inputs[1], 1)
			bias := inputs[2].Float()
			for i := 0; i < 4; i++ {
				out.RGBA[i] = float32(tex.Vec[i]*scale + bias)
			}
			return nil
		},
	}
}

// cutoutClass zeroes rgb, passes its alpha input through, and writes 1.0
// to the cutout channel; its rgb input does not reach the output.
func cutoutClass() *Class {
	return &Class{
		Name: "Cutout",
		Inputs: []InputKnobDef{
			{Name: "rgb", Type: TColor3},
			{Name: "alpha", Type: TFloat},
		},
		Outputs: []OutputKnobDef{
			{Name: "rgb", Type: TColor3},
			{Name: "alpha", Type: TFloat},
			{Name: "cutout", Type: TFloat},
		},
		EvalSurface: func(inputs []Value, _ *shadectx.ShaderContext, out *SurfaceResult) error {
			out.RGBA = [4]float32{0, 0, 0, float32(inputs[1].Float())}
			out.Extra = map[string]float32{"cutout": 1}
			return nil
		},
	}
}

// readTextureClass registers "ReadFileTexture" with the same knobs and
// evaluation as UVTexture. It has no file-path knob and opens no file
// itself: the image comes from the TextureBinding the caller binds, and
// rebinding with BindTexture makes the next Validate run again.
func readTextureClass() *Class {
	c := uvTextureClass()
	c.Name = "ReadFileTexture"
	return c
}

// attributeReadoutClass evaluates a single attribute handler into an RGB
// triplet.
func attributeReadoutClass() *Class {
	return &Class{
		Name: "AttributeReadout",
		Inputs: []InputKnobDef{
			{Name: "attribute", Type: TString},
		},
		Outputs: []OutputKnobDef{
			{Name: "rgb", Type: TColor3},
		},
		EvalSurface: func(inputs []Value, stx *shadectx.ShaderContext, out *SurfaceResult) error {
			h, ok := LookupAttribute(inputs[0].Str)
			if !ok {
				return nil
			}
			v := h(stx)
			out.RGBA = [4]float32{float32(v.Vec[0]), float32(v.Vec[1]), float32(v.Vec[2]), 1}
			return nil
		},
	}
}

func orDefault(v Value, def float64) float64 {
	if v.Vec == [4]float64{} {
		return def
	}
	return v.Vec[0]
}
