// Package shader implements the shader graph runtime: typed input/output knobs, the five input-binding kinds, a
// name-keyed class registry (mirroring a common constructor-library
// idiom in materials/material.go, generalized from a fixed struct to a
// registered builder table), and the depth-first idempotent validation and
// evaluation entry points.
package shader

import (
	"github.com/duskray/raycore/math"
)

// KnobType is one of the typed input/output knob kinds in the
// material/shader graph data model.
type KnobType int

const (
	TString KnobType = iota
	TInt
	TFloat
	TDouble
	TVec2
	TVec3
	TVec4
	TMat4
	TColor3
	TColor4
	TPixelRef
	TPointer
)

func (t KnobType) String() string {
	switch t {
	case TString:
		return "string"
	case TInt:
		return "int"
	case TFloat:
		return "float"
	case TDouble:
		return "double"
	case TVec2:
		return "vec2"
	case TVec3:
		return "vec3"
	case TVec4:
		return "vec4"
	case TMat4:
		return "mat4"
	case TColor3:
		return "color3"
	case TColor4:
		return "color4"
	case TPixelRef:
		return "pixelref"
	case TPointer:
		return "pointer"
	default:
		return "unknown"
	}
}

// assignable reports whether a value of type src may be bound to a knob
// of type dst: the output knob's type must be assignable to the input
// knob's type. Colors and vectors of matching arity are interchangeable;
// everything else requires an exact match.
func assignable(src, dst KnobType) bool {
	if src == dst {
		return true
	}
	pairs := map[[2]KnobType]bool{
		{TVec3, TColor3}: true, {TColor3, TVec3}: true,
		{TVec4, TColor4}: true, {TColor4, TVec4}: true,
		{TFloat, TDouble}: true, {TDouble, TFloat}: true,
		{TInt, TFloat}: true,
	}
	return pairs[[2]KnobType{src, dst}]
}

// Value is a tagged union holding one knob's worth of data at runtime.
// Vec holds scalars/vec2/vec3/vec4/color3/color4 components in their first
// N slots; Mat holds a TMat4 value; Str holds TString; Ptr holds
// TPointer/TPixelRef references.
type Value struct {
	Type KnobType
	Vec  [4]float64
	Mat  math.Mat4
	Str  string
	Ptr  any
}

// Float returns Vec[0], for scalar-typed values.
func (v Value) Float() float64 { return v.Vec[0] }

// Vec3Value interprets Vec[0:3] as a math.Vec3.
func (v Value) Vec3Value() math.Vec3 {
	return math.Vec3{X: float32(v.Vec[0]), Y: float32(v.Vec[1]), Z: float32(v.Vec[2])}
}

// Vec4Value interprets Vec[0:4] as a math.Vec4.
func (v Value) Vec4Value() math.Vec4 {
	return math.Vec4{X: float32(v.Vec[0]), Y: float32(v.Vec[1]), Z: float32(v.Vec[2]), W: float32(v.Vec[3])}
}

func floatValue(t KnobType, f float64) Value    { return Value{Type: t, Vec: [4]float64{f, f, f, f}} }
func vec3Value(t KnobType, v math.Vec3) Value {
	return Value{Type: t, Vec: [4]float64{float64(v.X), float64(v.Y), float64(v.Z), 1}}
}
func vec4Value(t KnobType, v math.Vec4) Value {
	return Value{Type: t, Vec: [4]float64{float64(v.X), float64(v.Y), float64(v.Z), float64(v.W)}}
}
func vec2Value(t KnobType, x, y float64) Value {
	return Value{Type: t, Vec: [4]float64{x, y, 0, 0}}
}
