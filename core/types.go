// Package core holds the small value types shared by every other raycore
// package: colour, vertex data, and world transforms.
package core

import (
	"github.com/duskray/raycore/math"
)

// Color is a linear RGBA colour/radiance value. The renderer never clamps
// or gamma-corrects internally — that is the host's colour-management job,
// so a Color can legitimately carry components outside [0,1] until it
// leaves the library.
type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

func (c Color) Add(o Color) Color {
	return Color{R: c.R + o.R, G: c.G + o.G, B: c.B + o.B, A: c.A + o.A}
}

func (c Color) Mul(s float32) Color {
	return Color{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

func (c Color) MulColor(o Color) Color {
	return Color{R: c.R * o.R, G: c.G * o.G, B: c.B * o.B, A: c.A * o.A}
}

// Lerp blends toward o by t in [0,1].
func (c Color) Lerp(o Color, t float32) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

// Vertex is a single point of a diced surface: position, shading normal,
// UV, vertex colour, and the tangent frame used by normal-mapping shaders.
type Vertex struct {
	Position  math.Vec3
	Normal    math.Vec3
	UV        math.Vec2
	Color     Color
	Tangent   math.Vec3
	Bitangent math.Vec3
}

// MeshData is the flat vertex/index form a dicing handler produces.
type MeshData struct {
	Vertices []Vertex
	Indices  []uint32
}

// Transform is a TRS world transform, used by camera shutter samples and
// object motion samples alike.
type Transform struct {
	Position math.Vec3
	Rotation math.Quaternion
	Scale    math.Vec3
}

func NewTransform() Transform {
	return Transform{
		Position: math.Vec3Zero,
		Rotation: math.QuaternionIdentity(),
		Scale:    math.Vec3One,
	}
}

func (t Transform) GetMatrix() math.Mat4 {
	translation := math.Mat4Translation(t.Position)
	rotation := t.Rotation.ToMat4()
	scale := math.Mat4Scale(t.Scale)
	return translation.Mul(rotation).Mul(scale)
}

func (t Transform) GetForward() math.Vec3 { return t.Rotation.RotateVector(math.Vec3Front) }
func (t Transform) GetRight() math.Vec3   { return t.Rotation.RotateVector(math.Vec3Right) }
func (t Transform) GetUp() math.Vec3      { return t.Rotation.RotateVector(math.Vec3Up) }

// Lerp linearly interpolates position and scale and slerps rotation; used to
// build an interpolated object/camera sample between two shutter samples.
func (t Transform) Lerp(o Transform, f float32) Transform {
	return Transform{
		Position: t.Position.Lerp(o.Position, f),
		Rotation: t.Rotation.Slerp(o.Rotation, f),
		Scale:    t.Scale.Lerp(o.Scale, f),
	}
}
