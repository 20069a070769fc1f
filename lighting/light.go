// Package lighting defines the abstract light-evaluation boundary: the
// render core queries a host-provided LightSource for direction, colour,
// and shadowing at a shading point, never owning light transport itself.
package lighting

import "github.com/duskray/raycore/math"

// TypeTag distinguishes point, directional, spot, area, and volume
// lights.
type TypeTag int

const (
	TypePoint TypeTag = iota
	TypeDirectional
	TypeSpot
	TypeArea
	TypeVolume
)

// Source is the abstract light a shader or the volume integrator queries.
// Host applications implement this; raycore never constructs a concrete
// light itself.
type Source interface {
	// LVector returns the unit direction from p toward the light and the
	// distance to it, given the shading point and its normal.
	LVector(p, n math.Vec3) (dir math.Vec3, dist float32)

	// Color returns the light's radiance arriving at p along dir at
	// distance dist (get_color(p, n, dir, dist) -> rgb).
	Color(p, n, dir math.Vec3, dist float32) math.Vec3

	// Shadowing returns an attenuation factor in [0,1] for point p
	// (get_shadowing(p) -> attenuation); 1 means fully lit.
	Shadowing(p math.Vec3) float32

	// Type reports this light's evaluation category.
	Type() TypeTag
}

// VolumetricSource is implemented in addition to Source by lights that
// also participate in volume.March: a geometric extent (near/far along a
// cone axis), a cone half-angle, and whether the light should tint
// atmospheric density it passes through.
type VolumetricSource interface {
	Source

	Near() float32
	Far() float32
	ConeAngle() float32
	IlluminateAtmosphere() bool
}

// Sample is a light evaluated once at a shading point, the unit the
// shader graph and the volume marcher both consume.
type Sample struct {
	Dir       math.Vec3
	Dist      float32
	Color     math.Vec3
	Shadow    float32
}

// Evaluate runs the full Source contract at one shading point in one
// call — direction, distance, colour, and optional shadow factor — the
// shape both the volume marcher and the surface-shader path need.
func Evaluate(src Source, p, n math.Vec3) Sample {
	dir, dist := src.LVector(p, n)
	return Sample{
		Dir:    dir,
		Dist:   dist,
		Color:  src.Color(p, n, dir, dist),
		Shadow: src.Shadowing(p),
	}
}
