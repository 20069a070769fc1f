// Package isect defines the stable integer handles and the Intersection
// record that flow between the BVH, the object/primitive arenas, and the
// shader graph: flat arenas indexed by stable integer handles in place of
// cyclic pointers between object/surface/material/primitive records;
// ObjectID/PrimID/MaterialID are those handles.
package isect

import "github.com/duskray/raycore/math"

type ObjectID uint32
type PrimID uint32
type MaterialID uint32

const (
	NoObject   ObjectID   = 0
	NoPrim     PrimID     = 0
	NoMaterial MaterialID = 0
)

// Intersection is the geometric result of a BVH traversal: which object and
// sub-primitive was hit, at what distance, with what barycentric
// coordinates and geometric normal. It is distinct from the *interpolated*
// shading data (UV, shading normal, vertex colour, derivatives) which is
// computed only for the nearest intersection once it is chosen — see
// shadectx.ShaderContext.
type Intersection struct {
	T        float32
	Object   ObjectID
	Prim     PrimID
	U, V     float32 // barycentric coordinates within the hit primitive
	Ng       math.Vec3
	Material MaterialID
}

// Valid reports whether the intersection actually hit something.
func (i Intersection) Valid() bool { return i.Object != NoObject }

// Closer reports whether i is a closer hit than o (o may be invalid).
func (i Intersection) Closer(o Intersection) bool {
	return !o.Valid() || i.T < o.T
}
