package ray

import "github.com/duskray/raycore/math"

// IntersectAABB runs the slab test against b, returning the entry distance
// and whether the ray overlaps the box within [r.MinDist, r.MaxDist].
// Grounded on the broad-phase test from the prior engine's raycast
// helper, generalized here to take the ray's precomputed InvDir/Sign so the
// BVH can run this once per node without recomputing the reciprocal each
// time.
func IntersectAABB(r Ray, b math.AABB) (tEntry float32, hit bool) {
	tmin, _, hit := IntersectAABBRange(r, b)
	return tmin, hit
}

// IntersectAABBRange runs the same slab test as IntersectAABB but also
// returns the exit distance, used by volume bound lookup to turn a
// light-volume's AABB into a [tEntry, tExit] marching range along the ray.
func IntersectAABBRange(r Ray, b math.AABB) (tEntry, tExit float32, hit bool) {
	bounds := [2]math.Vec3{b.Min, b.Max}

	tmin := (component(bounds[r.Sign[0]], 0) - component0(r.Origin)) * component0(r.InvDir)
	tmax := (component(bounds[1-r.Sign[0]], 0) - component0(r.Origin)) * component0(r.InvDir)

	tymin := (component(bounds[r.Sign[1]], 1) - component1(r.Origin)) * component1(r.InvDir)
	tymax := (component(bounds[1-r.Sign[1]], 1) - component1(r.Origin)) * component1(r.InvDir)

	if tmin > tymax || tymin > tmax {
		return 0, 0, false
	}
	if tymin > tmin {
		tmin = tymin
	}
	if tymax < tmax {
		tmax = tymax
	}

	tzmin := (component(bounds[r.Sign[2]], 2) - component2(r.Origin)) * component2(r.InvDir)
	tzmax := (component(bounds[1-r.Sign[2]], 2) - component2(r.Origin)) * component2(r.InvDir)

	if tmin > tzmax || tzmin > tmax {
		return 0, 0, false
	}
	if tzmin > tmin {
		tmin = tzmin
	}
	if tzmax < tmax {
		tmax = tzmax
	}

	if tmax < r.MinDist || tmin > r.MaxDist {
		return 0, 0, false
	}
	return tmin, tmax, true
}

func component(v math.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}
func component0(v math.Vec3) float32 { return v.X }
func component1(v math.Vec3) float32 { return v.Y }
func component2(v math.Vec3) float32 { return v.Z }
