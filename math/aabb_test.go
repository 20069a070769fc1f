package math

import "testing"

func TestAABBGrowUnion(t *testing.T) {
	b := EmptyAABB()
	b = b.Grow(Vec3{X: -1, Y: 0, Z: 2})
	b = b.Grow(Vec3{X: 3, Y: 5, Z: -2})

	if b.Min != (Vec3{X: -1, Y: 0, Z: -2}) {
		t.Errorf("Min: got %v", b.Min)
	}
	if b.Max != (Vec3{X: 3, Y: 5, Z: 2}) {
		t.Errorf("Max: got %v", b.Max)
	}

	other := AABB{Min: Vec3{X: -5, Y: -5, Z: -5}, Max: Vec3{X: -4, Y: -4, Z: -4}}
	u := b.Union(other)
	if u.Min != (Vec3{X: -5, Y: -5, Z: -5}) {
		t.Errorf("Union.Min: got %v", u.Min)
	}
}

func TestAABBLongestAxis(t *testing.T) {
	b := AABB{Min: Vec3Zero, Max: Vec3{X: 1, Y: 5, Z: 2}}
	if got := b.LongestAxis(); got != 1 {
		t.Errorf("expected longest axis 1 (Y), got %d", got)
	}
}

func TestAABBSurfaceArea(t *testing.T) {
	unitCube := AABB{Min: Vec3Zero, Max: Vec3One}
	if got := unitCube.SurfaceArea(); got != 6 {
		t.Errorf("expected unit cube surface area 6, got %v", got)
	}
}

func TestAABBTransform(t *testing.T) {
	b := AABB{Min: Vec3{X: -1, Y: -1, Z: -1}, Max: Vec3{X: 1, Y: 1, Z: 1}}
	m := Mat4Translation(Vec3{X: 10, Y: 0, Z: 0})
	got := b.Transform(m)
	if got.Min.X != 9 || got.Max.X != 11 {
		t.Errorf("expected translated box, got %v", got)
	}
}
