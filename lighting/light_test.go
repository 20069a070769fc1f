package lighting

import (
	"testing"

	"github.com/duskray/raycore/math"
)

type pointLight struct {
	pos   math.Vec3
	color math.Vec3
	shadow float32
}

func (l pointLight) LVector(p, n math.Vec3) (math.Vec3, float32) {
	delta := l.pos.Sub(p)
	dist := delta.Length()
	if dist == 0 {
		return math.Vec3{}, 0
	}
	return delta.Mul(1 / dist), dist
}

func (l pointLight) Color(p, n, dir math.Vec3, dist float32) math.Vec3 { return l.color }
func (l pointLight) Shadowing(p math.Vec3) float32                     { return l.shadow }
func (l pointLight) Type() TypeTag                                     { return TypePoint }

func TestEvaluateComposesSourceMethods(t *testing.T) {
	light := pointLight{pos: math.Vec3{X: 0, Y: 5, Z: 0}, color: math.Vec3{X: 1, Y: 1, Z: 1}, shadow: 0.5}
	sample := Evaluate(light, math.Vec3{}, math.Vec3{Y: 1})

	if sample.Dist != 5 {
		t.Errorf("Dist = %v, want 5", sample.Dist)
	}
	if sample.Dir.Y != 1 {
		t.Errorf("Dir = %v, want (0,1,0)", sample.Dir)
	}
	if sample.Shadow != 0.5 {
		t.Errorf("Shadow = %v, want 0.5", sample.Shadow)
	}
	if sample.Color != light.color {
		t.Errorf("Color = %v, want %v", sample.Color, light.color)
	}
}

func TestEvaluateHandlesCoincidentPoint(t *testing.T) {
	light := pointLight{pos: math.Vec3{}, color: math.Vec3{X: 1}, shadow: 1}
	sample := Evaluate(light, math.Vec3{}, math.Vec3{Y: 1})
	if sample.Dist != 0 {
		t.Errorf("Dist = %v, want 0 at a coincident point", sample.Dist)
	}
}
