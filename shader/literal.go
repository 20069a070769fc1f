package shader

import (
	"strconv"
	"strings"

	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/rendererr"
)

func matFromRowMajor(m [16]float32) math.Mat4 {
	var out math.Mat4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			out[i][j] = m[i*4+j]
		}
	}
	return out
}

// ParseLiteral parses a constant knob literal — "1", "0.5 0.5 0.5",
// "1 1 1 1" — as space-separated components matching the knob type's
// arity.
func ParseLiteral(t KnobType, literal string) (Value, error) {
	switch t {
	case TString:
		return Value{Type: t, Str: literal}, nil
	case TPointer, TPixelRef:
		return Value{}, rendererr.NewConfigurationError("shader", nil, "type %s has no literal form", t)
	}

	fields := strings.Fields(literal)
	want := arity(t)
	if len(fields) != want {
		return Value{}, rendererr.NewConfigurationError("shader", nil,
			"literal %q has %d component(s), want %d for type %s", literal, len(fields), want, t)
	}

	parsed := make([]float64, want)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return Value{}, rendererr.NewConfigurationError("shader", err, "parsing component %q of %q", f, literal)
		}
		parsed[i] = v
	}

	if t == TMat4 {
		var m [16]float32
		for i, v := range parsed {
			m[i] = float32(v)
		}
		return Value{Type: t, Mat: matFromRowMajor(m)}, nil
	}

	var out [4]float64
	copy(out[:], parsed)
	return Value{Type: t, Vec: out}, nil
}

func arity(t KnobType) int {
	switch t {
	case TInt, TFloat, TDouble:
		return 1
	case TVec2:
		return 2
	case TVec3, TColor3:
		return 3
	case TVec4, TColor4:
		return 4
	case TMat4:
		return 16
	default:
		return 0
	}
}
