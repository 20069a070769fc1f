package shader

import (
	"github.com/duskray/raycore/math"
	"github.com/duskray/raycore/shadectx"
)

// AttributeHandler reads one field straight out of a shader context into a
// 4-float Value attribute binding kind.
type AttributeHandler func(stx *shadectx.ShaderContext) Value

// attributeTable is the fixed handler keyed by the supported attribute
// names. Fields the simplified ShaderContext in shadectx doesn't
// separately track (dst/dt derivatives) fall back to zero, a
// never-guess-just-degrade-gracefully posture also used by the texture
// sampler's nearest/bilinear fallback.
var attributeTable = map[string]AttributeHandler{
	"pw":    func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.P.Val) },
	"dpwdx": func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.P.DX) },
	"dpwdy": func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.P.DY) },
	"pl":    func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.Pl) },
	"pwg":   func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.P.Val) },
	"v":     func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.Ray.Dir.Negate()) },
	"z":     func(s *shadectx.ShaderContext) Value { return floatValue(TFloat, float64(s.Isect.T)) },
	"n":     func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.Ns.Val) },
	"nf":    func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.Nsf) },
	"ng":    func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.Ng) },
	"ngf":   func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.Ngf) },
	"ns":    func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.Ns.Val) },
	"dnsdx": func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.Ns.DX) },
	"dnsdy": func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.Ns.DY) },
	"st":    func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, s.ST) },
	"dstdx": func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, math.Vec3Zero) },
	"dstdy": func(s *shadectx.ShaderContext) Value { return vec3Value(TVec3, math.Vec3Zero) },
	"uv":    func(s *shadectx.ShaderContext) Value { return vec2Value(TVec2, float64(s.UV.Val.X), float64(s.UV.Val.Y)) },
	"duvdx": func(s *shadectx.ShaderContext) Value { return vec2Value(TVec2, float64(s.UV.DX.X), float64(s.UV.DX.Y)) },
	"duvdy": func(s *shadectx.ShaderContext) Value { return vec2Value(TVec2, float64(s.UV.DY.X), float64(s.UV.DY.Y)) },
	"cf":    func(s *shadectx.ShaderContext) Value { return vec3Value(TColor3, s.Color.Val) },
	"dcfdx": func(s *shadectx.ShaderContext) Value { return vec3Value(TColor3, s.Color.DX) },
	"dcfdy": func(s *shadectx.ShaderContext) Value { return vec3Value(TColor3, s.Color.DY) },
	"t":     func(s *shadectx.ShaderContext) Value { return floatValue(TFloat, float64(s.Time)) },
	"time":  func(s *shadectx.ShaderContext) Value { return floatValue(TFloat, float64(s.Time)) },
	"dtdx":  func(s *shadectx.ShaderContext) Value { return floatValue(TFloat, 0) },
	"dtdy":  func(s *shadectx.ShaderContext) Value { return floatValue(TFloat, 0) },
	"vdotn": func(s *shadectx.ShaderContext) Value {
		return floatValue(TFloat, float64(s.Ray.Dir.Negate().Dot(s.Ns.Val)))
	},
	"vdotng": func(s *shadectx.ShaderContext) Value {
		return floatValue(TFloat, float64(s.Ray.Dir.Negate().Dot(s.Ng)))
	},
	"vdotnf": func(s *shadectx.ShaderContext) Value {
		return floatValue(TFloat, float64(s.Ray.Dir.Negate().Dot(s.Nsf)))
	},
	"noisepw": func(s *shadectx.ShaderContext) Value {
		return floatValue(TFloat, hashNoise3(s.P.Val.X, s.P.Val.Y, s.P.Val.Z))
	},
	"randompw": func(s *shadectx.ShaderContext) Value {
		return floatValue(TFloat, hashNoise3(s.P.Val.X*17, s.P.Val.Y*31, s.P.Val.Z*53))
	},
	"noiseuv": func(s *shadectx.ShaderContext) Value {
		return floatValue(TFloat, hashNoise3(s.UV.Val.X, s.UV.Val.Y, 0))
	},
	"cv": func(s *shadectx.ShaderContext) Value {
		c := s.VertexColor
		return vec4Value(TColor4, math.Vec4{X: c.R, Y: c.G, Z: c.B, W: c.A})
	},
}

// LookupAttribute returns the named attribute handler, matched
// case-insensitively.
func LookupAttribute(name string) (AttributeHandler, bool) {
	h, ok := attributeTable[lower(name)]
	return h, ok
}

func lower(s string) string {
	out := []byte(s)
	for i, c := range out {
		if c >= 'A' && c <= 'Z' {
			out[i] = c + ('a' - 'A')
		}
	}
	return string(out)
}

// hashNoise3 is a cheap deterministic hash-based value noise in [0,1],
// standing in for a real Perlin/Worley implementation: noisePW/randomPW/noiseUV
// only need to exist as attribute handlers, not a
// specific noise algorithm.
func hashNoise3(x, y, z float32) float64 {
	h := uint32(1)
	for _, f := range [3]float32{x, y, z} {
		bits := floatBits(f)
		h = h*2654435761 + bits
	}
	return float64(h%100000) / 100000
}

func floatBits(f float32) uint32 {
	// Simple deterministic mixing without depending on math.Float32bits'
	// exact bit layout semantics mattering beyond "stable for equal input".
	i := int64(f * 1000003)
	return uint32(i) ^ uint32(i>>32)
}
