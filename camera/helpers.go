package camera

import stdmath "math"

const piF = float32(stdmath.Pi)

func sinf(f float32) float32 { return float32(stdmath.Sin(float64(f))) }
func cosf(f float32) float32 { return float32(stdmath.Cos(float64(f))) }
