package texture

import stdmath "math"

// Sample implements filtered texture read: given UV
// and its screen-space derivatives, pick nearest/bilinear/cubic per the
// stated fallback paths, and for the cubic path, evaluate separable 1-D
// weight arrays over the derivative-sized footprint with edge-clamp
// substitution where the footprint crosses the tile's data window.
func Sample(tc *TileCache, u, v, dudx, dudy, dvdx, dvdy float32) ([4]float32, error) {
	if err := tc.Ensure(); err != nil {
		return fallbackColor(), err
	}

	// Jacobian of (dUVdx, dUVdy) in texel space: each derivative vector
	// scaled by tile resolution gives the ellipse's two conjugate radii.
	w, h := float32(tc.width), float32(tc.height)
	ex0, ey0 := dudx*w, dvdx*h
	ex1, ey1 := dudy*w, dvdy*h

	majorX := maxAbs(ex0, ex1)
	majorY := maxAbs(ey0, ey1)

	if majorX < 1e-8 && majorY < 1e-8 {
		return sampleNearest(tc, u, v), nil
	}
	if majorX < 0.5 && majorY < 0.5 {
		return sampleBilinear(tc, u, v), nil
	}
	return sampleFiltered(tc, u, v, majorX, majorY), nil
}

func maxAbs(a, b float32) float32 {
	if a < 0 {
		a = -a
	}
	if b < 0 {
		b = -b
	}
	if a > b {
		return a
	}
	return b
}

func fallbackColor() [4]float32 { return [4]float32{0, 0, 0, 0} }

func texelCoord(tc *TileCache, u, v float32) (float32, float32) {
	return u*float32(tc.width) - 0.5, v*float32(tc.height) - 0.5
}

func sampleNearest(tc *TileCache, u, v float32) [4]float32 {
	tx, ty := texelCoord(tc, u, v)
	x, y := int(stdmath.Round(float64(tx))), int(stdmath.Round(float64(ty)))
	var out [4]float32
	for c := 0; c < tc.channels && c < 4; c++ {
		out[c] = tc.texel(x, y, c)
	}
	return out
}

func sampleBilinear(tc *TileCache, u, v float32) [4]float32 {
	tx, ty := texelCoord(tc, u, v)
	x0, y0 := int(stdmath.Floor(float64(tx))), int(stdmath.Floor(float64(ty)))
	fx, fy := tx-float32(x0), ty-float32(y0)

	var out [4]float32
	for c := 0; c < tc.channels && c < 4; c++ {
		v00 := tc.texel(x0, y0, c)
		v10 := tc.texel(x0+1, y0, c)
		v01 := tc.texel(x0, y0+1, c)
		v11 := tc.texel(x0+1, y0+1, c)
		top := v00 + (v10-v00)*fx
		bot := v01 + (v11-v01)*fx
		out[c] = top + (bot-top)*fy
	}
	return out
}

// sampleFiltered evaluates separable cubic weight arrays over the
// derivative-sized footprint ( steps 3-5), clamping to
// the tile's edge when the footprint extends past it.
func sampleFiltered(tc *TileCache, u, v, extentX, extentY float32) [4]float32 {
	tx, ty := texelCoord(tc, u, v)
	radiusX := int(stdmath.Ceil(float64(extentX)))
	radiusY := int(stdmath.Ceil(float64(extentY)))
	if radiusX < 1 {
		radiusX = 1
	}
	if radiusY < 1 {
		radiusY = 1
	}

	cx := int(stdmath.Floor(float64(tx)))
	cy := int(stdmath.Floor(float64(ty)))

	cU, normU := cubicWeights(tx, cx, radiusX)
	cV, normV := cubicWeights(ty, cy, radiusY)

	var sum [4]float32
	for j := -radiusY; j <= radiusY; j++ {
		wy := cV[j+radiusY]
		if wy == 0 {
			continue
		}
		for i := -radiusX; i <= radiusX; i++ {
			wx := cU[i+radiusX]
			if wx == 0 {
				continue
			}
			weight := wx * wy
			for c := 0; c < tc.channels && c < 4; c++ {
				sum[c] += tc.texel(cx+i, cy+j, c) * weight
			}
		}
	}

	// step 5: normalize by cU.normalize * cV.normalize
	norm := normU * normV
	if norm > 1e-12 {
		for c := range sum {
			sum[c] /= norm
		}
	}
	return sum
}

// cubicWeights evaluates the Mitchell-Netravali cubicKernel at each integer
// offset from -radius..radius around center, returning the weight array
// and its sum ( cU/cV arrays and their normalize
// factor).
func cubicWeights(pos float32, center, radius int) ([]float32, float32) {
	weights := make([]float32, 2*radius+1)
	var sum float32
	for i := -radius; i <= radius; i++ {
		d := (pos - float32(center+i)) / float32(radius)
		w := cubicKernel(d)
		weights[i+radius] = w
		sum += w
	}
	return weights, sum
}

// cubicKernel is Mitchell-Netravali with B=C=1/3, a standard resampling
// cubic; |x|>=2 returns 0.
func cubicKernel(x float32) float32 {
	const b, c = 1.0 / 3, 1.0 / 3
	if x < 0 {
		x = -x
	}
	x2, x3 := x*x, x*x*x
	switch {
	case x < 1:
		return ((12-9*b-6*c)*x3 + (-18+12*b+6*c)*x2 + (6 - 2*b)) / 6
	case x < 2:
		return ((-b-6*c)*x3 + (6*b+30*c)*x2 + (-12*b-48*c)*x + (8*b + 24*c)) / 6
	default:
		return 0
	}
}
