package volume

import "github.com/duskray/raycore/config"

// chooseStep clamps a user base step so the smallest volume gets at least
// MinRaySteps steps and the largest gets at most MaxRaySteps, then caps
// the total step count in preview mode.
func chooseStep(baseStep, tmin, tmax float32, bounds []Bound, tun config.Tunables) float32 {
	minSeg, maxSeg := bounds[0].segmentLength(), bounds[0].segmentLength()
	for _, b := range bounds[1:] {
		l := b.segmentLength()
		if l < minSeg {
			minSeg = l
		}
		if l > maxSeg {
			maxSeg = l
		}
	}

	step := baseStep
	if upperBound := minSeg / float32(tun.MinRaySteps); upperBound > 0 && step > upperBound {
		step = upperBound
	}
	if lowerBound := maxSeg / float32(tun.MaxRaySteps); step < lowerBound {
		step = lowerBound
	}

	totalRange := tmax - tmin
	maxSteps := tun.EffectiveMaxSteps()
	if totalRange > 0 && maxSteps > 0 {
		if minStep := totalRange / float32(maxSteps); step < minStep {
			step = minStep
		}
	}
	if step <= 0 {
		step = totalRange
	}
	return step
}
