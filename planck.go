package colorkit

import "math"

// The Kelvin<->RGB curves are the one place floating point is allowed:
// the Planckian-locus fit is logarithmic/power shaped and has no practical
// fixed-point form. tempToRGB is Tanner Helland's published approximation;
// rgbToTemp inverts it channel by channel.

func tempToRGB(t Temp) RGB {
	tk := float64(t.Kelvin()) / 100

	var r, g, b float64

	if tk <= 66 {
		r = 255
		g = greenLogScale*math.Log(tk) - greenLogOffset

		if tk > 19 {
			b = blueLogScale*math.Log(tk-10) - blueLogOffset
		}
	} else {
		r = redPowScale * math.Pow(tk-60, redPowExp)
		g = greenPowScale * math.Pow(tk-60, greenPowExp)
		b = 255
	}

	return RGB{
		R: uint8(clampFloat(r, 0, 255)),
		G: uint8(clampFloat(g, 0, 255)),
		B: uint8(clampFloat(b, 0, 255)),
	}
}

// rgbToTemp estimates the color temperature that tempToRGB would have
// produced the given color from. The forward map is not bijective at the
// channels chosen, so this is an estimate, not an inverse.
func rgbToTemp(c RGB) Temp {
	if c.R == 255 {
		// Below ~6600 K red is pinned at 255; invert the green log curve
		// and quantize to 25 K.
		k := math.Exp((float64(c.G)+greenLogOffset)/greenLogScale) * 100

		return NewTemp(roundToStep(k, 25))
	}

	// Above ~6600 K invert the red and green power curves separately and
	// split the difference, biased toward the lower estimate. Quantize to
	// 50 K, matching the coarser curve up there.
	tr := math.Pow(float64(c.R)/redPowScale, 1/redPowExp) + 60
	tg := math.Pow(float64(c.G)/greenPowScale, 1/greenPowExp) + 60
	k := (math.Min(tr, tg) + math.Abs(tr-tg)/2) * 100

	return NewTemp(roundToStep(k, 50))
}

// roundToStep truncates v and rounds to the nearest multiple of step.
// The clamp keeps the float conversion defined: a zero red or green channel
// sends the inverted power curve to +Inf.
func roundToStep(v float64, step int) int {
	k := int(clampFloat(v, 0, math.MaxUint16))
	if k%step != 0 {
		k += step / 2
		k -= k % step
	}

	return k
}
