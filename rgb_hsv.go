package colorkit

// RGB<->HSV runs entirely on integer fixed-point arithmetic so the results
// are bit-identical on every platform. Fractions live in the low bits
// (8.24 for saturation/value, 16.16 for hue) and are rounded half-up when
// the integer part is extracted.

func rgbToHSV(c RGB) HSV {
	mx := max(c.R, c.G, c.B)
	mn := min(c.R, c.G, c.B)
	chroma := mx - mn

	// Value: max/255 scaled to percent in 8.24 fixed point.
	uv := uint32(mx) << 24
	uv /= 255
	uv *= 100
	value := int(uv >> 24)
	if uv&0xFFFFFF >= 0x800000 {
		value++
	}

	if chroma == 0 || mx == 0 {
		// Gray or black: hue and saturation are undefined, report zero.
		return NewHSV(0, 0, value)
	}

	var hue int
	switch mx {
	case c.R:
		// Red dominant. The channel ratio can be negative here; negate,
		// scale, and wrap the result into [0,360] instead.
		sl := (int32(c.G) - int32(c.B)) << 16
		sl /= int32(chroma)
		if sl < 0 {
			sl = -sl * 60
			hue = 360 - int(sl>>16)
			if sl&0xFFFF >= 0x8000 {
				hue--
			}
			break
		}
		hue = roundHue(sl * 60)
	case c.G:
		sl := (int32(c.B) - int32(c.R)) << 16
		sl /= int32(chroma)
		sl += 2 << 16
		hue = roundHue(sl * 60)
	default:
		sl := (int32(c.R) - int32(c.G)) << 16
		sl /= int32(chroma)
		sl += 4 << 16
		hue = roundHue(sl * 60)
	}

	// Saturation: chroma/max scaled to percent, same fixed point as value.
	us := uint32(chroma) << 24
	us /= uint32(mx)
	us *= 100
	sat := int(us >> 24)
	if us&0xFFFFFF >= 0x800000 {
		sat++
	}

	// NewHSV re-clamps each component. The math above keeps everything in
	// range already, so this never changes the result.
	return NewHSV(hue, sat, value)
}

// roundHue extracts degrees from a non-negative 16.16 hue, rounding half up.
func roundHue(sl int32) int {
	h := int(sl >> 16)
	if sl&0xFFFF >= 0x8000 {
		h++
	}
	return h
}

func hsvToRGB(c HSV) RGB {
	chroma := uint32(c.val) * uint32(c.sat) * 255 / 10000
	m := uint32(c.val)*255/100 - chroma

	// Second-largest channel: chroma scaled by the triangular wave
	// 1-|((h/60) mod 2)-1|, evaluated in 16.16 fixed point.
	tmp := int32(c.hue) << 16
	tmp /= 60
	tmp %= 2 << 16
	tmp -= 0xFFFF
	if tmp < 0 {
		tmp = -tmp
	}
	tmp = 0xFFFF - tmp
	tmp *= int32(chroma)
	x := uint32(tmp >> 16)

	switch c.hue / 60 {
	case 0, 6: // 360 wraps back to the red..yellow sector
		return RGB{R: uint8(chroma + m), G: uint8(x + m), B: uint8(m)}
	case 1:
		return RGB{R: uint8(x + m), G: uint8(chroma + m), B: uint8(m)}
	case 2:
		return RGB{R: uint8(m), G: uint8(chroma + m), B: uint8(x + m)}
	case 3:
		return RGB{R: uint8(m), G: uint8(x + m), B: uint8(chroma + m)}
	case 4:
		return RGB{R: uint8(x + m), G: uint8(m), B: uint8(chroma + m)}
	case 5:
		return RGB{R: uint8(chroma + m), G: uint8(m), B: uint8(x + m)}
	}

	// Unreachable while hue is clamped to [0,360].
	return Black
}
