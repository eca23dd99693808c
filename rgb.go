package colorkit

import (
	"errors"
	"fmt"
	"image/color"
)

// RGB is a color with 8-bit red, green and blue channels. Every bit pattern
// is a valid color, so the fields are exported and carry no invariant.
type RGB struct {
	R, G, B uint8
}

// Black is the all-zero color.
var Black = RGB{}

// FromColor converts any color.Color to RGB, discarding alpha.
func FromColor(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	return RGB{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// RGBA implements color.Color. The result is opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	g = uint32(c.G)
	g |= g << 8
	b = uint32(c.B)
	b |= b << 8
	return r, g, b, 0xFFFF
}

// Luminance returns the BT.709 relative luminance of the color as an 8-bit
// value. The weighted sum is computed in integer arithmetic and truncated.
func (c RGB) Luminance() uint8 {
	l := (lumRedWeight*uint32(c.R) + lumGreenWeight*uint32(c.G) + lumBlueWeight*uint32(c.B)) / lumWeightScale
	return uint8(clampInt(int(l), 0, 255))
}

// HSV converts the color to its hue/saturation/value form.
func (c RGB) HSV() HSV {
	return rgbToHSV(c)
}

// Temp estimates the correlated color temperature of the color.
// The black-body curve is not invertible from two channels, so this is a
// best-effort estimate, not an exact inverse of Temp.RGB.
func (c RGB) Temp() Temp {
	return rgbToTemp(c)
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ParseHex parses "#rgb" or "#rrggbb" (the "#" is optional).
func ParseHex(s string) (RGB, error) {
	if s != "" && s[0] == '#' {
		s = s[1:]
	}
	switch len(s) {
	case 3:
		r, okR := hexNibble(s[0])
		g, okG := hexNibble(s[1])
		b, okB := hexNibble(s[2])
		if !okR || !okG || !okB {
			return RGB{}, fmt.Errorf("invalid hex color %q", s)
		}
		return RGB{R: r * 17, G: g * 17, B: b * 17}, nil
	case 6:
		var ch [6]uint8
		for i := 0; i < 6; i++ {
			v, ok := hexNibble(s[i])
			if !ok {
				return RGB{}, fmt.Errorf("invalid hex color %q", s)
			}
			ch[i] = v
		}
		return RGB{R: ch[0]<<4 | ch[1], G: ch[2]<<4 | ch[3], B: ch[4]<<4 | ch[5]}, nil
	default:
		return RGB{}, errors.New("hex color must have 3 or 6 digits")
	}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case '0' <= c && c <= '9':
		return c - '0', true
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10, true
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
