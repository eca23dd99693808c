package colorkit

// HSV is a color in hue/saturation/value form with reduced precision:
// hue in [0,360] degrees, saturation and value in [0,100] percent.
// Setters clamp silently, so an HSV is always in range. The type stores
// only 360x101x101 distinct colors, which keeps it in three bytes at the
// cost of lossy round trips.
type HSV struct {
	hue      uint16
	sat, val uint8
}

// NewHSV builds an HSV color, saturating each component to its valid range.
func NewHSV(hue, saturation, value int) HSV {
	var c HSV
	c.SetHue(hue)
	c.SetSaturation(saturation)
	c.SetValue(value)
	return c
}

// SetHue clamps hue to [0,360] degrees.
func (c *HSV) SetHue(hue int) { c.hue = uint16(clampInt(hue, 0, HueMax)) }

// Hue returns the hue in degrees, [0,360].
func (c HSV) Hue() int { return int(c.hue) }

// SetSaturation clamps saturation to [0,100] percent.
func (c *HSV) SetSaturation(saturation int) {
	c.sat = uint8(clampInt(saturation, 0, SaturationMax))
}

// Saturation returns the saturation in percent, [0,100].
func (c HSV) Saturation() int { return int(c.sat) }

// SetValue clamps value to [0,100] percent.
func (c *HSV) SetValue(value int) { c.val = uint8(clampInt(value, 0, ValueMax)) }

// Value returns the value (brightness) in percent, [0,100].
func (c HSV) Value() int { return int(c.val) }

// RGB converts the color back to RGB.
func (c HSV) RGB() RGB {
	return hsvToRGB(c)
}
