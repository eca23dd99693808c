package colorkit

// Temp is a correlated color temperature in Kelvin, clamped to
// [1500,15000]. The zero value reads as the 2700 K warm-white default.
type Temp struct {
	kelvin uint16
}

// Common white points. They are ordinary Temp values with no special
// behavior attached.
var (
	Candle       = NewTemp(1850)
	Incandescent = NewTemp(2400)
	Fluorescent  = NewTemp(3000)
	Daylight     = NewTemp(5000)
	White        = NewTemp(6500)
	CoolWhite    = NewTemp(7000)
)

// NewTemp builds a Temp, saturating kelvin to [1500,15000].
func NewTemp(kelvin int) Temp {
	var t Temp
	t.SetKelvin(kelvin)
	return t
}

// SetKelvin clamps kelvin to [1500,15000].
func (t *Temp) SetKelvin(kelvin int) {
	t.kelvin = uint16(clampInt(kelvin, KelvinMin, KelvinMax))
}

// Kelvin returns the temperature in Kelvin.
func (t Temp) Kelvin() int {
	if t.kelvin == 0 {
		return KelvinDefault
	}
	return int(t.kelvin)
}

// RGB converts the temperature to the RGB color of a black body at that
// temperature, per the Planckian-locus curve fit.
func (t Temp) RGB() RGB {
	return tempToRGB(t)
}
