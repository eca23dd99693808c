package colorkit

// Range limits of the three models.
const (
	HueMax        = 360
	SaturationMax = 100
	ValueMax      = 100

	KelvinMin     = 1500
	KelvinMax     = 15000
	KelvinDefault = 2700
)

// Black-body curve fit coefficients (Tanner Helland's approximation).
// These exact constants are a compatibility contract: the Kelvin estimator
// inverts them, and changing a digit shifts every estimate.
const (
	greenLogScale  = 99.4708025861
	greenLogOffset = 161.1195681661
	blueLogScale   = 138.5177312231
	blueLogOffset  = 305.0447927307
	redPowScale    = 329.698727446
	redPowExp      = -0.1332047592
	greenPowScale  = 288.1221695283
	greenPowExp    = -0.0755148492
)

// Relative-luminance channel weights scaled by 1e4 (BT.709).
const (
	lumRedWeight   = 2126
	lumGreenWeight = 7152
	lumBlueWeight  = 722
	lumWeightScale = 10000
)
