package colorkit_test

import (
	"fmt"

	"github.com/vearutop/colorkit"
)

func ExampleRGB_HSV() {
	h := colorkit.RGB{R: 255, G: 128, B: 0}.HSV()

	fmt.Println(h.Hue(), h.Saturation(), h.Value())
	// Output: 30 100 100
}

func ExampleHSV_RGB() {
	c := colorkit.NewHSV(210, 50, 78).RGB()

	fmt.Println(c.Hex())
	// Output: #6394c6
}

func ExampleNewHSV() {
	// Out-of-range components saturate instead of failing.
	c := colorkit.NewHSV(500, 150, -20)

	fmt.Println(c.Hue(), c.Saturation(), c.Value())
	// Output: 360 100 0
}

func ExampleTemp_RGB() {
	c := colorkit.Candle.RGB()

	fmt.Printf("r=%d g=%d b=%d\n", c.R, c.G, c.B)
	// Output: r=255 g=129 b=0
}

func ExampleRGB_Temp() {
	t := colorkit.RGB{R: 255, G: 166, B: 87}.Temp()

	fmt.Println(t.Kelvin())
	// Output: 2675
}

func ExampleRGB_Luminance() {
	fmt.Println(colorkit.RGB{R: 100, G: 150, B: 200}.Luminance())
	// Output: 142
}
