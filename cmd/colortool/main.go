// Command colortool converts colors between RGB, HSV and Kelvin on the
// command line.
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/vearutop/colorkit"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "hsv":
		if err := runHSV(os.Args[2:]); err != nil {
			fail(err)
		}
	case "rgb":
		if err := runRGB(os.Args[2:]); err != nil {
			fail(err)
		}
	case "kelvin":
		if err := runKelvin(os.Args[2:]); err != nil {
			fail(err)
		}
	case "white":
		if err := runWhite(os.Args[2:]); err != nil {
			fail(err)
		}
	case "lum":
		if err := runLum(os.Args[2:]); err != nil {
			fail(err)
		}
	case "presets":
		runPresets()
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: colortool <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  hsv     -r 255 -g 128 -b 0 | -hex '#ff8000' | -name orange")
	fmt.Fprintln(os.Stderr, "  rgb     -hue 30 -sat 100 -val 100")
	fmt.Fprintln(os.Stderr, "  kelvin  -r 255 -g 166 -b 87 | -hex ... | -name ...")
	fmt.Fprintln(os.Stderr, "  white   -k 2700")
	fmt.Fprintln(os.Stderr, "  lum     -r 255 -g 255 -b 255 | -hex ... | -name ...")
	fmt.Fprintln(os.Stderr, "  presets")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}

// rgbFlags registers the three ways of naming an input color and returns a
// resolver to call after parsing.
func rgbFlags(fs *flag.FlagSet) func() (colorkit.RGB, error) {
	r := fs.Int("r", -1, "red channel [0,255]")
	g := fs.Int("g", -1, "green channel [0,255]")
	b := fs.Int("b", -1, "blue channel [0,255]")
	hex := fs.String("hex", "", "hex color, e.g. '#ff8000'")
	name := fs.String("name", "", "SVG 1.1 color name, e.g. 'orange'")

	return func() (colorkit.RGB, error) {
		switch {
		case *hex != "":
			return colorkit.ParseHex(*hex)
		case *name != "":
			c, ok := colornames.Map[strings.ToLower(*name)]
			if !ok {
				return colorkit.RGB{}, fmt.Errorf("unknown color name %q", *name)
			}
			return colorkit.FromColor(c), nil
		case *r >= 0 && *g >= 0 && *b >= 0:
			if *r > 255 || *g > 255 || *b > 255 {
				return colorkit.RGB{}, errors.New("channels must be in [0,255]")
			}
			return colorkit.RGB{R: uint8(*r), G: uint8(*g), B: uint8(*b)}, nil
		default:
			return colorkit.RGB{}, errors.New("specify -r/-g/-b, -hex or -name")
		}
	}
}

func runHSV(args []string) error {
	fs := flag.NewFlagSet("hsv", flag.ContinueOnError)
	resolve := rgbFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := resolve()
	if err != nil {
		return err
	}
	hsv := c.HSV()
	fmt.Printf("hue=%d sat=%d val=%d\n", hsv.Hue(), hsv.Saturation(), hsv.Value())

	return nil
}

func runRGB(args []string) error {
	fs := flag.NewFlagSet("rgb", flag.ContinueOnError)
	hue := fs.Int("hue", 0, "hue [0,360]")
	sat := fs.Int("sat", 0, "saturation [0,100]")
	val := fs.Int("val", 0, "value [0,100]")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c := colorkit.NewHSV(*hue, *sat, *val).RGB()
	fmt.Printf("r=%d g=%d b=%d %s\n", c.R, c.G, c.B, c.Hex())

	return nil
}

func runKelvin(args []string) error {
	fs := flag.NewFlagSet("kelvin", flag.ContinueOnError)
	resolve := rgbFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := resolve()
	if err != nil {
		return err
	}
	fmt.Printf("%dK\n", c.Temp().Kelvin())

	return nil
}

func runWhite(args []string) error {
	fs := flag.NewFlagSet("white", flag.ContinueOnError)
	k := fs.Int("k", colorkit.KelvinDefault, "color temperature in Kelvin [1500,15000]")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c := colorkit.NewTemp(*k).RGB()
	fmt.Printf("r=%d g=%d b=%d %s\n", c.R, c.G, c.B, c.Hex())

	return nil
}

func runLum(args []string) error {
	fs := flag.NewFlagSet("lum", flag.ContinueOnError)
	resolve := rgbFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	c, err := resolve()
	if err != nil {
		return err
	}
	fmt.Println(c.Luminance())

	return nil
}

func runPresets() {
	presets := []struct {
		name string
		t    colorkit.Temp
	}{
		{"candle", colorkit.Candle},
		{"incandescent", colorkit.Incandescent},
		{"fluorescent", colorkit.Fluorescent},
		{"daylight", colorkit.Daylight},
		{"white", colorkit.White},
		{"cool-white", colorkit.CoolWhite},
	}
	for _, p := range presets {
		c := p.t.RGB()
		fmt.Printf("%-13s %5dK  r=%d g=%d b=%d %s\n", p.name, p.t.Kelvin(), c.R, c.G, c.B, c.Hex())
	}
}
