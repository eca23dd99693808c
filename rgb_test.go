package colorkit

import (
	"image/color"
	"testing"
)

var _ color.Color = RGB{}

func TestRGB_Luminance(t *testing.T) {
	tests := []struct {
		name string
		c    RGB
		want uint8
	}{
		{name: "black", c: RGB{}, want: 0},
		{name: "white", c: RGB{R: 255, G: 255, B: 255}, want: 255},
		{name: "red", c: RGB{R: 255}, want: 54},
		{name: "green", c: RGB{G: 255}, want: 182},
		{name: "blue", c: RGB{B: 255}, want: 18},
		{name: "mixed", c: RGB{R: 100, G: 150, B: 200}, want: 142},
		{name: "dark mixed", c: RGB{R: 12, G: 34, B: 56}, want: 30},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Luminance(); got != tt.want {
				t.Errorf("Luminance() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestRGB_ColorInterface(t *testing.T) {
	c := RGB{R: 0x12, G: 0x34, B: 0x56}
	r, g, b, a := c.RGBA()
	if r != 0x1212 || g != 0x3434 || b != 0x5656 || a != 0xFFFF {
		t.Errorf("RGBA() = (%#x, %#x, %#x, %#x)", r, g, b, a)
	}

	if got := FromColor(c); got != c {
		t.Errorf("FromColor round trip = %v, want %v", got, c)
	}
	if got := FromColor(color.NRGBA{R: 10, G: 20, B: 30, A: 255}); got != (RGB{R: 10, G: 20, B: 30}) {
		t.Errorf("FromColor(NRGBA) = %v", got)
	}
}

func TestParseHex(t *testing.T) {
	tests := []struct {
		in      string
		want    RGB
		wantErr bool
	}{
		{in: "#ff8000", want: RGB{R: 255, G: 128, B: 0}},
		{in: "ff8000", want: RGB{R: 255, G: 128, B: 0}},
		{in: "#F80", want: RGB{R: 255, G: 136, B: 0}},
		{in: "#000000", want: RGB{}},
		{in: "", wantErr: true},
		{in: "#ff80", wantErr: true},
		{in: "#gg8000", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseHex(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseHex(%q): expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseHex(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseHex(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestRGB_Hex(t *testing.T) {
	for _, c := range []RGB{{}, {R: 255, G: 128, B: 0}, {R: 1, G: 2, B: 3}} {
		back, err := ParseHex(c.Hex())
		if err != nil {
			t.Fatalf("ParseHex(%q): %v", c.Hex(), err)
		}
		if back != c {
			t.Errorf("hex round trip %v -> %q -> %v", c, c.Hex(), back)
		}
	}
}
