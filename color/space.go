package color

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidFormat is returned for strings that are not 6-digit hex colors.
var ErrInvalidFormat = errors.New("invalid color format")

// Hex is a canonical "#rrggbb" color with lowercase digits.
type Hex string

// Valid reports whether h is in canonical form.
func (h Hex) Valid() bool {
	if len(h) != 7 || h[0] != '#' {
		return false
	}

	for _, r := range h[1:] {
		if !(r >= '0' && r <= '9' || r >= 'a' && r <= 'f') {
			return false
		}
	}

	return true
}

// String implements fmt.Stringer.
func (h Hex) String() string {
	return string(h)
}

// Lipgloss returns h as a lipgloss color for terminal rendering.
func (h Hex) Lipgloss() lipgloss.Color {
	return lipgloss.Color(h)
}

// RGB holds red, green and blue channels in [0,1].
type RGB struct {
	R, G, B float64
}

// HSL holds hue, saturation and lightness, each in [0,1].
type HSL struct {
	H, S, L float64
}

// Normalize parses s and returns it in canonical form.
func Normalize(s string) (Hex, error) {
	rgb, err := HexToRGB(s)
	if err != nil {
		return "", err
	}

	return RGBToHex(rgb), nil
}

// HexToRGB parses a color with an optional leading '#' followed by exactly 6 hex digits.
func HexToRGB(s string) (RGB, error) {
	digits := strings.TrimPrefix(s, "#")
	if len(digits) != 6 {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}

	var channels [3]float64
	for i := range channels {
		v, err := strconv.ParseUint(digits[i*2:i*2+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
		}
		channels[i] = float64(v) / 255
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// RGBToHSL converts rgb using the min/max channel decomposition.
// Equal extremes yield an achromatic color with zero hue and saturation.
func RGBToHSL(rgb RGB) HSL {
	r, g, b := rgb.R, rgb.G, rgb.B
	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	l := (hi + lo) / 2

	if hi == lo {
		return HSL{L: l}
	}

	d := hi - lo

	var s float64
	if l > 0.5 {
		s = d / (2 - hi - lo)
	} else {
		s = d / (hi + lo)
	}

	var h float64
	switch hi {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return HSL{H: h / 6, S: s, L: l}
}

// HSLToRGB is the inverse of RGBToHSL.
func HSLToRGB(hsl HSL) RGB {
	if hsl.S == 0 {
		return RGB{R: hsl.L, G: hsl.L, B: hsl.L}
	}

	var q float64
	if hsl.L < 0.5 {
		q = hsl.L * (1 + hsl.S)
	} else {
		q = hsl.L + hsl.S - hsl.L*hsl.S
	}
	p := 2*hsl.L - q

	return RGB{
		R: hueToRGB(p, q, hsl.H+1.0/3),
		G: hueToRGB(p, q, hsl.H),
		B: hueToRGB(p, q, hsl.H-1.0/3),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}

	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// RGBToHex formats rgb as a canonical hex color. Out-of-range channels are clamped, never rejected.
func RGBToHex(rgb RGB) Hex {
	c := colorful.Color{R: rgb.R, G: rgb.G, B: rgb.B}.Clamped()

	var b strings.Builder
	b.WriteByte('#')
	for _, v := range []float64{c.R, c.G, c.B} {
		if math.IsNaN(v) {
			v = 0
		}
		n := int(math.Round(v * 255))
		n = max(0, min(255, n))
		b.WriteString(fmt.Sprintf("%02x", n))
	}

	return Hex(b.String())
}
