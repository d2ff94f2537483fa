package color

import (
	"errors"
	"math"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	. "github.com/smartystreets/goconvey/convey"
)

func roundTrip(h string) Hex {
	rgb, err := HexToRGB(h)
	So(err, ShouldBeNil)
	return RGBToHex(HSLToRGB(RGBToHSL(rgb)))
}

func channelsWithin(a, b Hex, tolerance float64) bool {
	ra, errA := HexToRGB(string(a))
	rb, errB := HexToRGB(string(b))
	if errA != nil || errB != nil {
		return false
	}

	for _, d := range []float64{ra.R - rb.R, ra.G - rb.G, ra.B - rb.B} {
		if math.Abs(d)*255 > tolerance+1e-9 {
			return false
		}
	}
	return true
}

func TestHexToRGB(t *testing.T) {
	Convey("HexToRGB", t, func() {
		Convey("Should accept an optional leading hash", func() {
			a, err := HexToRGB("#ff8000")
			So(err, ShouldBeNil)
			b, err := HexToRGB("ff8000")
			So(err, ShouldBeNil)
			So(a, ShouldResemble, b)
			So(a.R, ShouldEqual, 1)
			So(a.G, ShouldAlmostEqual, 128.0/255, 1e-12)
			So(a.B, ShouldEqual, 0)
		})

		Convey("Should reject malformed input", func() {
			for _, in := range []string{"", "#", "#fff", "#ff80001", "#gg0000", "##ff800", "ff 800"} {
				_, err := HexToRGB(in)
				So(errors.Is(err, ErrInvalidFormat), ShouldBeTrue)
			}
		})

		Convey("Should accept uppercase digits", func() {
			rgb, err := HexToRGB("#ABCDEF")
			So(err, ShouldBeNil)
			So(RGBToHex(rgb), ShouldEqual, Hex("#abcdef"))
		})
	})
}

func TestRGBToHSL(t *testing.T) {
	Convey("RGBToHSL", t, func() {
		Convey("Should report achromatic colors with zero hue and saturation", func() {
			hsl := RGBToHSL(RGB{R: 0.5, G: 0.5, B: 0.5})
			So(hsl.H, ShouldEqual, 0)
			So(hsl.S, ShouldEqual, 0)
			So(hsl.L, ShouldEqual, 0.5)
		})

		Convey("Should place primaries at thirds of the hue circle", func() {
			So(RGBToHSL(RGB{R: 1}).H, ShouldEqual, 0)
			So(RGBToHSL(RGB{G: 1}).H, ShouldAlmostEqual, 1.0/3, 1e-12)
			So(RGBToHSL(RGB{B: 1}).H, ShouldAlmostEqual, 2.0/3, 1e-12)
		})

		Convey("Should wrap hue when blue exceeds green on the red branch", func() {
			hsl := RGBToHSL(RGB{R: 1, G: 0, B: 0.5})
			So(hsl.H, ShouldBeGreaterThan, 0.9)
			So(hsl.H, ShouldBeLessThan, 1)
		})

		Convey("Should agree with go-colorful", func() {
			for _, h := range []string{"#1e1e2e", "#cdd6f4", "#f38ba8", "#a6e3a1", "#808080", "#ffb703"} {
				c, err := colorful.Hex(h)
				So(err, ShouldBeNil)
				hh, ss, ll := c.Hsl()

				rgb, _ := HexToRGB(h)
				hsl := RGBToHSL(rgb)
				So(hsl.H*360, ShouldAlmostEqual, hh, 1e-9)
				So(hsl.S, ShouldAlmostEqual, ss, 1e-9)
				So(hsl.L, ShouldAlmostEqual, ll, 1e-9)
			}
		})
	})
}

func TestRGBToHex(t *testing.T) {
	Convey("RGBToHex", t, func() {
		Convey("Should clamp out-of-range channels", func() {
			So(RGBToHex(RGB{R: 1.2, G: -0.3, B: 0.5}), ShouldEqual, Hex("#ff0080"))
		})

		Convey("Should round to the nearest integer", func() {
			So(RGBToHex(RGB{R: 0.6 / 255, G: 1.4 / 255, B: 254.6 / 255}), ShouldEqual, Hex("#0101ff"))
		})

		Convey("Should always produce canonical output", func() {
			So(RGBToHex(RGB{R: math.NaN(), G: 1, B: 0}).Valid(), ShouldBeTrue)
		})
	})
}

func TestRoundTrip(t *testing.T) {
	Convey("Converting hex through HSL and back", t, func() {
		Convey("Should reproduce well-known colors", func() {
			for _, h := range []Hex{"#000000", "#ffffff", "#1e1e2e", "#abcdef", "#fedcba", "#ff0000", "#00ff00", "#0000ff", "#123456"} {
				So(channelsWithin(roundTrip(string(h)), h, 1), ShouldBeTrue)
			}
		})

		Convey("Should hold within one step per channel across the cube", func() {
			for r := 0; r < 256; r += 15 {
				for g := 0; g < 256; g += 17 {
					for b := 0; b < 256; b += 13 {
						h := RGBToHex(RGB{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255})
						So(channelsWithin(roundTrip(string(h)), h, 1), ShouldBeTrue)
					}
				}
			}
		})
	})
}

func TestNormalize(t *testing.T) {
	Convey("Normalize", t, func() {
		h, err := Normalize("ABCDEF")
		So(err, ShouldBeNil)
		So(h, ShouldEqual, Hex("#abcdef"))
		So(h.Valid(), ShouldBeTrue)

		_, err = Normalize("nope")
		So(err, ShouldNotBeNil)
		So(Hex("#ABCDEF").Valid(), ShouldBeFalse)
	})
}
