package highlight

import (
	"strings"
	"testing"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/host"
	"github.com/nestshade/nestshade/host/hosttest"
	"github.com/nestshade/nestshade/policy"
	"github.com/nestshade/nestshade/region"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

const source = `package main

func main() {
	for {
		if true {
			break
		}
	}
}`

func generatedOptions() Options {
	return Options{
		Policy:   policy.Options{Enabled: true, Generation: policy.DefaultGeneration},
		Priority: 10,
	}
}

func TestHighlighter(t *testing.T) {
	Convey("Given a dark themed editor with a Go file", t, func() {
		fake := hosttest.New()
		fake.SetUserStyle(host.NormalStyle, mo.Some[color.Hex]("#000000"))
		lines := strings.Split(source, "\n")
		buf := fake.OpenBuffer(lines)
		hl := New(fake, generatedOptions())

		hl.PaintRegions(buf, region.Scan(lines, region.Braces))

		Convey("Deeper interiors get lighter backgrounds", func() {
			So(fake.BackgroundAt(buf, 3).MustGet(), ShouldEqual, hl.ColorFor(1).MustGet())
			So(fake.BackgroundAt(buf, 4).MustGet(), ShouldEqual, hl.ColorFor(2).MustGet())
			So(fake.BackgroundAt(buf, 5).MustGet(), ShouldEqual, hl.ColorFor(3).MustGet())
			So(fake.BackgroundAt(buf, 2).IsAbsent(), ShouldBeTrue)
			So(hl.ColorFor(1).MustGet(), ShouldEqual, color.Hex("#0d0d0d"))
		})

		Convey("The background in use is reported", func() {
			So(hl.Background(), ShouldEqual, color.Hex("#000000"))
		})

		Convey("Each level gets its own style", func() {
			So(hl.StyleFor(1).MustGet(), ShouldEqual, "NestshadeLevel1")
			So(hl.StyleFor(3).MustGet(), ShouldEqual, "NestshadeLevel3")
			So(hl.StyleFor(4).IsAbsent(), ShouldBeTrue)
		})

		Convey("A theme change recolors after a retheme", func() {
			fake.SetUserStyle(host.NormalStyle, mo.Some[color.Hex]("#ffffff"))
			fake.SetPreference(host.Light)

			bufs := hl.Retheme()
			So(bufs, ShouldResemble, []host.Buffer{buf})
			So(fake.Marks(buf), ShouldBeEmpty)

			defines := len(fake.Defines)
			hl.PaintRegions(buf, region.Scan(lines, region.Braces))
			So(len(fake.Defines), ShouldEqual, defines+3)
			So(fake.BackgroundAt(buf, 3).MustGet(), ShouldEqual, color.Hex("#ffffff"))
		})

		Convey("Repainting with an unchanged theme reuses styles", func() {
			defines := len(fake.Defines)
			hl.PaintRegions(buf, region.Scan(lines, region.Braces))
			So(len(fake.Defines), ShouldEqual, defines)
		})

		Convey("Disabling colors stops painting", func() {
			hl.Clear(buf)
			opts := generatedOptions()
			opts.Policy.Enabled = false
			hl.SetOptions(opts)

			mutations := fake.Mutations()
			hl.PaintRegions(buf, region.Scan(lines, region.Braces))
			So(fake.Mutations(), ShouldEqual, mutations)
			So(hl.ColorFor(1).IsAbsent(), ShouldBeTrue)
			So(hl.Options().Priority, ShouldEqual, 10)
		})
	})
}
