package registry

import (
	"testing"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/host/hosttest"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestEnsure(t *testing.T) {
	Convey("Given an empty registry", t, func() {
		fake := hosttest.New()
		r := New(fake)

		Convey("An absent color defines nothing", func() {
			So(r.Ensure(1, mo.None[color.Hex]()).IsAbsent(), ShouldBeTrue)
			So(fake.Defines, ShouldBeEmpty)
		})

		Convey("Names are derived from the level", func() {
			So(r.Ensure(2, mo.Some[color.Hex]("#abcdef")).MustGet(), ShouldEqual, "NestshadeLevel2")
			So(Name(12), ShouldEqual, "NestshadeLevel12")
		})

		Convey("An unchanged color is defined once", func() {
			r.Ensure(2, mo.Some[color.Hex]("#abcdef"))
			r.Ensure(2, mo.Some[color.Hex]("#abcdef"))
			So(fake.Defines, ShouldHaveLength, 1)

			Convey("A changed color redefines the same slot", func() {
				name := r.Ensure(2, mo.Some[color.Hex]("#fedcba"))
				So(fake.Defines, ShouldHaveLength, 2)
				So(name.MustGet(), ShouldEqual, "NestshadeLevel2")
				So(r.Len(), ShouldEqual, 1)
				So(r.Lookup(2).MustGet().Color, ShouldEqual, color.Hex("#fedcba"))

				s, _ := fake.Style("NestshadeLevel2")
				So(s.Background.MustGet(), ShouldEqual, color.Hex("#fedcba"))
			})
		})

		Convey("Reset forces a fresh definition", func() {
			r.Ensure(3, mo.Some[color.Hex]("#123456"))
			r.Reset()
			So(r.Len(), ShouldEqual, 0)
			So(r.Lookup(3).IsAbsent(), ShouldBeTrue)

			r.Ensure(3, mo.Some[color.Hex]("#123456"))
			So(fake.Defines, ShouldHaveLength, 2)
		})

		Convey("A refused definition is not cached", func() {
			fake.FailDefine = true
			So(r.Ensure(1, mo.Some[color.Hex]("#123456")).IsAbsent(), ShouldBeTrue)
			So(r.Len(), ShouldEqual, 0)

			fake.FailDefine = false
			So(r.Ensure(1, mo.Some[color.Hex]("#123456")).IsPresent(), ShouldBeTrue)
			So(fake.Defines, ShouldHaveLength, 2)
		})
	})
}
