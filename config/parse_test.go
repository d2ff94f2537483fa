package config

import (
	"testing"

	"github.com/nestshade/nestshade/key"
	. "github.com/smartystreets/goconvey/convey"
)

func TestLookup(t *testing.T) {
	Convey("Lookup", t, func() {
		Convey("Known keys return their field", func() {
			field, err := Lookup(key.HighlightPriority)
			So(err, ShouldBeNil)
			So(field.Value, ShouldEqual, 10)
		})

		Convey("Typos suggest the closest key", func() {
			_, err := Lookup("highlight.prority")
			So(err, ShouldHaveSameTypeAs, &UnknownKeyError{})
			So(err.(*UnknownKeyError).Closest, ShouldEqual, key.HighlightPriority)
		})
	})
}

func TestKeys(t *testing.T) {
	Convey("Keys", t, func() {
		So(Keys(""), ShouldHaveLength, len(Default))
		So(Keys("rgnopn"), ShouldResemble, []string{key.RegionOpen})
	})
}

func TestParse(t *testing.T) {
	Convey("Parse", t, func() {
		Convey("Values take the type of the default", func() {
			v, err := Parse(key.HighlightPriority, []string{"20"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 20)

			v, err = Parse(key.GenerationLightnessStep, []string{"0.08"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, 0.08)

			v, err = Parse(key.HighlightEnableColors, []string{"false"})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, false)

			v, err = Parse(key.RegionOpen, []string{"("})
			So(err, ShouldBeNil)
			So(v, ShouldEqual, "(")
		})

		Convey("Lists accept separate and comma-separated values", func() {
			v, err := Parse(key.HighlightColors, []string{"#111111, #222222", "#333333"})
			So(err, ShouldBeNil)
			So(v, ShouldResemble, []string{"#111111", "#222222", "#333333"})
		})

		Convey("Malformed and out of range values are rejected", func() {
			_, err := Parse(key.HighlightPriority, []string{"high"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.GenerationMaxLightness, []string{"1.5"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.HighlightColors, []string{"#12"})
			So(err, ShouldNotBeNil)

			_, err = Parse(key.HighlightPriority, nil)
			So(err, ShouldNotBeNil)
		})
	})
}
