package cmd

import (
	"testing"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/host"
	. "github.com/smartystreets/goconvey/convey"
	"github.com/spf13/cobra"
)

func themedCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	addThemeFlags(cmd)
	So(cmd.Flags().Parse(args), ShouldBeNil)
	return cmd
}

func TestThemeFromFlags(t *testing.T) {
	Convey("Theme flags", t, func() {
		Convey("An explicit dark theme without background", func() {
			dark, bg, err := themeFromFlags(themedCommand("--theme", "dark"))
			So(err, ShouldBeNil)
			So(dark, ShouldBeTrue)
			So(bg.IsAbsent(), ShouldBeTrue)
		})

		Convey("A background is normalized", func() {
			dark, bg, err := themeFromFlags(themedCommand("-t", "light", "-b", "EFF1F5"))
			So(err, ShouldBeNil)
			So(dark, ShouldBeFalse)
			So(bg.MustGet(), ShouldEqual, color.Hex("#eff1f5"))
		})

		Convey("Unknown themes and malformed backgrounds are rejected", func() {
			_, _, err := themeFromFlags(themedCommand("--theme", "sepia"))
			So(err, ShouldNotBeNil)

			_, _, err = themeFromFlags(themedCommand("--theme", "dark", "--background", "#abc"))
			So(err, ShouldNotBeNil)
		})
	})
}

func TestNewEditor(t *testing.T) {
	Convey("Given no background", t, func() {
		_, bg, _ := themeFromFlags(themedCommand("--theme", "light"))
		editor := newEditor(false, bg)

		Convey("The editor reports the light preference and no Normal background", func() {
			So(editor.BackgroundPreference(), ShouldEqual, host.Light)
			s, _ := editor.Style(host.NormalStyle)
			So(s.Background.IsAbsent(), ShouldBeTrue)
		})
	})
}
