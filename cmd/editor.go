package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/host"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// Themes used when no background is given explicitly.
var (
	darkTheme  color.Hex = "#1e1e2e"
	lightTheme color.Hex = "#eff1f5"
)

func addThemeFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("theme", "t", "auto", "Editor theme: dark, light or auto (detect from the terminal)")
	_ = cmd.RegisterFlagCompletionFunc("theme", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return []string{"auto", "dark", "light"}, cobra.ShellCompDirectiveNoFileComp
	})
	cmd.Flags().StringP("background", "b", "", "Editor background color; leave empty to fall back to the theme default")
}

// themeFromFlags reports whether the dark theme is requested and the explicit background, if any.
func themeFromFlags(cmd *cobra.Command) (dark bool, background mo.Option[color.Hex], err error) {
	theme, _ := cmd.Flags().GetString("theme")
	switch theme {
	case "dark":
		dark = true
	case "light":
		dark = false
	case "auto", "":
		dark = lipgloss.HasDarkBackground()
	default:
		return false, background, fmt.Errorf("unknown theme %q", theme)
	}

	raw, _ := cmd.Flags().GetString("background")
	if raw == "" {
		return dark, mo.None[color.Hex](), nil
	}

	bg, err := color.Normalize(raw)
	if err != nil {
		return false, background, err
	}

	return dark, mo.Some(bg), nil
}

// newEditor returns an in-memory editor themed like the user's.
func newEditor(dark bool, background mo.Option[color.Hex]) *host.Memory {
	editor := host.NewMemory(host.Light)
	if dark {
		editor.SetPreference(host.Dark)
	}

	editor.SetUserStyle(host.NormalStyle, background)
	return editor
}
