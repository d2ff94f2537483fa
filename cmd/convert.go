package cmd

import (
	"os"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/style"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(convertCmd)
	convertCmd.SetOut(os.Stdout)
}

// convertCmd shows the RGB and HSL decomposition of colors.
var convertCmd = &cobra.Command{
	Use:     "convert HEX...",
	Short:   "Show the RGB and HSL components of hex colors",
	Example: "nestshade convert '#1e1e2e' cdd6f4",
	Args:    cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, arg := range args {
			rgb, err := color.HexToRGB(arg)
			handleErr(err)

			hex := color.RGBToHex(rgb)
			hsl := color.RGBToHSL(rgb)

			cmd.Printf("%s %s\n", style.Swatch(hex, 4), style.Bold(string(hex)))
			cmd.Printf("  %s  %.0f %.0f %.0f\n", style.Faint("rgb"), rgb.R*255, rgb.G*255, rgb.B*255)
			cmd.Printf("  %s  %.1f° %.1f%% %.1f%%\n", style.Faint("hsl"), hsl.H*360, hsl.S*100, hsl.L*100)
		}
	},
}
