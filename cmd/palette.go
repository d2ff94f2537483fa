package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/invopop/jsonschema"
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/config"
	"github.com/nestshade/nestshade/highlight"
	"github.com/nestshade/nestshade/registry"
	"github.com/nestshade/nestshade/style"
	"github.com/nestshade/nestshade/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

// LevelColor is one row of the palette output.
type LevelColor struct {
	Level int       `json:"level" jsonschema:"description=Nesting depth, starting at 1."`
	Color color.Hex `json:"color,omitempty" jsonschema:"description=Background color as #rrggbb. Absent when highlighting is disabled."`
	Style string    `json:"style" jsonschema:"description=Editor style name registered for the level."`
}

// PaletteOutput is the structured output of the palette command.
type PaletteOutput struct {
	Background color.Hex    `json:"background" jsonschema:"description=Resolved editor background the colors were derived from."`
	Generated  bool         `json:"generated" jsonschema:"description=True when colors were derived rather than taken from the configured palette."`
	Levels     []LevelColor `json:"levels"`
}

func init() {
	rootCmd.AddCommand(paletteCmd)

	addThemeFlags(paletteCmd)
	paletteCmd.Flags().IntP("levels", "n", 8, "Number of nesting levels to show")
	paletteCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")

	paletteCmd.SetOut(os.Stdout)
}

// paletteCmd lists the colors assigned to nesting levels.
var paletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "Show the background color of each nesting level",
	Run: func(cmd *cobra.Command, args []string) {
		dark, background, err := themeFromFlags(cmd)
		handleErr(err)

		levels := lo.Must(cmd.Flags().GetInt("levels"))
		if levels < 1 {
			handleErr(fmt.Errorf("levels must be positive, got %d", levels))
		}

		var (
			editor  = newEditor(dark, background)
			options = config.Highlight()
			hl      = highlight.New(editor, options)
			output  = PaletteOutput{
				Background: hl.Background(),
				Generated:  len(options.Policy.Palette) == 0,
			}
		)

		for level := 1; level <= levels; level++ {
			output.Levels = append(output.Levels, LevelColor{
				Level: level,
				Color: hl.ColorFor(level).OrEmpty(),
				Style: registry.Name(level),
			})
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			handleErr(json.NewEncoder(cmd.OutOrStdout()).Encode(output))
			return
		}

		nameWidth := util.Max(lo.Map(output.Levels, func(l LevelColor, _ int) int { return len(l.Style) })...)
		cmd.Printf("%s %s\n\n", style.Faint("background"), output.Background)
		for _, l := range output.Levels {
			swatch := style.Faint("disabled")
			if l.Color != "" {
				swatch = style.Swatch(l.Color, 6) + " " + string(l.Color)
			}
			cmd.Printf("%-*s  %s\n", nameWidth, l.Style, swatch)
		}
	},
}

func init() {
	paletteCmd.AddCommand(paletteSchemaCmd)
}

// paletteSchemaCmd prints the JSON schema of the palette output.
var paletteSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the palette output",
	Run: func(cmd *cobra.Command, args []string) {
		reflector := new(jsonschema.Reflector)
		reflector.Anonymous = true

		handleErr(json.NewEncoder(os.Stdout).Encode(reflector.Reflect(&PaletteOutput{})))
	},
}
