package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/config"
	"github.com/nestshade/nestshade/filesystem"
	"github.com/nestshade/nestshade/highlight"
	"github.com/nestshade/nestshade/painter"
	"github.com/nestshade/nestshade/region"
	"github.com/nestshade/nestshade/tui"
	"github.com/nestshade/nestshade/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(previewCmd)

	addThemeFlags(previewCmd)
	previewCmd.Flags().BoolP("interactive", "i", false, "Open the interactive previewer")
	previewCmd.Flags().IntP("width", "w", 0, "Render width; 0 uses the terminal width")
	previewCmd.Flags().Bool("no-colors", false, "Disable region backgrounds")

	previewCmd.SetOut(os.Stdout)
}

// previewCmd paints the regions of a file and prints the result.
var previewCmd = &cobra.Command{
	Use:   "preview FILE",
	Short: "Paint the nested regions of a file and print it",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		data, err := filesystem.API().ReadFile(args[0])
		handleErr(err)
		lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")

		dark, background, err := themeFromFlags(cmd)
		handleErr(err)

		options := config.Highlight()
		if lo.Must(cmd.Flags().GetBool("no-colors")) {
			options.Policy.Enabled = false
		}

		if lo.Must(cmd.Flags().GetBool("interactive")) {
			themes := [2]color.Hex{darkTheme, lightTheme}
			if bg, ok := background.Get(); ok {
				themes[lo.Ternary(dark, 0, 1)] = bg
			}

			handleErr(tui.Run(&tui.Options{
				Title:      filepath.Base(args[0]),
				Lines:      lines,
				Highlight:  options,
				Delimiters: config.Delimiters(),
				Dark:       dark,
				Themes:     themes,
			}))
			return
		}

		width := lo.Must(cmd.Flags().GetInt("width"))
		if width <= 0 {
			if w, _, err := util.TerminalSize(); err == nil {
				width = w
			}
		}

		editor := newEditor(dark, background)
		buf := editor.OpenBuffer(lines)
		regions := region.Scan(lines, config.Delimiters())

		hl := highlight.New(editor, options)
		hl.PaintRegions(buf, regions)

		cmd.Println(editor.Render(buf, width))
		for _, warning := range editor.Warnings() {
			cmd.PrintErrln(warning)
		}
		interiors := lo.CountBy(regions, func(r region.Region) bool {
			_, _, ok := painter.Interior(r.Start, r.End)
			return ok
		})
		cmd.PrintErrln(fmt.Sprintf("%s, %s painted",
			util.Quantify(len(regions), "region", "regions"),
			util.Quantify(interiors, "interior", "interiors"),
		))
	},
}
