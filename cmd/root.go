// Package cmd implements the nestshade command-line interface.
package cmd

import (
	"fmt"
	"os"
	"strings"

	cc "github.com/ivanpirog/coloredcobra"
	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/constant"
	"github.com/nestshade/nestshade/icon"
	"github.com/nestshade/nestshade/key"
	"github.com/nestshade/nestshade/log"
	"github.com/nestshade/nestshade/style"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().StringSliceP("colors", "C", []string{}, "Explicit level palette, overriding the configured one")
	lo.Must0(viper.BindPFlag(key.HighlightColors, rootCmd.PersistentFlags().Lookup("colors")))

	rootCmd.PersistentFlags().Float64("step", 0.05, "Lightness step per nesting level for generated colors")
	lo.Must0(viper.BindPFlag(key.GenerationLightnessStep, rootCmd.PersistentFlags().Lookup("step")))
}

// rootCmd shows help unless asked for the version.
var rootCmd = &cobra.Command{
	Use:   constant.Nestshade,
	Short: "Theme-aware backgrounds for nested code regions",
	Long: style.Title(constant.Nestshade) + "\n" +
		style.New().Italic(true).Foreground(color.HiPurple).Render("    Theme-aware backgrounds for nested code regions"),
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		handleErr(cmd.Help())
	},
}

// Execute routes to the requested subcommand.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		os.Exit(1)
	}
}
