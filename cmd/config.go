package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/nestshade/nestshade/color"
	"github.com/nestshade/nestshade/config"
	"github.com/nestshade/nestshade/filesystem"
	"github.com/nestshade/nestshade/icon"
	"github.com/nestshade/nestshade/style"
	"github.com/nestshade/nestshade/where"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func completionConfigKeys(_ *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys(toComplete), cobra.ShellCompDirectiveNoFileComp
}

// lookupField exits with a suggestion when k is unknown.
func lookupField(k string) config.Field {
	field, err := config.Lookup(k)
	if e, ok := err.(*config.UnknownKeyError); ok {
		handleErr(fmt.Errorf(
			"unknown key %s, did you mean %s?",
			style.Fg(color.Red)(e.Key),
			style.Fg(color.Yellow)(e.Closest),
		))
	}
	return field
}

func printDone(format string, args ...any) {
	fmt.Printf("%s %s\n", style.Fg(color.Green)(icon.Get(icon.Success)), fmt.Sprintf(format, args...))
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInfoCmd, configGetCmd, configSetCmd, configResetCmd, configDeleteCmd)

	configInfoCmd.Flags().BoolP("json", "j", false, "Format the output as JSON")
	configInfoCmd.SetOut(os.Stdout)

	configResetCmd.Flags().BoolP("all", "a", false, "Restore every key to its default")
	configDeleteCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// configCmd groups the highlighting configuration commands.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and change highlighting settings",
}

// configInfoCmd describes configuration keys, all of them when none are given.
var configInfoCmd = &cobra.Command{
	Use:               "info [key...]",
	Short:             "Describe configuration keys",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		fields := lo.Values(config.Default)
		if len(args) > 0 {
			fields = lo.Map(args, func(k string, _ int) config.Field { return lookupField(k) })
		}

		sort.Slice(fields, func(i, j int) bool {
			return fields[i].Key < fields[j].Key
		})

		if lo.Must(cmd.Flags().GetBool("json")) {
			lo.Must0(json.NewEncoder(cmd.OutOrStdout()).Encode(fields))
			return
		}

		for i, field := range fields {
			if i > 0 {
				cmd.Println()
			}
			cmd.Println(field.Pretty())
		}
	},
}

// configGetCmd prints the effective value of a key.
var configGetCmd = &cobra.Command{
	Use:               "get KEY",
	Short:             "Print the effective value of a key",
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		lookupField(args[0])
		fmt.Println(viper.Get(args[0]))
	},
}

// configSetCmd stores a validated value in the config file.
var configSetCmd = &cobra.Command{
	Use:   "set KEY VALUE...",
	Short: "Store a value; lists take several values or a comma-separated one",
	Example: "  nestshade config set highlight.colors '#1e1e2e,#313244'\n" +
		"  nestshade config set highlight.generation.lightness_step 0.08",
	Args:              cobra.MinimumNArgs(2),
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		lookupField(args[0])

		v, err := config.Parse(args[0], args[1:])
		handleErr(err)

		viper.Set(args[0], v)
		handleErr(config.Save())

		printDone("set %s to %s", style.Fg(color.Purple)(args[0]), style.Fg(color.Yellow)(fmt.Sprint(v)))
	},
}

// configResetCmd restores keys to their defaults.
var configResetCmd = &cobra.Command{
	Use:               "reset [key...]",
	Short:             "Restore keys to their defaults",
	ValidArgsFunction: completionConfigKeys,
	Run: func(cmd *cobra.Command, args []string) {
		all := lo.Must(cmd.Flags().GetBool("all"))
		if all == (len(args) > 0) {
			handleErr(fmt.Errorf("give either keys or --all"))
		}

		keys := args
		if all {
			keys = lo.Keys(config.Default)
		}

		for _, k := range keys {
			viper.Set(k, lookupField(k).Value)
		}
		handleErr(config.Save())

		if all {
			printDone("reset all config values")
			return
		}
		printDone("reset %s", style.Fg(color.Purple)(fmt.Sprint(keys)))
	},
}

// configDeleteCmd removes the config file.
var configDeleteCmd = &cobra.Command{
	Use:     "delete",
	Short:   "Remove the config file",
	Aliases: []string{"remove"},
	Run: func(cmd *cobra.Command, args []string) {
		if !confirm(cmd, fmt.Sprintf("Delete %s?", where.ConfigFile())) {
			return
		}

		handleErr(filesystem.API().Remove(where.ConfigFile()))
		printDone("deleted config")
	},
}
