package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/nestshade/nestshade/icon"
	"github.com/nestshade/nestshade/util"
	"github.com/nestshade/nestshade/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget is a location the clear command can wipe.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

var clearTargets = []clearTarget{
	{"logs directory", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if short, ok := target.argShort.Get(); ok {
			clearCmd.Flags().BoolP(target.argLong, short, false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("yes", "y", false, "Do not ask for confirmation")
}

// clearCmd removes files written by nestshade.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove files written by nestshade",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		for _, target := range clearTargets {
			if !lo.Must(cmd.Flags().GetBool(target.argLong)) {
				continue
			}
			anyCleared = true

			if !confirm(cmd, fmt.Sprintf("Remove the %s?", target.name)) {
				continue
			}

			handleErr(util.Delete(target.location()))
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}

// confirm asks the user unless --yes was given.
func confirm(cmd *cobra.Command, message string) bool {
	if yes, err := cmd.Flags().GetBool("yes"); err == nil && yes {
		return true
	}

	var response bool
	handleErr(survey.AskOne(&survey.Confirm{Message: message, Default: false}, &response))
	return response
}
