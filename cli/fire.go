package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/evtap/evtap/commands"
)

var fireCmd = &cobra.Command{
	Use:   "fire [fingers]",
	Short: "Manually dispatch the command of a configured tap rule",
	Long:  `Loads the rules file and runs the command of the tap rule matching the given finger count, exactly as the gesture engine would.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fingers, err := strconv.Atoi(args[0])
		if err != nil {
			response := commands.NewErrorResponse(fmt.Errorf("invalid finger count %q, expected an integer", args[0]))
			printJson(response)
			return fmt.Errorf("%s", response.Error)
		}

		settings, err := resolveSettings(cmd, true)
		if err != nil {
			return err
		}

		response := commands.FireCommand(commands.FireRequest{
			RulesPath: settings.RulesPath,
			Fingers:   fingers,
		})
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(fireCmd)

	fireCmd.Flags().StringVar(&rulesPath, "rules", "", "path to the gesture rules file")
	fireCmd.Flags().StringVar(&settingsPath, "settings", "", "path to an optional INI settings file")
}
