package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evtap/evtap/commands"
)

var rulesCmd = &cobra.Command{
	Use:   "rules [file]",
	Short: "Parse a gesture rules file and print the loaded rules",
	Long:  `Validates a rules file and prints the rules it would load, so configuration mistakes show up before deploying.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		response := commands.RulesCommand(args[0])
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}
