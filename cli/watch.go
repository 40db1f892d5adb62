package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evtap/evtap/commands"
	"github.com/evtap/evtap/config"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Print per-frame finger counts without dispatching commands",
	Long:  `Reads the touch device and logs how many fingers are down whenever the count changes. Useful for checking a device before writing rules.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd, false)
		if err != nil {
			return err
		}

		response := commands.WatchCommand(commands.WatchRequest{
			DevicePath: settings.Device,
			Grab:       settings.Grab,
		})
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().StringVar(&devicePath, "device", config.DefaultDevice, "touch input device to watch")
	watchCmd.Flags().StringVar(&settingsPath, "settings", "", "path to an optional INI settings file")
	watchCmd.Flags().BoolVar(&grabDevice, "grab", false, "grab the device for exclusive access")
}
