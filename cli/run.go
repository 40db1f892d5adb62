package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evtap/evtap/commands"
	"github.com/evtap/evtap/config"
	"github.com/evtap/evtap/daemon"
	"github.com/evtap/evtap/gesture"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch the touch device and dispatch configured gesture commands",
	Long:  `Reads raw multi-touch events from the device, detects configured N-finger taps and runs their commands. Runs until the event stream ends.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd, true)
		if err != nil {
			return err
		}

		// GetBool cannot fail for defined flags
		isDaemon, _ := cmd.Flags().GetBool("daemon")

		if isDaemon && !daemon.IsChild() {
			_, err := daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Printf("evtap daemon spawned, watching %s\n", settings.Device)
			return nil
		}

		response := commands.RunCommand(commands.RunRequest{
			DevicePath:     settings.Device,
			RulesPath:      settings.RulesPath,
			Grab:           settings.Grab,
			CooldownFrames: settings.CooldownFrames,
		})
		printJson(response)
		if response.Status == "error" {
			return fmt.Errorf("%s", response.Error)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVar(&devicePath, "device", config.DefaultDevice, "touch input device to watch")
	runCmd.Flags().StringVar(&rulesPath, "rules", "", "path to the gesture rules file")
	runCmd.Flags().StringVar(&settingsPath, "settings", "", "path to an optional INI settings file")
	runCmd.Flags().BoolVar(&grabDevice, "grab", false, "grab the device for exclusive access")
	runCmd.Flags().IntVar(&cooldown, "cooldown", gesture.DefaultCooldownFrames, "cooldown frames between fires for the same finger count")
	runCmd.Flags().BoolP("daemon", "d", false, "run in daemon mode (background)")
}
