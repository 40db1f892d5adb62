package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evtap/evtap/config"
)

var (
	verbose bool

	// run/watch/fire/server commands
	devicePath   string
	rulesPath    string
	settingsPath string
	grabDevice   bool
	cooldown     int
)

// resolveSettings merges the optional settings file with command-line flags;
// flags win over file values, which win over defaults.
func resolveSettings(cmd *cobra.Command, requireRules bool) (config.Settings, error) {
	settings := config.DefaultSettings()

	if settingsPath != "" {
		loaded, err := config.LoadSettings(settingsPath)
		if err != nil {
			return settings, err
		}
		settings = loaded
	}

	if cmd.Flags().Changed("device") {
		settings.Device = devicePath
	}
	if cmd.Flags().Changed("rules") {
		settings.RulesPath = rulesPath
	}
	if cmd.Flags().Changed("grab") {
		settings.Grab = grabDevice
	}
	if cmd.Flags().Changed("cooldown") {
		settings.CooldownFrames = cooldown
	}

	if requireRules && settings.RulesPath == "" {
		return settings, fmt.Errorf("a rules file is required (--rules or 'rules' in the settings file)")
	}

	return settings, nil
}
