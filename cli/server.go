package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evtap/evtap/commands"
	"github.com/evtap/evtap/config"
	"github.com/evtap/evtap/daemon"
	"github.com/evtap/evtap/gesture"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Server management commands",
	Long:  `Commands for managing the evtap status server.`,
}

var serverStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Run the gesture loop with a JSON-RPC status server",
	Long:  `Runs the gesture loop and serves status, rules and fired-gesture events over JSON-RPC and WebSocket.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := resolveSettings(cmd, true)
		if err != nil {
			return err
		}

		// GetBool/GetString cannot fail for defined flags
		listenAddr, _ := cmd.Flags().GetString("listen")
		if listenAddr == "" {
			listenAddr = settings.Listen
		}
		enableCORS, _ := cmd.Flags().GetBool("cors")
		isDaemon, _ := cmd.Flags().GetBool("daemon")

		if isDaemon && !daemon.IsChild() {
			_, err := daemon.Daemonize()
			if err != nil {
				return fmt.Errorf("failed to start daemon: %w", err)
			}

			fmt.Printf("Server daemon spawned, attempting to listen on %s\n", listenAddr)
			return nil
		}

		return commands.ServeCommand(commands.ServeRequest{
			RunRequest: commands.RunRequest{
				DevicePath:     settings.Device,
				RulesPath:      settings.RulesPath,
				Grab:           settings.Grab,
				CooldownFrames: settings.CooldownFrames,
			},
			Listen:     listenAddr,
			EnableCORS: enableCORS,
		})
	},
}

var serverKillCmd = &cobra.Command{
	Use:   "kill",
	Short: "Stop the daemonized evtap server",
	Long:  `Connects to the server and sends a shutdown command via JSON-RPC.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// GetString cannot fail for defined flags
		addr, _ := cmd.Flags().GetString("listen")
		if addr == "" {
			addr = config.DefaultListen
		}

		err := daemon.KillServer(addr)
		if err != nil {
			return err
		}

		fmt.Printf("Server shutdown command sent successfully\n")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serverCmd)

	// add server subcommands
	serverCmd.AddCommand(serverStartCmd)
	serverCmd.AddCommand(serverKillCmd)

	// server start flags
	serverStartCmd.Flags().StringVar(&devicePath, "device", config.DefaultDevice, "touch input device to watch")
	serverStartCmd.Flags().StringVar(&rulesPath, "rules", "", "path to the gesture rules file")
	serverStartCmd.Flags().StringVar(&settingsPath, "settings", "", "path to an optional INI settings file")
	serverStartCmd.Flags().BoolVar(&grabDevice, "grab", false, "grab the device for exclusive access")
	serverStartCmd.Flags().IntVar(&cooldown, "cooldown", gesture.DefaultCooldownFrames, "cooldown frames between fires for the same finger count")
	serverStartCmd.Flags().String("listen", "", "Address to listen on (e.g., 'localhost:12000' or '0.0.0.0:13000')")
	serverStartCmd.Flags().Bool("cors", false, "Enable CORS support")
	serverStartCmd.Flags().BoolP("daemon", "d", false, "Run server in daemon mode (background)")

	// server kill flags
	serverKillCmd.Flags().String("listen", "", fmt.Sprintf("Address of server to kill (default: %s)", config.DefaultListen))
}
