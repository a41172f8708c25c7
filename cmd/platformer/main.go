// platformer is a terminal platformer built on a behavior runtime.
//
// Usage:
//
//	platformer play          - Play the level in the terminal
//	platformer simulate      - Run the level headless from an input script
//	platformer serve         - Start SSH server for remote play
//	platformer runs          - Show logged runs
//	platformer behaviors     - List the behavior kinds a level can use
//	platformer config        - Print the default level config
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--config <path>      - Custom level YAML
//	--db <path>          - Set database path (default: ~/.platformer/runs.db)
//	--log-level <level>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagConfig   string
	flagDBPath   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "TUI Platformer - Run, jump and dash in your terminal",
	Long: `TUI Platformer drives a small side-scrolling level with the same
behavior scripts a game engine would run: a character controller, player
input, an aiming arm, a reticle, a sprite flipper and a camera zoom.

Available commands:
  play       - Play the level in the terminal
  simulate   - Run the level headless from an input script
  serve      - Start SSH server for remote play
  runs       - Show logged runs
  behaviors  - List behavior kinds
  config     - Print the default level config

Examples:
  platformer play
  platformer play --config ./my-level.yaml
  platformer simulate --input "D:30,Space,-:60"
  platformer serve --ssh :2222
  platformer runs --board`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom level YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to run log database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(runsCmd)
	rootCmd.AddCommand(behaviorsCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           level,
		ReportTimestamp: true,
		Prefix:          "platformer",
	}), nil
}
