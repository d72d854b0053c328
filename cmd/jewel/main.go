// jewel runs Jewel Legend, a match-3 handheld console, in the terminal or a
// desktop window.
//
// Usage:
//
//	jewel play                  - Play on the configured front-end
//	jewel simulate              - Run the console headless with a random keypad
//	jewel frontends             - List available front-ends
//	jewel config                - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Configuration file (default: ~/.jewel/config.yaml)
//	--seed <value>      - Fixed RNG seed for every game
//	--log-level <level> - Override log.level
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jewel-legend/internal/config"
	"github.com/vovakirdan/jewel-legend/internal/registry"

	// Import front-ends to register them
	_ "github.com/vovakirdan/jewel-legend/internal/platform/lcd"
	_ "github.com/vovakirdan/jewel-legend/internal/platform/tui"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

// Set by PersistentPreRunE.
var (
	cfg     config.Config
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "jewel",
	Short: "Jewel Legend - a match-3 handheld console",
	Long: `Jewel Legend simulates a small match-3 handheld: a 9x9 board of gems,
a numeric keypad wired through a serial keyboard protocol, a buzzer and a
three minute timer.

Available commands:
  play       - Play on the terminal or in a window
  simulate   - Run the console headless with a random keypad
  frontends  - Show all available front-ends
  config     - Print the effective configuration

Examples:
  jewel play
  jewel play --frontend window
  jewel simulate --ticks 20000 --seed 42
  jewel config > ~/.jewel/config.yaml`,
	SilenceUsage:      true,
	PersistentPreRunE: loadConfig,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "Fixed RNG seed for every game (default: free-running counter)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(frontendsCmd)
	rootCmd.AddCommand(configCmd)
}

func loadConfig(cmd *cobra.Command, _ []string) error {
	c, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		c.Log.Level = flagLogLevel
		if err := c.Validate(); err != nil {
			return err
		}
	}
	if !registry.Exists(c.Display.Frontend) {
		return fmt.Errorf("config: display.frontend: %w %q", registry.ErrUnknownFrontend, c.Display.Frontend)
	}
	cfg = c
	return nil
}

// newLogger builds the root logger. Logs go to log.file when set and to
// fallback otherwise; a nil fallback discards them.
func newLogger(fallback io.Writer) (*log.Logger, error) {
	w := fallback
	if cfg.Log.File != "" {
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, fmt.Errorf("log: open %s: %w", cfg.Log.File, err)
		}
		logFile = f
		w = f
	}
	if w == nil {
		w = io.Discard
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log: %w", err)
	}

	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "jewel",
		Level:           level,
	}), nil
}
