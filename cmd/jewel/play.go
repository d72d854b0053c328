package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jewel-legend/internal/console"
	"github.com/vovakirdan/jewel-legend/internal/games/jewel"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
	"github.com/vovakirdan/jewel-legend/internal/registry"
	"github.com/vovakirdan/jewel-legend/internal/storage"
)

var flagFrontend string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play Jewel Legend",
	Long: `Start the console on a front-end.

Controls (default bindings):
  8/Up/K, 2/Down/J, 4/Left/H, 6/Right/L - Move the cursor or pick a swap neighbour
  5/Enter/Space                          - Select, swap, fire a special tile
  -/S                                    - Shuffle the board (keyboard.shuffle)
  1/F1                                   - Start button
  R/F2                                   - Reset button
  Q/Esc                                  - Quit

The window front-end also reads the numeric keypad and saves a PNG
screenshot on F12; the terminal saves a text screenshot on Ctrl+S.

Examples:
  jewel play
  jewel play --frontend window
  jewel play --seed 42 --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFrontend, "frontend", "", "Front-end: tui or window (default: display.frontend)")
}

func runPlay(cmd *cobra.Command, _ []string) error {
	id := flagFrontend
	if id == "" {
		id = cfg.Display.Frontend
	}

	fe, err := registry.Create(id)
	if err != nil {
		if errors.Is(err, registry.ErrUnknownFrontend) {
			return fmt.Errorf("%w (run 'jewel frontends' to list them)", err)
		}
		return err
	}

	// The terminal front-end owns the screen: without log.file, logs are discarded.
	var fallback io.Writer = os.Stderr
	if id == "tui" {
		fallback = nil
	}
	logger, err := newLogger(fallback)
	if err != nil {
		return err
	}

	opts := consoleOptions(cmd, logger)
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("session scoreboard unavailable", "err", err)
	} else {
		opts = append(opts, console.WithStore(store))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting", "frontend", id)
	return fe.Run(ctx, registry.Env{
		Config:  cfg,
		Logger:  logger,
		Console: opts,
	})
}

// consoleOptions wires the configuration, the --seed flag and component
// loggers into console options.
func consoleOptions(cmd *cobra.Command, logger *log.Logger) []console.Option {
	opts := console.ConfigOptions(cfg)
	opts = append(opts,
		console.WithLogger(logger.WithPrefix("console")),
		console.WithEngine(jewel.WithLogger(logger.WithPrefix("engine"))),
		console.WithKeyboard(ps2.WithLogger(logger.WithPrefix("keyboard"))),
	)
	if cmd.Flags().Changed("seed") {
		opts = append(opts, console.WithSeed(flagSeed))
	}
	return opts
}
