package main

import (
	"fmt"
	"hash/crc32"
	"io"
	"math/rand"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/jewel-legend/internal/console"
	"github.com/vovakirdan/jewel-legend/internal/games/jewel"
	"github.com/vovakirdan/jewel-legend/internal/input"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
	"github.com/vovakirdan/jewel-legend/internal/storage"
)

var (
	flagTicks  int
	flagEvery  int
	flagNoise  float64
	flagExpect string
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Run the console headless with a random keypad",
	Long: `Drives the whole pipeline without a display: a seeded random keypad
sends a key every --every ticks through the serial frame decoder, the
debouncer and the game engine. Start and reset are pressed whenever the
console is not playing. Waits are skipped. --seed seeds both the keypad
and every game. Keypad '-' shuffles only with keyboard.shuffle set.

--noise corrupts that fraction of frames by flipping one bit, exercising
the decoder's discard and parity counters.

The run ends with a CRC32 digest of the final board; --expect fails the
command when it differs, which makes runs usable as regression checks.

Examples:
  jewel simulate
  jewel simulate --seed 7 --ticks 40000 --every 15
  jewel simulate --seed 7 --expect 1a2b3c4d`,
	Args: cobra.NoArgs,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagTicks, "ticks", 20000, "Number of 10 ms pulses to run")
	simulateCmd.Flags().IntVar(&flagEvery, "every", 20, "Ticks between key presses")
	simulateCmd.Flags().Float64Var(&flagNoise, "noise", 0, "Fraction of frames with a flipped bit (0..1)")
	simulateCmd.Flags().StringVar(&flagExpect, "expect", "", "Expected board digest (hex)")
}

// simParams configures one headless run.
type simParams struct {
	Seed    int64
	Ticks   int
	Every   int
	Noise   float64
	Queue   int
	Shuffle bool // keypad '-' shuffles the board
}

// simResult is the outcome of a headless run.
type simResult struct {
	Snapshot jewel.Snapshot
	Stats    console.Stats
	Results  []storage.ScoreEntry
	Digest   uint32
}

func runSimulate(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	res, err := simulate(simParams{
		Seed:    flagSeed,
		Ticks:   flagTicks,
		Every:   flagEvery,
		Noise:   flagNoise,
		Queue:   cfg.Keyboard.Queue,
		Shuffle: cfg.Keyboard.Shuffle,
	}, logger)
	if err != nil {
		return err
	}

	printSimResult(cmd.OutOrStdout(), res)

	if flagExpect != "" {
		want := strings.ToLower(strings.TrimPrefix(flagExpect, "0x"))
		if got := fmt.Sprintf("%08x", res.Digest); got != want {
			return fmt.Errorf("simulate: digest %s, expected %s", got, want)
		}
	}
	return nil
}

// simulate runs the console synchronously. The same parameters always
// produce the same result.
func simulate(p simParams, logger *log.Logger) (simResult, error) {
	if p.Ticks < 0 {
		return simResult{}, fmt.Errorf("simulate: ticks must not be negative, got %d", p.Ticks)
	}
	if p.Every < 1 {
		return simResult{}, fmt.Errorf("simulate: every must be at least 1, got %d", p.Every)
	}
	if p.Noise < 0 || p.Noise > 1 {
		return simResult{}, fmt.Errorf("simulate: noise must be within 0..1, got %g", p.Noise)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := []console.Option{
		console.WithSeed(p.Seed),
		console.WithLogger(logger.WithPrefix("console")),
		console.WithEngine(jewel.WithLogger(logger.WithPrefix("engine"))),
	}
	if p.Queue > 0 {
		opts = append(opts, console.WithKeyboard(ps2.WithQueueSize(p.Queue)))
	}
	if p.Shuffle {
		opts = append(opts, console.WithKeyTable(input.DefaultKeyTable().WithShuffle()))
	}
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("session scoreboard unavailable", "err", err)
	} else {
		opts = append(opts, console.WithStore(store))
	}

	c := console.New(opts...)
	defer c.Close()

	rng := rand.New(rand.NewSource(p.Seed))
	keys := ps2.AllKeys()

	for tick := 0; tick < p.Ticks; tick++ {
		if tick%p.Every == 0 {
			switch c.Snapshot().Phase {
			case jewel.PhaseMenu, jewel.PhaseInstructions:
				c.PressStart()
			case jewel.PhaseGameOver:
				c.PressReset()
			case jewel.PhasePlaying:
				k := keys[rng.Intn(len(keys))]
				if p.Noise > 0 && rng.Float64() < p.Noise {
					f := ps2.Encode(k.Code())
					f[rng.Intn(ps2.FrameBits)] ^= 1
					c.Transmit(f)
				} else {
					c.PressKey(k)
					c.Flush()
				}
			}
		}
		c.Pulse()
		c.Step()
	}

	snap := c.Snapshot()
	results, err := c.Results(console.FrameResults)
	if err != nil {
		logger.Warn("failed to load results", "err", err)
	}
	return simResult{
		Snapshot: snap,
		Stats:    c.Stats(),
		Results:  results,
		Digest:   crc32.ChecksumIEEE(snap.Grid.Bytes()),
	}, nil
}

func printSimResult(w io.Writer, r simResult) {
	s := r.Snapshot
	fmt.Fprintf(w, "phase:     %s\n", s.Phase)
	fmt.Fprintf(w, "score:     %d\n", s.Score)
	fmt.Fprintf(w, "timer:     %s\n", jewel.FormatTimer(s.Timer))
	fmt.Fprintf(w, "best:      %d\n", s.Best)
	fmt.Fprintf(w, "games:     %d\n", r.Stats.Games)
	fmt.Fprintf(w, "pulses:    %d\n", r.Stats.Pulses)
	fmt.Fprintf(w, "keys:      sent %d, dropped %d, accepted %d, queued %d, held %#02x\n",
		r.Stats.Sent, r.Stats.Dropped, r.Stats.Events, r.Stats.Queued, r.Stats.Held)
	fmt.Fprintf(w, "frames:    %d decoded, %d discarded, %d parity errors\n",
		r.Stats.Decoder.Frames, r.Stats.Decoder.Discarded, r.Stats.Decoder.ParityMismatch)

	if len(r.Results) > 0 {
		fmt.Fprintln(w, "results:")
		for i, e := range r.Results {
			fmt.Fprintf(w, "  #%d  %6d  seed %d\n", i+1, e.Score, e.Seed)
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.Grid.String())
	fmt.Fprintln(w)
	fmt.Fprintf(w, "digest:    %08x\n", r.Digest)
}
