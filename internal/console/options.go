package console

import (
	"github.com/vovakirdan/jewel-legend/internal/config"
	"github.com/vovakirdan/jewel-legend/internal/games/jewel"
	"github.com/vovakirdan/jewel-legend/internal/input"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
)

// ConfigOptions turns the host configuration into console options: real
// pacing waits with the configured durations and the keypad settings.
func ConfigOptions(cfg config.Config) []Option {
	opts := []Option{
		WithEngine(
			jewel.WithPacer(jewel.SleepPacer{}),
			jewel.WithTiming(Timing(cfg.Timing)),
		),
		WithKeyboard(
			ps2.WithBitDelay(cfg.Keyboard.BitDelay()),
			ps2.WithQueueSize(cfg.Keyboard.Queue),
		),
	}
	if cfg.Keyboard.Shuffle {
		opts = append(opts, WithKeyTable(input.DefaultKeyTable().WithShuffle()))
	}
	return opts
}

// Timing converts the configured pacing to engine timing.
func Timing(t config.TimingConfig) jewel.Timing {
	return jewel.Timing{
		ToneShort:   t.ToneShort(),
		ToneLong:    t.ToneLong(),
		SwapPreview: t.SwapPreview(),
		SettleFrame: t.SettleFrame(),
	}
}
