package config

import (
	_ "embed"
)

//go:embed defaults/jewel.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Tick: TickConfig{
			PeriodMS: 10,
		},
		Timing: TimingConfig{
			ToneShortMS:   40,
			ToneLongMS:    120,
			SwapPreviewMS: 200,
			SettleFrameMS: 240,
		},
		Keyboard: KeyboardConfig{
			BitDelayUS: 0,
			Queue:      16,
		},
		Keys: KeysConfig{
			Keypad: map[string][]string{
				"kp8": {"up", "k", "8"},
				"kp2": {"down", "j", "2"},
				"kp4": {"left", "h", "4"},
				"kp6": {"right", "l", "6"},
				"kp5": {"enter", " ", "5"},
				"kp-": {"-", "s"},
			},
			Start: []string{"1", "f1"},
			Reset: []string{"r", "f2"},
			Quit:  []string{"q", "ctrl+c", "esc"},
		},
		Display: DisplayConfig{
			Frontend: "tui",
			Scale:    2,
		},
		Audio: AudioConfig{
			Bell:      false,
			Volume:    0.2,
			Frequency: 880,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}
