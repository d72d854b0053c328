// Package config provides YAML-based configuration loading for the console
// host: tick rate, pacing, the virtual keypad, key bindings, display, audio
// and logging. Game rules are fixed and not configurable.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jewel-legend/internal/ps2"
)

// Config is the complete host configuration.
type Config struct {
	Tick     TickConfig     `yaml:"tick"`
	Timing   TimingConfig   `yaml:"timing"`
	Keyboard KeyboardConfig `yaml:"keyboard"`
	Keys     KeysConfig     `yaml:"keys"`
	Display  DisplayConfig  `yaml:"display"`
	Audio    AudioConfig    `yaml:"audio"`
	Log      LogConfig      `yaml:"log"`
}

// TickConfig defines the periodic pulse.
type TickConfig struct {
	PeriodMS int `yaml:"period_ms"`
}

// TimingConfig defines the pacing waits, in milliseconds.
type TimingConfig struct {
	ToneShortMS   int `yaml:"tone_short_ms"`
	ToneLongMS    int `yaml:"tone_long_ms"`
	SwapPreviewMS int `yaml:"swap_preview_ms"`
	SettleFrameMS int `yaml:"settle_frame_ms"`
}

// KeyboardConfig defines the virtual keypad.
type KeyboardConfig struct {
	BitDelayUS int  `yaml:"bit_delay_us"` // delay between clock edges
	Queue      int  `yaml:"queue"`        // device buffer depth
	Shuffle    bool `yaml:"shuffle"`      // bind keypad '-' to the board shuffle
}

// KeysConfig binds terminal keys to keypad keys and console buttons.
type KeysConfig struct {
	Keypad map[string][]string `yaml:"keypad"` // keypad key name -> terminal keys
	Start  []string            `yaml:"start"`
	Reset  []string            `yaml:"reset"`
	Quit   []string            `yaml:"quit"`
}

// DisplayConfig selects the front-end.
type DisplayConfig struct {
	Frontend string `yaml:"frontend"` // "tui" or "window"
	Scale    int    `yaml:"scale"`    // window scale factor
}

// AudioConfig defines the buzzer output.
type AudioConfig struct {
	Bell      bool    `yaml:"bell"`      // ring the terminal bell on tones
	Volume    float64 `yaml:"volume"`    // 0..1, window front-end
	Frequency int     `yaml:"frequency"` // square wave frequency in Hz
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"` // empty discards logs in the terminal front-end
}

// TickPeriod returns the pulse period.
func (c Config) TickPeriod() time.Duration {
	return time.Duration(c.Tick.PeriodMS) * time.Millisecond
}

// BitDelay returns the delay between keypad clock edges.
func (c KeyboardConfig) BitDelay() time.Duration {
	return time.Duration(c.BitDelayUS) * time.Microsecond
}

// ToneShort returns the select/activate tone length.
func (c TimingConfig) ToneShort() time.Duration {
	return ms(c.ToneShortMS)
}

// ToneLong returns the successful swap tone length.
func (c TimingConfig) ToneLong() time.Duration {
	return ms(c.ToneLongMS)
}

// SwapPreview returns how long a swapped pair is shown before checking.
func (c TimingConfig) SwapPreview() time.Duration {
	return ms(c.SwapPreviewMS)
}

// SettleFrame returns the pause after each refill round.
func (c TimingConfig) SettleFrame() time.Duration {
	return ms(c.SettleFrameMS)
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

// Validate checks the configuration for values the host cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Tick.PeriodMS <= 0 {
		errs = append(errs, fmt.Errorf("tick.period_ms must be positive, got %d", c.Tick.PeriodMS))
	}
	for name, v := range map[string]int{
		"timing.tone_short_ms":   c.Timing.ToneShortMS,
		"timing.tone_long_ms":    c.Timing.ToneLongMS,
		"timing.swap_preview_ms": c.Timing.SwapPreviewMS,
		"timing.settle_frame_ms": c.Timing.SettleFrameMS,
		"keyboard.bit_delay_us":  c.Keyboard.BitDelayUS,
	} {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}
	if c.Keyboard.Queue < 1 {
		errs = append(errs, fmt.Errorf("keyboard.queue must be at least 1, got %d", c.Keyboard.Queue))
	}
	for name := range c.Keys.Keypad {
		if _, err := ps2.ParseKeypad(name); err != nil {
			errs = append(errs, fmt.Errorf("keys.keypad: %w", err))
		}
	}
	if c.Display.Scale < 1 {
		errs = append(errs, fmt.Errorf("display.scale must be at least 1, got %d", c.Display.Scale))
	}
	if c.Audio.Volume < 0 || c.Audio.Volume > 1 {
		errs = append(errs, fmt.Errorf("audio.volume must be within 0..1, got %g", c.Audio.Volume))
	}
	if c.Audio.Frequency <= 0 {
		errs = append(errs, fmt.Errorf("audio.frequency must be positive, got %d", c.Audio.Frequency))
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
