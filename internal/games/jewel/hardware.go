package jewel

import "time"

// Buzzer is the console's binary tone output.
type Buzzer interface {
	On()
	Off()
}

// Pacer performs the deliberate waits of the game: tone lengths, the swap
// preview and the pause between settle frames.
type Pacer interface {
	Wait(d time.Duration)
}

// NopBuzzer is a silent Buzzer.
type NopBuzzer struct{}

func (NopBuzzer) On()  {}
func (NopBuzzer) Off() {}

// NopPacer returns immediately.
type NopPacer struct{}

func (NopPacer) Wait(time.Duration) {}

// SleepPacer blocks the calling goroutine for the requested duration.
type SleepPacer struct{}

func (SleepPacer) Wait(d time.Duration) {
	if d > 0 {
		time.Sleep(d)
	}
}

// Timing holds the pacing durations.
type Timing struct {
	ToneShort   time.Duration // select and activate
	ToneLong    time.Duration // successful swap
	SwapPreview time.Duration // swapped pair shown before the match check
	SettleFrame time.Duration // pause after each refill round
}

// DefaultTiming returns the console's pacing.
func DefaultTiming() Timing {
	return Timing{
		ToneShort:   40 * time.Millisecond,
		ToneLong:    120 * time.Millisecond,
		SwapPreview: 200 * time.Millisecond,
		SettleFrame: 240 * time.Millisecond,
	}
}
