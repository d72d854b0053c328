package console

import (
	"context"
	"errors"
	"time"

	"github.com/vovakirdan/jewel-legend/internal/games/jewel"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
	"github.com/vovakirdan/jewel-legend/internal/storage"
)

// Command is a request from a front-end to the console loop.
type Command int

const (
	CmdPulse Command = iota
	CmdStart
	CmdReset
)

func (c Command) String() string {
	switch c {
	case CmdPulse:
		return "pulse"
	case CmdStart:
		return "start"
	case CmdReset:
		return "reset"
	default:
		return "unknown"
	}
}

// PendingCommands bounds how many pulses and presses may queue up between
// two passes of the loop.
const PendingCommands = 64

// FrameResults is how many finished games a Frame carries.
const FrameResults = 5

// Frame is what a front-end draws.
type Frame struct {
	Snapshot jewel.Snapshot
	Results  []storage.ScoreEntry // best games of the session, loaded on Game Over
	Stats    Stats
}

// Loop runs a console on its own goroutine: the main loop of the
// handheld. Front-ends post pulses and button presses from their UI
// thread and receive frames through publish. publish is also called
// before every engine wait, so swap previews and settle steps are drawn.
//
// While the engine waits, pulses keep running the game clock and the
// cooldown; button presses are held until the engine returns.
type Loop struct {
	console *Console
	cmds    chan Command
	held    []Command
	publish func(Frame)

	games   int
	results []storage.ScoreEntry
}

// NewLoop builds a console from opts and wraps it in a loop.
func NewLoop(publish func(Frame), opts ...Option) *Loop {
	l := &Loop{
		cmds:    make(chan Command, PendingCommands),
		publish: publish,
	}
	opts = append(opts, WithEngine(jewel.WithPacer(framePacer{l: l})))
	l.console = New(opts...)
	return l
}

// Console returns the wrapped console. It must not be used while Run is
// active.
func (l *Loop) Console() *Console {
	return l.console
}

// Post queues c without blocking. It reports false when the queue is full.
func (l *Loop) Post(c Command) bool {
	select {
	case l.cmds <- c:
		return true
	default:
		return false
	}
}

// PressKey queues a keypad key. Safe from any goroutine.
func (l *Loop) PressKey(k ps2.Keypad) bool {
	return l.console.PressKey(k)
}

// Run transmits keypad frames and executes commands until ctx is
// cancelled.
func (l *Loop) Run(ctx context.Context) error {
	kbDone := make(chan error, 1)
	go func() {
		kbDone <- l.console.Run(ctx)
	}()

	l.Publish()
	for {
		if len(l.held) > 0 {
			c := l.held[0]
			l.held = l.held[1:]
			l.Exec(c)
			continue
		}
		select {
		case <-ctx.Done():
			err := <-kbDone
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		case c := <-l.cmds:
			l.Exec(c)
		}
	}
}

// Exec runs one command on the calling goroutine and publishes a frame.
func (l *Loop) Exec(c Command) {
	switch c {
	case CmdPulse:
		l.console.Pulse()
		if ev, ok := l.console.Step(); ok {
			l.console.logger.Debug("key", "code", ev.Code, "action", ev.Action)
		}
	case CmdStart:
		l.console.PressStart()
	case CmdReset:
		l.console.PressReset()
	}
	l.Publish()
}

// Publish sends the current state. Results are loaded once per recorded
// game.
func (l *Loop) Publish() {
	st := l.console.Stats()
	if st.Games != l.games {
		res, err := l.console.Results(FrameResults)
		if err != nil {
			l.console.logger.Warn("failed to load results", "err", err)
		}
		l.results = res
		l.games = st.Games
	}
	l.publish(Frame{Snapshot: l.console.Snapshot(), Results: l.results, Stats: st})
}

// Close releases the console.
func (l *Loop) Close() error {
	return l.console.Close()
}

type framePacer struct {
	l *Loop
}

func (p framePacer) Wait(d time.Duration) {
	p.l.Publish()
	if d > 0 {
		p.l.tickUntil(time.Now().Add(d))
	}
}

// tickUntil serves pulses until deadline.
func (l *Loop) tickUntil(deadline time.Time) {
	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return
		case c := <-l.cmds:
			if c != CmdPulse {
				l.held = append(l.held, c)
				continue
			}
			l.console.tick()
		}
	}
}
