// Package console assembles the simulated handheld: virtual keypad, frame
// decoder, mailbox, debouncer and game engine, plus the session scoreboard.
// Front-ends drive it with tick pulses, main-loop steps and button presses.
package console

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jewel-legend/internal/games/jewel"
	"github.com/vovakirdan/jewel-legend/internal/input"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
	"github.com/vovakirdan/jewel-legend/internal/storage"
)

// Console owns every piece of game state. Pulse, Step, the button presses
// and Snapshot must be called from the front-end's main loop. Keypad edges
// are produced either by Run on its own goroutine or synchronously by
// Flush, never both.
type Console struct {
	engine   *jewel.Engine
	mailbox  *ps2.Mailbox
	decoder  *ps2.Decoder
	keyboard *ps2.Keyboard
	debounce *input.Debouncer
	store    *storage.Store
	logger   *log.Logger

	seedCounter int64
	fixedSeed   int64
	hasSeed     bool

	recorded bool
	best     int
	games    int
	events   uint64
	pulses   uint64

	engineOpts   []jewel.Option
	keyboardOpts []ps2.Option
	keys         input.KeyTable
}

// Option configures a Console.
type Option func(*Console)

// WithSeed makes every game use seed instead of the free-running counter.
func WithSeed(seed int64) Option {
	return func(c *Console) {
		c.fixedSeed = seed
		c.hasSeed = true
	}
}

// WithStore records finished games in s. Close closes it.
func WithStore(s *storage.Store) Option {
	return func(c *Console) {
		c.store = s
	}
}

// WithLogger sets the console logger.
func WithLogger(l *log.Logger) Option {
	return func(c *Console) {
		c.logger = l
	}
}

// WithEngine passes options to the game engine.
func WithEngine(opts ...jewel.Option) Option {
	return func(c *Console) {
		c.engineOpts = append(c.engineOpts, opts...)
	}
}

// WithKeyboard passes options to the virtual keypad.
func WithKeyboard(opts ...ps2.Option) Option {
	return func(c *Console) {
		c.keyboardOpts = append(c.keyboardOpts, opts...)
	}
}

// WithKeyTable replaces the scan code table.
func WithKeyTable(t input.KeyTable) Option {
	return func(c *Console) {
		c.keys = t
	}
}

// New builds a console in the Menu phase.
func New(opts ...Option) *Console {
	c := &Console{
		mailbox: &ps2.Mailbox{},
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(c)
	}

	c.decoder = ps2.NewDecoder(c.mailbox)
	c.keyboard = ps2.NewKeyboard(c.decoder, c.keyboardOpts...)
	c.debounce = input.NewDebouncer(c.keys)
	c.engine = jewel.NewEngine(c.engineOpts...)
	return c
}

// Pulse delivers one tick of the periodic time source.
func (c *Console) Pulse() {
	c.tick()
	c.checkGameOver()
}

// tick advances the cooldown and the game clock. It is also what a pulse
// does while the engine is inside a wait: the final score is recorded
// only once the engine is back in the main loop.
func (c *Console) tick() {
	c.pulses++
	c.debounce.Tick()
	c.engine.Tick()
}

// Step runs one main-loop pass: it advances the seed counter and, while a
// game is running, handles at most one pending key. Outside a game the
// key stays in the mailbox.
func (c *Console) Step() (input.Event, bool) {
	c.seedCounter++

	var ev input.Event
	var ok bool
	if c.engine.Phase() == jewel.PhasePlaying {
		ev, ok = c.debounce.Poll(c.mailbox)
		if ok {
			c.events++
			c.engine.Handle(ev.Action)
		}
	}
	c.checkGameOver()
	return ev, ok
}

// PressKey queues a keypad key for transmission. It reports false when
// the keypad buffer is full.
func (c *Console) PressKey(k ps2.Keypad) bool {
	return c.keyboard.Press(k)
}

// Transmit clocks a raw frame into the decoder on the calling goroutine.
func (c *Console) Transmit(f ps2.Frame) {
	c.keyboard.Transmit(f)
}

// Flush transmits every queued key synchronously.
func (c *Console) Flush() int {
	return c.keyboard.Flush()
}

// Run transmits queued keys until ctx is cancelled.
func (c *Console) Run(ctx context.Context) error {
	return c.keyboard.Run(ctx)
}

// PressStart is the start button edge.
func (c *Console) PressStart() {
	before := c.engine.Phase()
	c.engine.PressStart(c.nextSeed())
	if before == jewel.PhaseInstructions && c.engine.Phase() == jewel.PhasePlaying {
		c.recorded = false
		c.debounce.Reset()
		c.logger.Info("game started", "seed", c.engine.Snapshot().Seed)
	}
}

// PressReset is the reset button edge.
func (c *Console) PressReset() {
	if c.engine.Phase() == jewel.PhasePlaying {
		c.logger.Info("game abandoned", "score", c.engine.Score())
	}
	c.engine.PressReset()
}

// Snapshot returns the engine state with the session best filled in.
func (c *Console) Snapshot() jewel.Snapshot {
	s := c.engine.Snapshot()
	s.Best = c.best
	return s
}

// Stats are the console's counters.
type Stats struct {
	Decoder ps2.Stats
	Sent    uint64 // frames sent by the keypad
	Dropped uint64 // keys lost to a full keypad buffer
	Queued  int    // keys waiting in the keypad buffer
	Held    byte   // scan code waiting for the debouncer, 0 if none
	Events  uint64 // keys accepted by the debouncer
	Pulses  uint64 // tick pulses delivered
	Games   int    // games finished this session
}

// Stats returns the current counters.
func (c *Console) Stats() Stats {
	return Stats{
		Decoder: c.decoder.Stats(),
		Sent:    c.keyboard.Sent(),
		Dropped: c.keyboard.Dropped(),
		Queued:  c.keyboard.Pending(),
		Held:    c.mailbox.Peek(),
		Events:  c.events,
		Pulses:  c.pulses,
		Games:   c.games,
	}
}

// Results returns the best finished games of the session.
func (c *Console) Results(limit int) ([]storage.ScoreEntry, error) {
	if c.store == nil {
		return nil, nil
	}
	return c.store.TopScores(limit)
}

// Close releases the scoreboard.
func (c *Console) Close() error {
	if c.store == nil {
		return nil
	}
	return c.store.Close()
}

func (c *Console) nextSeed() int64 {
	if c.hasSeed {
		return c.fixedSeed
	}
	return c.seedCounter
}

// checkGameOver records the final score once per game.
func (c *Console) checkGameOver() {
	if c.recorded || c.engine.Phase() != jewel.PhaseGameOver {
		return
	}
	c.recorded = true
	c.games++

	s := c.engine.Snapshot()
	if s.Score > c.best {
		c.best = s.Score
	}
	c.logger.Info("game over", "score", s.Score, "best", c.best, "seed", s.Seed)

	if c.store == nil {
		return
	}
	if _, err := c.store.SaveScore(s.Score, s.Seed); err != nil {
		c.logger.Warn("failed to record score", "err", err)
		return
	}
	if st, err := c.store.Stats(); err == nil {
		c.logger.Debug("session", "games", st.Games, "high", st.HighScore, "avg", st.AvgScore)
	}
}
