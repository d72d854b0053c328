// Package jewel implements Jewel Legend, a match-3 puzzle on a 9x9 board:
// the board model, the match resolver, gravity and the phase machine that
// ties them to keypad actions and the tick pulse.
package jewel

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/jewel-legend/internal/core"
)

const (
	// GameSeconds is the length of a game.
	GameSeconds = 180
	// TicksPerSecond is the number of tick pulses per timer second.
	TicksPerSecond = 100
	// PointsPerGem is awarded for every cell cleared by a match.
	PointsPerGem = 10
)

// Engine runs the game. All methods must be called from one goroutine.
type Engine struct {
	phase    Phase
	grid     Grid
	cursor   Pos
	selected bool
	score    int
	timer    int
	sub      int
	seed     int64
	rng      *rand.Rand

	buzzer Buzzer
	pacer  Pacer
	timing Timing
	logger *log.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithBuzzer sets the tone output.
func WithBuzzer(b Buzzer) Option {
	return func(e *Engine) {
		e.buzzer = b
	}
}

// WithPacer sets how pacing waits are performed.
func WithPacer(p Pacer) Option {
	return func(e *Engine) {
		e.pacer = p
	}
}

// WithTiming sets the pacing durations.
func WithTiming(t Timing) Option {
	return func(e *Engine) {
		e.timing = t
	}
}

// WithLogger sets the engine logger.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// NewEngine returns an engine in the Menu phase. Without options it is
// silent and never waits.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		phase:  PhaseMenu,
		cursor: Pos{X: Size / 2, Y: Size / 2},
		timer:  GameSeconds,
		rng:    rand.New(rand.NewSource(0)),
		buzzer: NopBuzzer{},
		pacer:  NopPacer{},
		timing: DefaultTiming(),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Phase returns the current phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Score returns the score of the current game.
func (e *Engine) Score() int {
	return e.score
}

// PressStart handles the start button: Menu goes to Instructions,
// Instructions starts a new game seeded with seed.
func (e *Engine) PressStart(seed int64) {
	switch e.phase {
	case PhaseMenu:
		e.setPhase(PhaseInstructions)
	case PhaseInstructions:
		e.newGame(seed)
		e.setPhase(PhasePlaying)
	}
}

// PressReset handles the reset button: a running or finished game returns
// to the Menu.
func (e *Engine) PressReset() {
	if e.phase == PhasePlaying || e.phase == PhaseGameOver {
		e.setPhase(PhaseMenu)
	}
}

// Tick advances the game clock by one pulse.
func (e *Engine) Tick() {
	if e.phase != PhasePlaying {
		return
	}
	e.sub++
	if e.sub < TicksPerSecond {
		return
	}
	e.sub = 0
	if e.timer > 0 {
		e.timer--
	}
	if e.timer == 0 {
		e.logger.Debug("time up", "score", e.score)
		e.setPhase(PhaseGameOver)
	}
}

// Handle applies one keypad action. Actions outside Playing are ignored.
func (e *Engine) Handle(a core.Action) {
	if e.phase != PhasePlaying {
		return
	}

	switch {
	case a.IsDirection():
		dx, dy := a.Delta()
		target := e.cursor.Add(dx, dy)
		if !target.In() {
			return
		}
		if e.selected {
			e.trySwap(target)
		} else {
			e.cursor = target
		}
	case a == core.ActionActivate:
		e.activate()
	case a == core.ActionShuffle:
		e.shuffle()
	}
}

func (e *Engine) newGame(seed int64) {
	e.seed = seed
	e.rng = rand.New(rand.NewSource(seed))
	e.grid = NewGrid(e.rng)
	e.score = 0
	e.timer = GameSeconds
	e.sub = 0
	e.cursor = Pos{X: Size / 2, Y: Size / 2}
	e.selected = false
	e.logger.Debug("new game", "seed", seed)
}

func (e *Engine) setPhase(p Phase) {
	if e.phase == p {
		return
	}
	e.logger.Debug("phase", "from", e.phase, "to", p)
	e.phase = p
}

// trySwap swaps the cursor cell with target and keeps the swap only if it
// produces a match. A rejected swap restores the board exactly.
func (e *Engine) trySwap(target Pos) {
	saved := e.grid
	e.grid.Swap(e.cursor, target)
	e.pacer.Wait(e.timing.SwapPreview)

	res := Resolve(&e.grid)
	if res.Matched {
		e.award(res)
		e.logger.Debug("swap", "from", e.cursor, "to", target, "cleared", res.Cleared)
		e.tone(e.timing.ToneLong)
		e.cascade()
	} else {
		e.grid = saved
		e.logger.Debug("swap reverted", "from", e.cursor, "to", target)
	}
	e.selected = false
}

func (e *Engine) activate() {
	kind := e.grid.At(e.cursor).Kind
	if !kind.Special() {
		e.selected = !e.selected
		if e.selected {
			e.tone(e.timing.ToneShort)
		}
		return
	}

	e.tone(e.timing.ToneShort)
	n := ClearArea(&e.grid, e.cursor)
	e.logger.Debug("special", "kind", kind, "at", e.cursor, "cleared", n)
	e.cascade()
	e.selected = false
}

func (e *Engine) shuffle() {
	Shuffle(&e.grid, e.rng)
	for {
		res := Resolve(&e.grid)
		if !res.Matched {
			break
		}
		e.award(res)
		e.settle()
	}
	e.selected = false
	e.logger.Debug("shuffle", "score", e.score)
	e.tone(e.timing.ToneShort)
}

// cascade settles the board and resolves again until a pass finds no match.
func (e *Engine) cascade() {
	passes := 0
	for {
		e.settle()
		res := Resolve(&e.grid)
		if !res.Matched {
			break
		}
		e.award(res)
		passes++
	}
	if passes > 0 {
		e.logger.Debug("cascade", "passes", passes, "score", e.score)
	}
}

func (e *Engine) settle() {
	for SettleStep(&e.grid, e.rng) {
		e.pacer.Wait(e.timing.SettleFrame)
	}
}

func (e *Engine) award(res Result) {
	e.score += PointsPerGem * res.Cleared
}

func (e *Engine) tone(d time.Duration) {
	e.buzzer.On()
	e.pacer.Wait(d)
	e.buzzer.Off()
}
