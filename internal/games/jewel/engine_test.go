package jewel

import (
	"bytes"
	"testing"
	"time"

	"github.com/vovakirdan/jewel-legend/internal/core"
)

type recordingBuzzer struct {
	on, off int
}

func (b *recordingBuzzer) On()  { b.on++ }
func (b *recordingBuzzer) Off() { b.off++ }

type recordingPacer struct {
	waits  []time.Duration
	scores []int // score at each wait, when e is set
	e      *Engine
}

func (p *recordingPacer) Wait(d time.Duration) {
	p.waits = append(p.waits, d)
	if p.e != nil {
		p.scores = append(p.scores, p.e.Score())
	}
}

func newPlaying(t *testing.T, seed int64, opts ...Option) *Engine {
	t.Helper()
	e := NewEngine(opts...)
	e.PressStart(seed)
	e.PressStart(seed)
	if e.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", e.Phase())
	}
	return e
}

func press(e *Engine, actions ...core.Action) {
	for _, a := range actions {
		e.Handle(a)
	}
}

func TestPhaseTransitions(t *testing.T) {
	e := NewEngine()
	if e.Phase() != PhaseMenu {
		t.Fatalf("initial phase = %v", e.Phase())
	}

	e.PressReset()
	if e.Phase() != PhaseMenu {
		t.Error("reset in menu should be a no-op")
	}

	e.PressStart(1)
	if e.Phase() != PhaseInstructions {
		t.Fatalf("phase = %v, want instructions", e.Phase())
	}
	e.PressReset()
	if e.Phase() != PhaseInstructions {
		t.Error("reset in instructions should be a no-op")
	}

	e.PressStart(1)
	if e.Phase() != PhasePlaying {
		t.Fatalf("phase = %v, want playing", e.Phase())
	}
	e.PressStart(1)
	if e.Phase() != PhasePlaying {
		t.Error("start while playing should be a no-op")
	}

	e.PressReset()
	if e.Phase() != PhaseMenu {
		t.Errorf("phase = %v, want menu", e.Phase())
	}
}

func TestNewGameState(t *testing.T) {
	e := newPlaying(t, 99)
	s := e.Snapshot()

	if s.Score != 0 || s.Timer != GameSeconds || s.Selected {
		t.Errorf("snapshot = score %d timer %d selected %v", s.Score, s.Timer, s.Selected)
	}
	if s.Cursor != (Pos{4, 4}) {
		t.Errorf("cursor = %v, want (4,4)", s.Cursor)
	}
	if s.Grid.HasRun() || !s.Grid.Full() {
		t.Error("new board must be full and free of runs")
	}
	if s.Seed != 99 {
		t.Errorf("seed = %d", s.Seed)
	}
}

func TestTimer(t *testing.T) {
	e := newPlaying(t, 1)

	for range TicksPerSecond - 1 {
		e.Tick()
	}
	if e.Snapshot().Timer != GameSeconds {
		t.Fatal("timer moved before a full second")
	}
	e.Tick()
	if e.Snapshot().Timer != GameSeconds-1 {
		t.Fatalf("timer = %d, want %d", e.Snapshot().Timer, GameSeconds-1)
	}

	for range (GameSeconds - 1) * TicksPerSecond {
		e.Tick()
	}
	s := e.Snapshot()
	if s.Phase != PhaseGameOver || s.Timer != 0 {
		t.Errorf("phase %v timer %d, want game over at 0", s.Phase, s.Timer)
	}

	e.Tick()
	if e.Snapshot().Timer != 0 {
		t.Error("timer must not go below zero")
	}

	e.PressReset()
	if e.Phase() != PhaseMenu {
		t.Error("reset from game over should return to the menu")
	}
}

func TestTickIgnoredOutsidePlaying(t *testing.T) {
	e := NewEngine()
	for range 10 * TicksPerSecond {
		e.Tick()
	}
	if e.Snapshot().Timer != GameSeconds {
		t.Error("timer ran in the menu")
	}
}

func TestCursorMovement(t *testing.T) {
	e := newPlaying(t, 3)

	press(e, core.ActionUp, core.ActionUp, core.ActionRight)
	if c := e.Snapshot().Cursor; c != (Pos{5, 6}) {
		t.Errorf("cursor = %v, want (5,6)", c)
	}

	for range 20 {
		press(e, core.ActionDown, core.ActionLeft)
	}
	if c := e.Snapshot().Cursor; c != (Pos{0, 0}) {
		t.Errorf("cursor = %v, want clamped at (0,0)", c)
	}
}

func TestHandleIgnoredOutsidePlaying(t *testing.T) {
	e := NewEngine()
	press(e, core.ActionUp, core.ActionActivate)
	if s := e.Snapshot(); s.Cursor != (Pos{4, 4}) || s.Selected {
		t.Error("menu phase reacted to keypad input")
	}
}

func TestSelectToggle(t *testing.T) {
	buzz := &recordingBuzzer{}
	e := newPlaying(t, 5, WithBuzzer(buzz))

	press(e, core.ActionActivate)
	if !e.Snapshot().Selected {
		t.Fatal("activate should select")
	}
	if buzz.on != 1 {
		t.Errorf("tones = %d, want 1 on select", buzz.on)
	}

	press(e, core.ActionActivate)
	if e.Snapshot().Selected {
		t.Fatal("second activate should deselect")
	}
	if buzz.on != 1 || buzz.off != 1 {
		t.Errorf("deselect must be silent, on=%d off=%d", buzz.on, buzz.off)
	}
}

func TestSwapWithoutMatchReverts(t *testing.T) {
	e := newPlaying(t, 1)
	e.Load(mustGrid(t, baseRows...))
	snap := e.Snapshot()
	before := snap.Grid.Bytes()

	press(e, core.ActionActivate, core.ActionRight)

	s := e.Snapshot()
	if !bytes.Equal(s.Grid.Bytes(), before) {
		t.Errorf("board not restored:\n%s", s.Grid.String())
	}
	if s.Selected || s.Score != 0 {
		t.Errorf("selected %v score %d after revert", s.Selected, s.Score)
	}
	if s.Cursor != (Pos{4, 4}) {
		t.Errorf("cursor moved during swap: %v", s.Cursor)
	}
}

func TestSwapRevertRemovesProbeSpawn(t *testing.T) {
	// Moving the 3 at (2,1) down completes a run of five. The bomb spawned
	// in its middle blocks every window, so nothing clears and the swap is
	// rejected: the bomb must vanish with it.
	rows := withRow(0, "330335012")
	rows[7] = "233501234"
	e := newPlaying(t, 1)
	g := mustGrid(t, rows...)
	if g.HasRun() {
		t.Fatal("test board already has a run")
	}
	e.Load(g)

	press(e, core.ActionLeft, core.ActionLeft, core.ActionDown, core.ActionDown, core.ActionDown)
	press(e, core.ActionActivate, core.ActionDown)

	if got := e.Snapshot().Grid; got != g {
		t.Errorf("board not restored:\n%s", got.String())
	}
}

func TestSwapOutOfBoundsKeepsSelection(t *testing.T) {
	e := newPlaying(t, 1)
	for range 4 {
		press(e, core.ActionLeft)
	}
	press(e, core.ActionActivate, core.ActionLeft)

	s := e.Snapshot()
	if !s.Selected {
		t.Error("out-of-bounds swap should keep the selection")
	}
	if s.Cursor != (Pos{0, 4}) {
		t.Errorf("cursor = %v", s.Cursor)
	}
}

func TestSwapScoresAndStabilises(t *testing.T) {
	rows := withRow(0, "552345012")
	rows[7] = "235501234"
	g := mustGrid(t, rows...)
	if g.HasRun() {
		t.Fatal("test board already has a run")
	}

	// The swap alone yields exactly one run of three.
	trial := g
	trial.Swap(Pos{2, 0}, Pos{2, 1})
	if res := Resolve(&trial); res.Cleared != 3 {
		t.Fatalf("swap resolves %+v, want 3 cleared", res)
	}

	buzz := &recordingBuzzer{}
	pacer := &recordingPacer{}
	timing := DefaultTiming()
	e := newPlaying(t, 11, WithBuzzer(buzz), WithPacer(pacer), WithTiming(timing))
	e.Load(g)

	press(e, core.ActionLeft, core.ActionLeft)
	for range 4 {
		press(e, core.ActionDown)
	}
	press(e, core.ActionActivate)
	pacer.e = e
	pacer.waits, pacer.scores = nil, nil
	press(e, core.ActionUp)

	// The long tone follows the swap's own match, before any cascade.
	scoredAtTone := -1
	for i, d := range pacer.waits {
		if d == timing.ToneLong {
			scoredAtTone = pacer.scores[i]
			break
		}
	}
	if scoredAtTone != 3*PointsPerGem {
		t.Errorf("score at the long tone = %d, want exactly %d", scoredAtTone, 3*PointsPerGem)
	}

	s := e.Snapshot()
	if s.Score < 3*PointsPerGem || s.Score%PointsPerGem != 0 {
		t.Errorf("score = %d, want at least 30 in steps of 10", s.Score)
	}
	if s.Selected {
		t.Error("selection should be cleared after a swap")
	}
	if !s.Grid.Full() || s.Grid.HasRun() {
		t.Errorf("board not stable after cascade:\n%s", s.Grid.String())
	}

	var long, preview bool
	for _, d := range pacer.waits {
		long = long || d == timing.ToneLong
		preview = preview || d == timing.SwapPreview
	}
	if !long || !preview {
		t.Errorf("waits = %v, want swap preview and long tone", pacer.waits)
	}
	if buzz.on != buzz.off {
		t.Errorf("buzzer left on: on=%d off=%d", buzz.on, buzz.off)
	}
}

func TestActivateSpecial(t *testing.T) {
	tests := []struct {
		name string
		kind Kind
	}{
		{"horizontal clearer", KindHorizontalClearer},
		{"vertical clearer", KindVerticalClearer},
		{"bomb", KindBomb},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buzz := &recordingBuzzer{}
			e := newPlaying(t, 21, WithBuzzer(buzz))
			g := mustGrid(t, baseRows...)
			g[4][4].Kind = tt.kind
			e.Load(g)

			press(e, core.ActionActivate)

			s := e.Snapshot()
			if s.Selected {
				t.Error("special activation must clear the selection")
			}
			if buzz.on != 1 {
				t.Errorf("tones = %d, want 1", buzz.on)
			}
			if !s.Grid.Full() || s.Grid.HasRun() {
				t.Errorf("board not stable:\n%s", s.Grid.String())
			}
			if s.Grid.At(Pos{4, 4}).Kind == tt.kind && s.Grid == g {
				t.Error("special tile did not fire")
			}
		})
	}
}

func TestShuffleLeavesStableBoard(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		e := newPlaying(t, seed)
		press(e, core.ActionActivate, core.ActionShuffle)

		s := e.Snapshot()
		if s.Selected {
			t.Error("shuffle must clear the selection")
		}
		if !s.Grid.Full() || s.Grid.HasRun() {
			t.Fatalf("seed %d: board not stable:\n%s", seed, s.Grid.String())
		}
	}
}

func TestEngineDeterminism(t *testing.T) {
	run := func() Snapshot {
		e := newPlaying(t, 12345)
		actions := []core.Action{
			core.ActionActivate, core.ActionUp,
			core.ActionLeft, core.ActionActivate, core.ActionRight,
			core.ActionShuffle,
			core.ActionDown, core.ActionActivate, core.ActionDown,
		}
		for i, a := range actions {
			e.Handle(a)
			for range i * 7 {
				e.Tick()
			}
		}
		return e.Snapshot()
	}

	a, b := run(), run()
	if a != b {
		t.Error("same seed and inputs produced different snapshots")
	}
}
