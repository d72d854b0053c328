package jewel

// Phase is the top-level state of the console.
type Phase int

const (
	PhaseMenu Phase = iota
	PhaseInstructions
	PhasePlaying
	PhaseGameOver
)

func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhaseInstructions:
		return "instructions"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Snapshot is a read-only copy of the engine state for rendering and
// determinism checks.
type Snapshot struct {
	Phase    Phase
	Grid     Grid
	Cursor   Pos
	Selected bool
	Score    int
	Timer    int   // seconds left
	Seed     int64 // seed of the current game
	Best     int   // best score of the session, filled in by the owner
}

// Snapshot returns the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		Phase:    e.phase,
		Grid:     e.grid,
		Cursor:   e.cursor,
		Selected: e.selected,
		Score:    e.score,
		Timer:    e.timer,
		Seed:     e.seed,
	}
}
