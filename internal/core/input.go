package core

// Action is a logical input event decoded from the keypad. Games work with
// these intents rather than with scan codes.
type Action int

const (
	ActionNone     Action = iota
	ActionUp              // keypad 8
	ActionDown            // keypad 2
	ActionLeft            // keypad 4
	ActionRight           // keypad 6
	ActionActivate        // keypad 5 - select, swap target, fire special tile
	ActionShuffle         // keypad '-'
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionActivate:
		return "Activate"
	case ActionShuffle:
		return "Shuffle"
	default:
		return "Unknown"
	}
}

// IsDirection reports whether the action moves the cursor or picks a swap
// neighbour.
func (a Action) IsDirection() bool {
	switch a {
	case ActionUp, ActionDown, ActionLeft, ActionRight:
		return true
	}
	return false
}

// Delta returns the grid offset of a directional action. Row 0 is the bottom
// of the board, so Up increases y.
func (a Action) Delta() (dx, dy int) {
	switch a {
	case ActionUp:
		return 0, 1
	case ActionDown:
		return 0, -1
	case ActionLeft:
		return -1, 0
	case ActionRight:
		return 1, 0
	default:
		return 0, 0
	}
}
