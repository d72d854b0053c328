package input

import "github.com/vovakirdan/jewel-legend/internal/ps2"

const (
	// CooldownTicks is the lockout after an accepted key, in tick pulses.
	CooldownTicks = 10
	// RepeatSuppression is how many identical consecutive codes are
	// rejected after an accepted key.
	RepeatSuppression = 5
)

// Debouncer rate-limits keypad input. Tick and Poll must be called from the
// same goroutine.
type Debouncer struct {
	keys     KeyTable
	cooldown int
	repeat   int
	last     byte
}

// NewDebouncer creates a debouncer over keys. A nil table uses
// DefaultKeyTable.
func NewDebouncer(keys KeyTable) *Debouncer {
	if keys == nil {
		keys = DefaultKeyTable()
	}
	return &Debouncer{keys: keys}
}

// Tick counts down the cooldown by one pulse.
func (d *Debouncer) Tick() {
	if d.cooldown > 0 {
		d.cooldown--
	}
}

// Poll examines the mailbox once. While the cooldown runs the pending code
// is left in place. Otherwise it is consumed and, if accepted and mapped,
// returned as an action.
func (d *Debouncer) Poll(mb *ps2.Mailbox) (Event, bool) {
	if d.cooldown > 0 || mb.Empty() {
		return Event{}, false
	}

	code := mb.Take()
	if code == 0 {
		return Event{}, false
	}

	var (
		ev Event
		ok bool
	)
	if code != d.last || d.repeat == 0 {
		if a, mapped := d.keys.Lookup(code); mapped {
			ev = Event{Code: code, Action: a}
			ok = true
			d.cooldown = CooldownTicks
			d.repeat = RepeatSuppression
		}
	} else {
		d.repeat--
	}
	d.last = code
	return ev, ok
}

// Cooldown returns the remaining lockout in pulses.
func (d *Debouncer) Cooldown() int {
	return d.cooldown
}

// Reset forgets the last key and any running lockout.
func (d *Debouncer) Reset() {
	d.cooldown = 0
	d.repeat = 0
	d.last = 0
}
