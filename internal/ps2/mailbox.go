package ps2

import "sync/atomic"

// Mailbox is the single-slot pending scan code shared between the edge
// handler and the main loop. A zero value is an empty mailbox. Posting
// overwrites whatever is pending: the latest code wins.
type Mailbox struct {
	slot atomic.Uint32
}

// Post stores code, replacing any pending one. Posting 0 empties the slot.
func (m *Mailbox) Post(code byte) {
	m.slot.Store(uint32(code))
}

// Peek returns the pending code without consuming it, 0 when empty.
func (m *Mailbox) Peek() byte {
	return byte(m.slot.Load())
}

// Take returns the pending code and empties the slot.
func (m *Mailbox) Take() byte {
	return byte(m.slot.Swap(0))
}

// Empty reports whether no code is pending.
func (m *Mailbox) Empty() bool {
	return m.slot.Load() == 0
}
