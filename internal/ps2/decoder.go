package ps2

import "sync/atomic"

// FrameState is the position of the decoder inside a frame.
type FrameState int

const (
	StateIdle      FrameState = iota // waiting for a start bit
	StateReceiving                   // shifting in data bits
	StateParity                      // next edge carries the parity bit
	StateStop                        // next edge carries the stop bit
)

func (s FrameState) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateReceiving:
		return "Receiving"
	case StateParity:
		return "Parity"
	case StateStop:
		return "Stop"
	default:
		return "Unknown"
	}
}

// EdgeHandler receives one data-line sample per falling clock edge.
type EdgeHandler interface {
	OnEdge(bit uint8)
}

// Stats are the decoder's counters.
type Stats struct {
	Frames         uint64 // frames published to the mailbox
	Discarded      uint64 // frames dropped on a bad stop bit
	ParityMismatch uint64 // published frames whose parity was wrong
}

// Decoder rebuilds scan codes from edge samples and posts them to a Mailbox.
//
// OnEdge runs in the edge handler's context: it never blocks, never
// allocates and never logs. Frame state is owned by that context; only the
// counters are safe to read from elsewhere.
type Decoder struct {
	mb *Mailbox

	state FrameState
	n     int   // data bits received so far
	shift uint8 // LSB-first shift register
	ones  int   // ones seen in data and parity

	frames    atomic.Uint64
	discarded atomic.Uint64
	parity    atomic.Uint64
}

// NewDecoder returns an idle decoder publishing into mb.
func NewDecoder(mb *Mailbox) *Decoder {
	return &Decoder{mb: mb}
}

// OnEdge advances the frame state machine by one sample. Only the lowest
// bit of bit is used.
func (d *Decoder) OnEdge(bit uint8) {
	bit &= 1

	switch d.state {
	case StateIdle:
		if bit == 0 {
			d.state = StateReceiving
			d.n = 0
			d.shift = 0
			d.ones = 0
		}

	case StateReceiving:
		d.shift |= bit << d.n
		d.ones += int(bit)
		d.n++
		if d.n == 8 {
			d.state = StateParity
		}

	case StateParity:
		d.ones += int(bit)
		d.state = StateStop

	case StateStop:
		if bit == 1 {
			if d.ones%2 == 0 {
				d.parity.Add(1)
			}
			d.mb.Post(d.shift)
			d.frames.Add(1)
		} else {
			d.discarded.Add(1)
		}
		d.state = StateIdle
	}
}

// State returns the current frame state. It must be called from the same
// context that drives OnEdge.
func (d *Decoder) State() FrameState {
	return d.state
}

// Stats returns a snapshot of the counters.
func (d *Decoder) Stats() Stats {
	return Stats{
		Frames:         d.frames.Load(),
		Discarded:      d.discarded.Load(),
		ParityMismatch: d.parity.Load(),
	}
}
