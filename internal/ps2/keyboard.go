package ps2

import (
	"context"
	"io"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultQueueSize is the depth of the keypad's internal code buffer.
const DefaultQueueSize = 16

// Keyboard is the host-side keypad. It buffers make codes and clocks each
// one out as a frame of edges into an EdgeHandler.
type Keyboard struct {
	sink     EdgeHandler
	queue    chan byte
	bitDelay time.Duration
	logger   *log.Logger

	sent    atomic.Uint64
	dropped atomic.Uint64
}

// Option configures a Keyboard.
type Option func(*Keyboard)

// WithBitDelay waits d between consecutive edges while transmitting.
func WithBitDelay(d time.Duration) Option {
	return func(k *Keyboard) {
		k.bitDelay = d
	}
}

// WithQueueSize sets the buffer depth. Values below 1 are ignored.
func WithQueueSize(n int) Option {
	return func(k *Keyboard) {
		if n > 0 {
			k.queue = make(chan byte, n)
		}
	}
}

// WithLogger sets the logger used for buffer overflows.
func WithLogger(l *log.Logger) Option {
	return func(k *Keyboard) {
		k.logger = l
	}
}

// NewKeyboard creates a keypad wired to sink.
func NewKeyboard(sink EdgeHandler, opts ...Option) *Keyboard {
	k := &Keyboard{
		sink:   sink,
		queue:  make(chan byte, DefaultQueueSize),
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(k)
	}
	return k
}

// Press queues the make code of key.
func (k *Keyboard) Press(key Keypad) bool {
	return k.Send(key.Code())
}

// Send queues code for transmission without blocking. When the buffer is
// full the code is dropped and false is returned.
func (k *Keyboard) Send(code byte) bool {
	if code == 0 {
		return false
	}
	select {
	case k.queue <- code:
		return true
	default:
		k.dropped.Add(1)
		k.logger.Debug("keypad buffer full, code dropped", "code", code)
		return false
	}
}

// Run transmits queued codes until ctx is cancelled.
func (k *Keyboard) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case code := <-k.queue:
			k.Transmit(Encode(code))
		}
	}
}

// Flush synchronously transmits everything currently buffered and returns
// the number of frames sent.
func (k *Keyboard) Flush() int {
	n := 0
	for {
		select {
		case code := <-k.queue:
			k.Transmit(Encode(code))
			n++
		default:
			return n
		}
	}
}

// Transmit clocks one frame into the sink, edge by edge. Malformed
// frames are sent as they are.
func (k *Keyboard) Transmit(f Frame) {
	if !f.Valid() {
		k.logger.Debug("malformed frame", "frame", f)
	}
	for i, bit := range f {
		if i > 0 && k.bitDelay > 0 {
			time.Sleep(k.bitDelay)
		}
		k.sink.OnEdge(bit)
	}
	k.sent.Add(1)
}

// Pending returns the number of buffered codes.
func (k *Keyboard) Pending() int {
	return len(k.queue)
}

// Sent returns the number of frames transmitted.
func (k *Keyboard) Sent() uint64 {
	return k.sent.Load()
}

// Dropped returns the number of codes lost to a full buffer.
func (k *Keyboard) Dropped() uint64 {
	return k.dropped.Load()
}
