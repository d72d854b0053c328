// Package ps2 models the keypad side of the console: the 11-bit serial frame
// format, the decoder that rebuilds scan codes from clock edges, and a virtual
// keypad that produces those edges on the host.
package ps2

import (
	"fmt"
	"math/bits"
)

// FrameBits is the number of data-line samples in one frame: start, eight
// data bits LSB first, parity, stop.
const FrameBits = 11

// Frame holds the data-line sample of each falling clock edge of one frame.
type Frame [FrameBits]uint8

// Encode builds the frame a keypad sends for code, with odd parity.
func Encode(code byte) Frame {
	var f Frame
	f[0] = 0
	for i := 0; i < 8; i++ {
		f[1+i] = (code >> i) & 1
	}
	f[9] = oddParity(code)
	f[10] = 1
	return f
}

// Code returns the data byte carried by the frame, ignoring framing bits.
func (f Frame) Code() byte {
	var code byte
	for i := 0; i < 8; i++ {
		code |= (f[1+i] & 1) << i
	}
	return code
}

// Valid reports whether start, parity and stop bits are well formed.
func (f Frame) Valid() bool {
	return f[0] == 0 && f[10] == 1 && f[9] == oddParity(f.Code())
}

// String renders the frame as its bit sequence, e.g. "0 10110010 1 1".
func (f Frame) String() string {
	data := make([]byte, 8)
	for i := 0; i < 8; i++ {
		data[i] = '0' + f[1+i]&1
	}
	return fmt.Sprintf("%d %s %d %d", f[0], data, f[9], f[10])
}

// oddParity returns the parity bit that makes the total count of ones odd.
func oddParity(code byte) uint8 {
	if bits.OnesCount8(code)%2 == 0 {
		return 1
	}
	return 0
}
