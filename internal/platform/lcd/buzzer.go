package lcd

import (
	"encoding/binary"
	"math"
	"sync/atomic"
)

// SampleRate is the audio output rate.
const SampleRate = 44100

// SquareWave is the piezo buzzer: an endless stream of 16-bit
// little-endian stereo frames that carries a square wave while the buzzer
// is on and silence otherwise. It implements jewel.Buzzer and io.Reader.
type SquareWave struct {
	on        atomic.Bool
	amplitude int16
	halfCycle float64 // samples per half period
	phase     float64
}

// NewSquareWave returns a buzzer sounding freq Hz at volume (0..1).
func NewSquareWave(freq int, volume float64) *SquareWave {
	if freq <= 0 {
		freq = 880
	}
	volume = math.Max(0, math.Min(1, volume))
	return &SquareWave{
		amplitude: int16(volume * math.MaxInt16),
		halfCycle: float64(SampleRate) / float64(freq) / 2,
	}
}

func (s *SquareWave) On()  { s.on.Store(true) }
func (s *SquareWave) Off() { s.on.Store(false) }

// Sounding reports whether the buzzer is on.
func (s *SquareWave) Sounding() bool {
	return s.on.Load()
}

// Read fills p with whole stereo frames.
func (s *SquareWave) Read(p []byte) (int, error) {
	n := len(p) / 4 * 4
	if n == 0 {
		for i := range p {
			p[i] = 0
		}
		return len(p), nil
	}

	on := s.on.Load()
	for i := 0; i < n; i += 4 {
		var v int16
		if on {
			v = s.amplitude
			if s.phase >= s.halfCycle {
				v = -v
			}
		}
		s.phase++
		if s.phase >= 2*s.halfCycle {
			s.phase -= 2 * s.halfCycle
		}
		binary.LittleEndian.PutUint16(p[i:], uint16(v))
		binary.LittleEndian.PutUint16(p[i+2:], uint16(v))
	}
	return n, nil
}
