package ps2

import (
	"fmt"
	"strings"
)

// Set-2 make codes of the keypad keys the console reacts to.
const (
	CodeKP2     byte = 0x72
	CodeKP4     byte = 0x6B
	CodeKP5     byte = 0x73
	CodeKP6     byte = 0x74
	CodeKP8     byte = 0x75
	CodeKPMinus byte = 0x4A
)

// Keys the console does not map. They still travel through the decoder.
const (
	CodeKP0 byte = 0x70
	CodeKP1 byte = 0x69
	CodeKP3 byte = 0x7A
	CodeKP7 byte = 0x6C
	CodeKP9 byte = 0x7D
)

// Keypad identifies a physical key of the numeric keypad.
type Keypad int

const (
	KeyNone Keypad = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyMinus
)

var keypadCodes = [...]byte{
	KeyNone:  0,
	Key0:     CodeKP0,
	Key1:     CodeKP1,
	Key2:     CodeKP2,
	Key3:     CodeKP3,
	Key4:     CodeKP4,
	Key5:     CodeKP5,
	Key6:     CodeKP6,
	Key7:     CodeKP7,
	Key8:     CodeKP8,
	Key9:     CodeKP9,
	KeyMinus: CodeKPMinus,
}

var keypadNames = [...]string{
	KeyNone:  "none",
	Key0:     "kp0",
	Key1:     "kp1",
	Key2:     "kp2",
	Key3:     "kp3",
	Key4:     "kp4",
	Key5:     "kp5",
	Key6:     "kp6",
	Key7:     "kp7",
	Key8:     "kp8",
	Key9:     "kp9",
	KeyMinus: "kp-",
}

// AllKeys lists every keypad key in order.
func AllKeys() []Keypad {
	return []Keypad{Key0, Key1, Key2, Key3, Key4, Key5, Key6, Key7, Key8, Key9, KeyMinus}
}

// Code returns the key's make code, 0 for KeyNone or an invalid key.
func (k Keypad) Code() byte {
	if k < 0 || int(k) >= len(keypadCodes) {
		return 0
	}
	return keypadCodes[k]
}

func (k Keypad) String() string {
	if k < 0 || int(k) >= len(keypadNames) {
		return fmt.Sprintf("Keypad(%d)", int(k))
	}
	return keypadNames[k]
}

// ParseKeypad resolves a key name such as "kp8" or "kp-".
func ParseKeypad(name string) (Keypad, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, k := range AllKeys() {
		if keypadNames[k] == name {
			return k, nil
		}
	}
	return KeyNone, fmt.Errorf("ps2: unknown keypad key %q", name)
}
