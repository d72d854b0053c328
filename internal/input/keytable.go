// Package input turns pending scan codes into game actions, with the
// console's cooldown and repeat suppression.
package input

import (
	"github.com/vovakirdan/jewel-legend/internal/core"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
)

// KeyTable maps make codes to actions. Codes not present are ignored.
type KeyTable map[byte]core.Action

// DefaultKeyTable returns the keypad layout of the console. Every other
// code, keypad '-' included, is ignored.
func DefaultKeyTable() KeyTable {
	return KeyTable{
		ps2.CodeKP8: core.ActionUp,
		ps2.CodeKP2: core.ActionDown,
		ps2.CodeKP4: core.ActionLeft,
		ps2.CodeKP6: core.ActionRight,
		ps2.CodeKP5: core.ActionActivate,
	}
}

// WithShuffle returns a copy of t with keypad '-' bound to Shuffle.
func (t KeyTable) WithShuffle() KeyTable {
	out := make(KeyTable, len(t)+1)
	for code, a := range t {
		out[code] = a
	}
	out[ps2.CodeKPMinus] = core.ActionShuffle
	return out
}

// Lookup returns the action for code.
func (t KeyTable) Lookup(code byte) (core.Action, bool) {
	a, ok := t[code]
	if !ok || a == core.ActionNone {
		return core.ActionNone, false
	}
	return a, true
}
