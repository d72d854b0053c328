package lcd

import (
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/jewel-legend/internal/config"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
)

// numpad is always bound: the host keyboard's own keypad.
var numpad = map[ebiten.Key]ps2.Keypad{
	ebiten.KeyNumpad0:        ps2.Key0,
	ebiten.KeyNumpad1:        ps2.Key1,
	ebiten.KeyNumpad2:        ps2.Key2,
	ebiten.KeyNumpad3:        ps2.Key3,
	ebiten.KeyNumpad4:        ps2.Key4,
	ebiten.KeyNumpad5:        ps2.Key5,
	ebiten.KeyNumpad6:        ps2.Key6,
	ebiten.KeyNumpad7:        ps2.Key7,
	ebiten.KeyNumpad8:        ps2.Key8,
	ebiten.KeyNumpad9:        ps2.Key9,
	ebiten.KeyNumpadSubtract: ps2.KeyMinus,
}

var namedKeys = map[string]ebiten.Key{
	"up":    ebiten.KeyArrowUp,
	"down":  ebiten.KeyArrowDown,
	"left":  ebiten.KeyArrowLeft,
	"right": ebiten.KeyArrowRight,
	"enter": ebiten.KeyEnter,
	" ":     ebiten.KeySpace,
	"space": ebiten.KeySpace,
	"esc":   ebiten.KeyEscape,
	"tab":   ebiten.KeyTab,
	"-":     ebiten.KeyMinus,
	"=":     ebiten.KeyEqual,
}

// keysByName indexes ebiten's own key names ("A", "Digit1", "F1") in
// lower case.
var keysByName = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+1)
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	return m
}()

// ebitenKey resolves a terminal key name from the configuration.
// Modifier chords such as "ctrl+c" have no window equivalent.
func ebitenKey(name string) (ebiten.Key, bool) {
	if k, ok := namedKeys[name]; ok {
		return k, true
	}
	lower := strings.ToLower(name)
	if len(lower) == 1 && lower[0] >= '0' && lower[0] <= '9' {
		lower = "digit" + lower
	}
	if strings.Contains(lower, "+") {
		return 0, false
	}
	k, ok := keysByName[lower]
	return k, ok
}

// Button is a console button other than the keypad.
type Button int

const (
	ButtonNone Button = iota
	ButtonStart
	ButtonReset
	ButtonQuit
	ButtonScreenshot
)

// KeyMap maps window keys to keypad keys and console buttons.
type KeyMap struct {
	Keypad  map[ebiten.Key]ps2.Keypad
	Buttons map[ebiten.Key]Button
}

// NewKeyMap builds the window key map from the host configuration.
// Names the window cannot express are skipped.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	km := KeyMap{
		Keypad:  make(map[ebiten.Key]ps2.Keypad, len(numpad)),
		Buttons: map[ebiten.Key]Button{ebiten.KeyF12: ButtonScreenshot},
	}
	for k, pad := range numpad {
		km.Keypad[k] = pad
	}

	for name, keys := range cfg.Keypad {
		pad, err := ps2.ParseKeypad(name)
		if err != nil {
			continue
		}
		for _, n := range keys {
			if k, ok := ebitenKey(n); ok {
				km.Keypad[k] = pad
			}
		}
	}

	// Buttons override keypad bindings on the same key.
	bind := func(names []string, b Button) {
		for _, n := range names {
			if k, ok := ebitenKey(n); ok {
				km.Buttons[k] = b
				delete(km.Keypad, k)
			}
		}
	}
	bind(cfg.Start, ButtonStart)
	bind(cfg.Reset, ButtonReset)
	bind(cfg.Quit, ButtonQuit)
	return km
}

// Keys returns every bound key in a stable order.
func (km KeyMap) Keys() []ebiten.Key {
	keys := make([]ebiten.Key, 0, len(km.Keypad)+len(km.Buttons))
	for k := range km.Keypad {
		keys = append(keys, k)
	}
	for k := range km.Buttons {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Lookup resolves one key.
func (km KeyMap) Lookup(k ebiten.Key) (ps2.Keypad, Button) {
	if b, ok := km.Buttons[k]; ok {
		return ps2.KeyNone, b
	}
	return km.Keypad[k], ButtonNone
}
