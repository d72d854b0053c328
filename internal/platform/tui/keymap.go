package tui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/jewel-legend/internal/config"
	"github.com/vovakirdan/jewel-legend/internal/input"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
)

// Button is a console button other than the keypad.
type Button int

const (
	ButtonNone Button = iota
	ButtonStart
	ButtonReset
	ButtonQuit
	ButtonScreenshot
	ButtonHelp
)

// KeyBinding ties terminal keys to one keypad key.
type KeyBinding struct {
	Key     ps2.Keypad
	Binding key.Binding
}

// KeyMap maps terminal keys to keypad keys and console buttons.
type KeyMap struct {
	Keypad     []KeyBinding
	Start      key.Binding
	Reset      key.Binding
	Quit       key.Binding
	Screenshot key.Binding
	Help       key.Binding
}

// NewKeyMap builds the key map from the host configuration. Unknown
// keypad names are skipped; config.Validate reports them.
func NewKeyMap(cfg config.KeysConfig) KeyMap {
	table := input.DefaultKeyTable()

	km := KeyMap{
		Start:      binding(cfg.Start, "start"),
		Reset:      binding(cfg.Reset, "reset"),
		Quit:       binding(cfg.Quit, "quit"),
		Screenshot: binding([]string{"ctrl+s"}, "screenshot"),
		Help:       binding([]string{"?"}, "help"),
	}

	for name, keys := range cfg.Keypad {
		k, err := ps2.ParseKeypad(name)
		if err != nil || len(keys) == 0 {
			continue
		}
		desc := k.String()
		if a, ok := table.Lookup(k.Code()); ok {
			desc = strings.ToLower(a.String())
		}
		km.Keypad = append(km.Keypad, KeyBinding{Key: k, Binding: binding(keys, desc)})
	}
	sort.Slice(km.Keypad, func(i, j int) bool {
		return km.Keypad[i].Key < km.Keypad[j].Key
	})
	return km
}

func binding(keys []string, desc string) key.Binding {
	if len(keys) == 0 {
		b := key.NewBinding()
		b.SetEnabled(false)
		return b
	}
	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), desc),
	)
}

func helpKeys(keys []string) string {
	out := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		out[i] = k
	}
	return strings.Join(out, "/")
}

// Lookup resolves a key press. Buttons win over keypad keys bound to the
// same terminal key.
func (km KeyMap) Lookup(msg tea.KeyMsg) (ps2.Keypad, Button) {
	switch {
	case key.Matches(msg, km.Quit):
		return ps2.KeyNone, ButtonQuit
	case key.Matches(msg, km.Start):
		return ps2.KeyNone, ButtonStart
	case key.Matches(msg, km.Reset):
		return ps2.KeyNone, ButtonReset
	case key.Matches(msg, km.Screenshot):
		return ps2.KeyNone, ButtonScreenshot
	case key.Matches(msg, km.Help):
		return ps2.KeyNone, ButtonHelp
	}
	for _, kb := range km.Keypad {
		if key.Matches(msg, kb.Binding) {
			return kb.Key, ButtonNone
		}
	}
	return ps2.KeyNone, ButtonNone
}

// ShortHelp returns key bindings for the short help view.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Start, km.Reset, km.Help, km.Quit}
}

// FullHelp returns key bindings for the full help view.
func (km KeyMap) FullHelp() [][]key.Binding {
	pad := make([]key.Binding, 0, len(km.Keypad))
	for _, kb := range km.Keypad {
		pad = append(pad, kb.Binding)
	}
	return [][]key.Binding{
		pad,
		{km.Start, km.Reset, km.Screenshot, km.Help, km.Quit},
	}
}
