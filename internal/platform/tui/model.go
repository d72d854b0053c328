package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/jewel-legend/internal/console"
	"github.com/vovakirdan/jewel-legend/internal/core"
	"github.com/vovakirdan/jewel-legend/internal/games/jewel"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
	"github.com/vovakirdan/jewel-legend/internal/registry"
)

// frameMsg carries a console frame to the view.
type frameMsg console.Frame

// Loop is the part of console.Loop the model talks to.
type Loop interface {
	Post(console.Command) bool
	PressKey(ps2.Keypad) bool
}

// Model is the Bubble Tea model of the terminal console.
type Model struct {
	loop     Loop
	renderer *jewel.Renderer
	screen   *core.Screen
	styles   styleCache
	keys     KeyMap
	help     help.Model
	results  table.Model
	period   time.Duration
	logger   *log.Logger

	frame    frameMsg
	width    int
	height   int
	quitting bool
}

// NewModel creates the model. loop receives pulses, button presses and
// keypad keys.
func NewModel(loop Loop, keys KeyMap, period time.Duration, logger *log.Logger) Model {
	layout := jewel.TerminalLayout()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return Model{
		loop:     loop,
		renderer: jewel.NewRenderer(layout),
		screen:   core.NewScreen(layout.Width, layout.Height),
		styles:   styleCache{},
		keys:     keys,
		help:     help.New(),
		results:  newResultsTable(),
		period:   period,
		logger:   logger,
		frame:    frameMsg{Snapshot: jewel.Snapshot{Phase: jewel.PhaseMenu}},
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.period)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if !m.loop.Post(console.CmdPulse) {
			m.logger.Debug("pulse dropped, console busy")
		}
		return m, tickCmd(m.period)

	case frameMsg:
		m.frame = msg
		m.results.SetRows(resultRows(msg.Results))
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k, button := m.keys.Lookup(msg)

	switch button {
	case ButtonQuit:
		m.quitting = true
		return m, tea.Quit
	case ButtonStart:
		m.loop.Post(console.CmdStart)
	case ButtonReset:
		m.loop.Post(console.CmdReset)
	case ButtonHelp:
		m.help.ShowAll = !m.help.ShowAll
	case ButtonScreenshot:
		m.saveScreenshot()
	}

	if k != ps2.KeyNone && !m.loop.PressKey(k) {
		m.logger.Debug("keypad buffer full", "key", k)
	}
	return m, nil
}

// saveScreenshot saves the current screen as plain text.
func (m *Model) saveScreenshot() {
	m.renderer.Render(m.screen, m.frame.Snapshot)

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jewel", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("jewel_%s.txt", timestamp))

	if err := os.WriteFile(path, []byte(jewel.Text(m.screen)), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "err", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.screen, m.frame.Snapshot)
	view := RenderScreen(m.screen, m.styles)

	if m.frame.Snapshot.Phase == jewel.PhaseGameOver && len(m.frame.Results) > 0 {
		tbl := resultsStyle.Render(m.results.View())
		switch {
		case m.width >= lipgloss.Width(view)+lipgloss.Width(tbl)+1:
			view = lipgloss.JoinHorizontal(lipgloss.Top, view, " ", tbl)
		case m.height >= lipgloss.Height(view)+lipgloss.Height(tbl)+1:
			view = lipgloss.JoinVertical(lipgloss.Left, view, tbl)
		}
	}

	return view + "\n" + helpStyle.Render(m.help.View(m.keys))
}

func init() {
	registry.Register("tui", func() registry.Frontend { return &Frontend{} })
}

// Frontend runs the console in the terminal.
type Frontend struct{}

func (f *Frontend) ID() string    { return "tui" }
func (f *Frontend) Title() string { return "Terminal" }

// Run builds the console and blocks until the player quits.
func (f *Frontend) Run(ctx context.Context, env registry.Env) error {
	layout := jewel.TerminalLayout()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		if w < layout.Width || h < layout.Height+1 {
			return fmt.Errorf("tui: terminal is %dx%d, need at least %dx%d",
				w, h, layout.Width, layout.Height+1)
		}
	}

	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var p *tea.Program
	opts := append([]console.Option{}, env.Console...)
	if env.Config.Audio.Bell {
		opts = append(opts, console.WithEngine(jewel.WithBuzzer(&bellBuzzer{w: os.Stdout})))
	}
	loop := console.NewLoop(func(f console.Frame) { p.Send(frameMsg(f)) }, opts...)

	model := NewModel(loop, NewKeyMap(env.Config.Keys), env.Config.TickPeriod(), logger.WithPrefix("tui"))
	p = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if err := loop.Run(ctx); err != nil {
			logger.Error("console stopped", "err", err)
		}
	}()

	_, err := p.Run()
	cancel()
	<-loopDone

	if cerr := loop.Close(); cerr != nil {
		logger.Warn("failed to close scoreboard", "err", cerr)
	}
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}

// bellBuzzer rings the terminal bell when a tone starts.
type bellBuzzer struct {
	mu sync.Mutex
	w  io.Writer
}

func (b *bellBuzzer) On() {
	b.mu.Lock()
	defer b.mu.Unlock()
	//nolint:errcheck // A missed bell is harmless
	io.WriteString(b.w, "\a")
}

func (b *bellBuzzer) Off() {}
