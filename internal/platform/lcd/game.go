package lcd

import (
	"context"
	"fmt"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/jewel-legend/internal/console"
	"github.com/vovakirdan/jewel-legend/internal/games/jewel"
	"github.com/vovakirdan/jewel-legend/internal/ps2"
	"github.com/vovakirdan/jewel-legend/internal/registry"
)

// Game is the Ebitengine game hosting the console. Update runs on the
// window's thread at the tick rate and only posts to the console loop;
// Draw shows the latest published frame.
type Game struct {
	loop     *console.Loop
	keys     KeyMap
	bound    []ebiten.Key
	panel    *Panel
	renderer *jewel.Renderer
	tex      *ebiten.Image
	ctx      context.Context
	logger   *log.Logger

	mu    sync.Mutex
	frame console.Frame
	dirty bool
}

// NewGame creates the window game. Call SetLoop before running it.
func NewGame(ctx context.Context, keys KeyMap, logger *log.Logger) *Game {
	layout := jewel.PixelLayout()
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		keys:     keys,
		bound:    keys.Keys(),
		panel:    NewPanel(layout.Width, layout.Height),
		renderer: jewel.NewRenderer(layout),
		ctx:      ctx,
		logger:   logger,
		frame:    console.Frame{Snapshot: jewel.Snapshot{Phase: jewel.PhaseMenu}},
		dirty:    true,
	}
}

// SetLoop attaches the console loop.
func (g *Game) SetLoop(l *console.Loop) {
	g.loop = l
}

// Publish stores a frame for the next Draw. Safe from any goroutine.
func (g *Game) Publish(f console.Frame) {
	g.mu.Lock()
	g.frame = f
	g.dirty = true
	g.mu.Unlock()
}

// Update polls the keyboard and posts one tick pulse.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}

	for _, k := range g.bound {
		if !inpututil.IsKeyJustPressed(k) {
			continue
		}
		pad, button := g.keys.Lookup(k)
		switch button {
		case ButtonQuit:
			return ebiten.Termination
		case ButtonStart:
			g.loop.Post(console.CmdStart)
		case ButtonReset:
			g.loop.Post(console.CmdReset)
		case ButtonScreenshot:
			g.saveScreenshot()
		}
		if pad != ps2.KeyNone && !g.loop.PressKey(pad) {
			g.logger.Debug("keypad buffer full", "key", pad)
		}
	}

	if !g.loop.Post(console.CmdPulse) {
		g.logger.Debug("pulse dropped, console busy")
	}
	return nil
}

// paint renders the latest frame into the panel if it changed.
func (g *Game) paint() {
	g.mu.Lock()
	f, dirty := g.frame, g.dirty
	g.dirty = false
	g.mu.Unlock()

	if dirty {
		g.renderer.Render(g.panel, f.Snapshot)
	}
}

// Draw uploads the panel to the window.
func (g *Game) Draw(screen *ebiten.Image) {
	g.paint()
	if g.tex == nil {
		w, h := g.panel.Size()
		g.tex = ebiten.NewImage(w, h)
	}
	g.tex.WritePixels(g.panel.Pix())
	screen.DrawImage(g.tex, nil)
}

// Layout keeps the panel resolution; Ebitengine scales it to the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.panel.Size()
}

func (g *Game) saveScreenshot() {
	g.paint()

	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	dir := filepath.Join(home, ".jewel", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	ts := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("jewel_%s.png", ts))
	f, err := os.Create(path)
	if err != nil {
		g.logger.Warn("screenshot failed", "err", err)
		return
	}
	defer f.Close()
	if err := png.Encode(f, g.panel.Image()); err != nil {
		g.logger.Warn("screenshot failed", "err", err)
		return
	}
	g.logger.Info("screenshot saved", "path", path)
}

func init() {
	registry.Register("window", func() registry.Frontend { return &Frontend{} })
}

// Frontend runs the console in a desktop window.
type Frontend struct{}

func (f *Frontend) ID() string    { return "window" }
func (f *Frontend) Title() string { return "Window (240x320 LCD)" }

// Run opens the window and blocks until it is closed.
func (f *Frontend) Run(ctx context.Context, env registry.Env) error {
	logger := env.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	logger = logger.WithPrefix("lcd")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	cfg := env.Config
	game := NewGame(ctx, NewKeyMap(cfg.Keys), logger)

	wave := NewSquareWave(cfg.Audio.Frequency, cfg.Audio.Volume)
	player, err := audio.NewContext(SampleRate).NewPlayer(wave)
	if err != nil {
		logger.Warn("audio unavailable", "err", err)
	} else {
		player.SetBufferSize(40 * time.Millisecond)
		player.Play()
		defer player.Close()
	}

	opts := append([]console.Option{}, env.Console...)
	opts = append(opts, console.WithEngine(jewel.WithBuzzer(wave)))
	loop := console.NewLoop(game.Publish, opts...)
	game.SetLoop(loop)

	loopDone := make(chan struct{})
	go func() {
		defer close(loopDone)
		if err := loop.Run(ctx); err != nil {
			logger.Error("console stopped", "err", err)
		}
	}()

	scale := max(cfg.Display.Scale, 1)
	w, h := game.Layout(0, 0)
	ebiten.SetWindowTitle("Jewel Legend")
	ebiten.SetWindowSize(w*scale, h*scale)
	ebiten.SetTPS(int(time.Second / cfg.TickPeriod()))

	err = ebiten.RunGame(game)
	cancel()
	<-loopDone

	if cerr := loop.Close(); cerr != nil {
		logger.Warn("failed to close scoreboard", "err", cerr)
	}
	return err
}
