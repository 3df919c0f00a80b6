// Package gui runs Alien Invasion in a desktop window using Ebiten. The
// window shows the world at its configured pixel size, so keys report real
// presses and releases and the start button is clicked with the mouse.
package gui

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// Recorder stores finished games.
type Recorder interface {
	RecordGame(score, level int) error
}

// Options configures a window session.
type Options struct {
	TickRate int
	Sound    audio.Player // nil plays nothing
	Recorder Recorder     // nil keeps no history
	Logger   *log.Logger
}

// Game adapts a Controller to ebiten.Game.
type Game struct {
	ctrl  *invaders.Controller
	opts  Options
	prev  buttons
	frame core.InputFrame
	done  bool
}

// NewGame creates a window game driving ctrl.
func NewGame(ctrl *invaders.Controller, opts Options) *Game {
	if opts.TickRate <= 0 {
		opts.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Sound == nil {
		opts.Sound = audio.Mute{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return &Game{
		ctrl:  ctrl,
		opts:  opts,
		frame: core.NewInputFrame(),
	}
}

// Update samples input and advances the game by one frame.
func (g *Game) Update() error {
	cx, cy := ebiten.CursorPosition()
	if g.step(sampleButtons(), cx, cy) {
		return ebiten.Termination
	}
	return nil
}

// step runs one frame for the given input sample and cursor position.
// It reports whether the player asked to quit.
func (g *Game) step(cur buttons, cx, cy int) bool {
	quit, clicked := decodeIntents(g.prev, cur, &g.frame)
	g.prev = cur

	if quit {
		g.done = true
		g.frame.Clear()
		return true
	}
	if clicked && g.ctrl.OnStartButton(cx, cy) {
		g.frame.Add(core.IntentStart)
	}

	result := g.ctrl.Step(g.frame)
	g.frame.Clear()

	g.opts.Sound.HandleEvents(result.Events)
	for _, e := range result.Events {
		if e.Kind == invaders.EventGameOver {
			g.recordGame(e)
		}
	}
	return false
}

func (g *Game) recordGame(e invaders.Event) {
	if g.opts.Recorder == nil || e.Score <= 0 {
		return
	}
	if err := g.opts.Recorder.RecordGame(e.Score, e.Level); err != nil {
		g.opts.Logger.Warn("failed to record game", "err", err)
	}
}

// Layout keeps the logical screen at the world size; Ebiten scales it to the
// window.
func (g *Game) Layout(_, _ int) (int, int) {
	cfg := g.ctrl.Config()
	return cfg.Screen.Width, cfg.Screen.Height
}

// Done reports whether the player quit.
func (g *Game) Done() bool {
	return g.done
}

// Run opens the window and blocks until it is closed or the player quits.
// The high score is persisted on the way out.
func Run(ctrl *invaders.Controller, opts Options) error {
	g := NewGame(ctrl, opts)
	cfg := ctrl.Config()

	ebiten.SetWindowTitle("Alien Invasion")
	ebiten.SetWindowSize(cfg.Screen.Width, cfg.Screen.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(g.opts.TickRate)

	runErr := ebiten.RunGame(g)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}

	g.opts.Sound.Close()
	if err := ctrl.Shutdown(); err != nil {
		g.opts.Logger.Error("shutdown", "err", err)
	}
	return runErr
}
