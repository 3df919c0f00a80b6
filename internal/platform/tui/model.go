package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/audio"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/invaders"
)

// GameRecorder stores finished games.
type GameRecorder interface {
	RecordGame(score, level int) error
}

// Options configures a Model.
type Options struct {
	Runtime   core.RuntimeConfig
	HoldTicks int
	Sound     audio.Player // nil plays nothing
	Recorder  GameRecorder // nil keeps no history
	Logger    *log.Logger
	// ScreenshotDir receives ctrl+s screenshots; empty disables them.
	ScreenshotDir string
	// Embedded models hand control back to their owner on quit instead of
	// ending the program.
	Embedded bool
}

// Model is the Bubble Tea model running one Alien Invasion session.
type Model struct {
	ctrl     *invaders.Controller
	screen   *core.Screen
	keys     *KeyMapper
	frame    *core.InputFrame
	opts     Options
	loop     uint64
	quitting bool
}

// NewModel creates a Bubble Tea model driving ctrl.
func NewModel(ctrl *invaders.Controller, opts Options) Model {
	if opts.Runtime.TickRate <= 0 {
		opts.Runtime.TickRate = core.DefaultConfig().TickRate
	}
	if opts.Runtime.ScreenW <= 0 || opts.Runtime.ScreenH <= 0 {
		def := core.DefaultConfig()
		opts.Runtime.ScreenW, opts.Runtime.ScreenH = def.ScreenW, def.ScreenH
	}
	if opts.Sound == nil {
		opts.Sound = audio.Mute{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	frame := core.NewInputFrame()
	return Model{
		ctrl:   ctrl,
		screen: core.NewScreen(opts.Runtime.ScreenW, opts.Runtime.ScreenH),
		keys:   NewKeyMapper(opts.HoldTicks),
		frame:  &frame,
		opts:   opts,
		loop:   nextLoop(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickRate, m.loop)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Loop != m.loop {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKey(msg, m.frame) {
		return m.quit()
	}
	return m, nil
}

// handleMouse starts a game when the start button is clicked.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if !m.ctrl.Active() && m.ctrl.ButtonCells(m.screen).Contains(msg.X, msg.Y) {
		m.frame.Add(core.IntentStart)
	}
	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}
	m.keys.Tick(m.frame)

	result := m.ctrl.Step(*m.frame)
	m.frame.Clear()

	m.opts.Sound.HandleEvents(result.Events)
	for _, e := range result.Events {
		if e.Kind == invaders.EventGameOver {
			m.recordGame(e)
		}
	}

	return m, tickCmd(m.opts.Runtime.TickRate, m.loop)
}

func (m Model) recordGame(e invaders.Event) {
	if m.opts.Recorder == nil || e.Score <= 0 {
		return
	}
	if err := m.opts.Recorder.RecordGame(e.Score, e.Level); err != nil {
		m.opts.Logger.Warn("failed to record game", "err", err)
	}
}

// quit persists the high score and stops the program.
func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	if err := m.ctrl.Shutdown(); err != nil {
		m.opts.Logger.Error("shutdown", "err", err)
	}
	m.opts.Sound.Close()
	if m.opts.Embedded {
		return m, nil
	}
	return m, tea.Quit
}

// saveScreenshot saves the current screen to a text file.
func (m Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	m.ctrl.Render(m.screen)

	if err := os.MkdirAll(m.opts.ScreenshotDir, 0o755); err != nil {
		m.opts.Logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	filename := fmt.Sprintf("invaders_%s.txt", time.Now().Format("20060102_150405"))
	path := filepath.Join(m.opts.ScreenshotDir, filename)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	m.ctrl.Render(m.screen)
	return RenderScreen(m.screen)
}

// Quitting reports whether the player asked to quit.
func (m Model) Quitting() bool {
	return m.quitting
}

// Run starts the Bubble Tea program for ctrl and blocks until the player quits.
func Run(ctrl *invaders.Controller, opts Options) error {
	p := tea.NewProgram(
		NewModel(ctrl, opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
