package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
	"github.com/vovakirdan/tui-invaders/internal/storage"
)

func newTestSession(t *testing.T, store *storage.Store) SessionModel {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	runtime := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60}
	return NewSessionModel(&cfg, store, runtime, "alice", 0, log.New(io.Discard))
}

func sendSession(m SessionModel, msg tea.Msg) (SessionModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(SessionModel), cmd
}

func TestMenuNavigation(t *testing.T) {
	m := NewMenuModel("bob", 1500, 80, 24)

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(MenuModel)
	if m.Selected() != MenuNone {
		t.Fatal("moving the cursor must not select")
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = next.(MenuModel)
	if m.Selected() != MenuScores {
		t.Errorf("Selected() = %v, want MenuScores", m.Selected())
	}

	if !strings.Contains(m.View(), "1,500") {
		t.Error("menu should show the player's best score")
	}
}

func TestSessionFlow(t *testing.T) {
	m := newTestSession(t, nil)

	if m.view != viewMenu {
		t.Fatal("session should open on the menu")
	}

	m, cmd := sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.view != viewGame || m.ctrl == nil {
		t.Fatal("play should open a game")
	}
	if cmd == nil {
		t.Error("game should start its tick loop")
	}

	m, _ = sendSession(m, runeKey('q'))
	if m.view != viewMenu {
		t.Fatal("quitting a game should return to the menu")
	}
	if m.ctrl != nil {
		t.Error("finished game should be released")
	}

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyTab})
	if m.view != viewScores {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(m.View(), "HIGH SCORES") {
		t.Error("scoreboard view missing title")
	}

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.view != viewMenu {
		t.Fatal("closing the scoreboard should return to the menu")
	}

	_, cmd = sendSession(m, runeKey('q'))
	if cmd == nil {
		t.Error("quit from the menu should end the session")
	}
}

func TestSessionTracksWindowSize(t *testing.T) {
	m := newTestSession(t, nil)

	m, _ = sendSession(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.runtime.ScreenW != 120 || m.runtime.ScreenH != 40 {
		t.Errorf("runtime size = %dx%d, want 120x40", m.runtime.ScreenW, m.runtime.ScreenH)
	}

	m, _ = sendSession(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.gameModel.screen.Width() != 120 {
		t.Errorf("game screen width = %d, want 120", m.gameModel.screen.Width())
	}
}

func TestSessionShowsProfileHighScore(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer store.Close()

	if err := store.ForProfile("alice").SaveHighScore(2500); err != nil {
		t.Fatalf("SaveHighScore() error = %v", err)
	}

	m := newTestSession(t, store)
	if !strings.Contains(m.View(), "2,500") {
		t.Error("menu should show alice's saved best")
	}
}
