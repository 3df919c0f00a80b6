package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// MenuChoice is an entry of the session menu.
type MenuChoice int

const (
	MenuNone MenuChoice = iota
	MenuPlay
	MenuScores
	MenuQuit
)

var menuItems = []struct {
	choice MenuChoice
	title  string
}{
	{MenuPlay, "Play"},
	{MenuScores, "High Scores"},
	{MenuQuit, "Quit"},
}

// MenuModel is the Bubble Tea model for the session menu shown to SSH
// players before and between games.
type MenuModel struct {
	cursor   int
	width    int
	height   int
	username string
	hiScore  int
	selected MenuChoice
}

// NewMenuModel creates a new menu model.
func NewMenuModel(username string, hiScore, width, height int) MenuModel {
	return MenuModel{
		width:    width,
		height:   height,
		username: username,
		hiScore:  hiScore,
	}
}

// Init initializes the menu model.
func (m MenuModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the menu. It never quits the program; the
// owner reads Selected and acts on it.
func (m MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			m.selected = MenuQuit
		case "up", "w", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "s", "j":
			if m.cursor < len(menuItems)-1 {
				m.cursor++
			}
		case "tab":
			m.selected = MenuScores
		case "enter", " ":
			m.selected = menuItems[m.cursor].choice
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	}

	return m, nil
}

// View renders the menu.
func (m MenuModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	activeStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("  A L I E N   I N V A S I O N  "), m.width))
	b.WriteString("\n\n")

	greeting := "Welcome, " + m.username
	if m.hiScore > 0 {
		greeting += "  |  your best: " + humanize.Comma(int64(m.hiScore))
	}
	b.WriteString(centerText(dimStyle.Render(greeting), m.width))
	b.WriteString("\n\n")

	for i, item := range menuItems {
		line := "  " + item.title
		if i == m.cursor {
			line = activeStyle.Render("> " + item.title)
		}
		b.WriteString(centerText(line, m.width))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	controls := "Up/Down: Navigate  |  Enter: Select  |  Tab: Scores  |  Q: Quit"
	b.WriteString(centerText(dimStyle.Render(controls), m.width))
	b.WriteString("\n")

	return b.String()
}

// Selected returns the chosen entry, or MenuNone while the player is still
// navigating.
func (m MenuModel) Selected() MenuChoice {
	return m.selected
}
