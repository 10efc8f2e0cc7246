// Package counter is a terminal button that shows how often it was clicked.
package counter

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"rectlab/internal/geom"
)

const (
	originX = 4
	originY = 2
)

var (
	buttonStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#7C3AED")).
			Padding(1, 4).
			Bold(true)
	hintStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type keyMap struct {
	Press key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Press: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter/space", "click")),
	Quit:  key.NewBinding(key.WithKeys("q", "ctrl+c", "esc"), key.WithHelp("q", "quit")),
}

type Model struct {
	count int
}

func New() Model { return Model{} }

func (m Model) Count() int { return m.count }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, keys.Press):
			m.count++
		}
	case tea.MouseMsg:
		if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft &&
			m.buttonArea().ContainsPoint(geom.Pt(msg.X, msg.Y)) {
			m.count++
		}
	}
	return m, nil
}

func (m Model) button() string {
	return buttonStyle.Render(strconv.Itoa(m.count))
}

// buttonArea is the screen cells covered by the button, border included.
func (m Model) buttonArea() geom.Rect {
	b := m.button()
	return geom.R(originX, originY, originX+lipgloss.Width(b)-1, originY+lipgloss.Height(b)-1)
}

func (m Model) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		m.button(),
		"",
		hintStyle.Render(keys.Press.Help().Key+" "+keys.Press.Help().Desc+"  "+keys.Quit.Help().Key+" "+keys.Quit.Help().Desc),
	)
	return lipgloss.NewStyle().MarginLeft(originX).MarginTop(originY).Render(body)
}
