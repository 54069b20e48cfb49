package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/starapp/internal/domain"
)

type field int

const (
	fieldDay field = iota
	fieldMonth
	fieldYear
	fieldCount
)

var fieldLabels = [fieldCount]string{"Day", "Month", "Year"}

type model struct {
	theme Theme
	deps  Deps

	inputs [fieldCount]textinput.Model
	focus  field

	result *domain.Reading
	alert  string
	busy   bool
	width  int
}

func Run(deps Deps) error {
	m := newModel(deps)
	p := tea.NewProgram(wrapSafe(m, deps.Logger), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func newModel(deps Deps) model {
	m := model{
		theme: NewTheme(deps.Accent),
		deps:  deps,
	}

	specs := [fieldCount]struct {
		placeholder string
		limit       int
	}{
		{"DD", 2},
		{"MM", 2},
		{"YYYY", 4},
	}

	for i, s := range specs {
		ti := textinput.New()
		ti.Placeholder = s.placeholder
		ti.CharLimit = s.limit
		ti.Width = s.limit + 1
		ti.Prompt = ""
		ti.PlaceholderStyle = m.theme.Placeholder
		m.inputs[i] = ti
	}
	m.inputs[fieldDay].Focus()

	return m
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case readingRevealedMsg:
		m.busy = false
		if msg.input != m.input() {
			// Fields were edited or cleared while resolving.
			return m, nil
		}
		if msg.err != nil {
			// The alert blocks input; fields and any previous result stay as they were.
			m.alert = userMessage(msg.err)
			return m, nil
		}
		r := msg.reading
		m.result = &r
		return m, nil

	case tea.KeyMsg:
		if m.alert != "" {
			switch msg.String() {
			case "ctrl+c":
				return m, tea.Quit
			case "enter", "esc", " ":
				m.alert = ""
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit

		case "tab", "down":
			cmd := m.setFocus((m.focus + 1) % fieldCount)
			return m, cmd

		case "shift+tab", "up":
			cmd := m.setFocus((m.focus + fieldCount - 1) % fieldCount)
			return m, cmd

		case "enter":
			if m.busy {
				return m, nil
			}
			m.busy = true
			return m, cmdReveal(m.deps, m.input())

		case "ctrl+r":
			if m.canReset() {
				m.reset()
			}
			return m, nil
		}

		if msg.Type == tea.KeySpace || (len(msg.Runes) > 0 && !allDigits(msg.Runes)) {
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *model) setFocus(f field) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = f
	return m.inputs[f].Focus()
}

func (m model) input() domain.DateInput {
	return domain.DateInput{
		Day:   m.inputs[fieldDay].Value(),
		Month: m.inputs[fieldMonth].Value(),
		Year:  m.inputs[fieldYear].Value(),
	}
}

func (m model) canReset() bool {
	if m.result != nil {
		return true
	}
	for _, in := range m.inputs {
		if in.Value() != "" {
			return true
		}
	}
	return false
}

// reset clears the fields and the result. The resolver is not involved.
func (m *model) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
	}
	m.result = nil
	m.setFocus(fieldDay)
}

func allDigits(rs []rune) bool {
	for _, r := range rs {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (m model) View() string {
	wrap := lipgloss.NewStyle().Padding(1, 2)
	t := m.theme

	header := t.Title.Render("✨ StarApp")
	if m.canReset() {
		header += "   " + t.Clear.Render("Clear")
	}
	header += "\n" + t.Subtitle.Render("Discover Your Zodiac & Birthstone")

	var alert string
	if m.alert != "" {
		alert = renderAlert(t, m.alert)
	}

	var bottom string
	if m.result != nil {
		bottom = renderReading(t, *m.result)
	} else {
		bottom = t.Footer.Render("Enter your birth date to discover your cosmic identity")
	}

	help := t.Help.Render("tab/↑/↓ move • enter reveal • ctrl+r clear • esc quit")

	return wrap.Render(joinBlocks(header, m.viewInputCard(), alert, bottom, help))
}

func (m model) viewInputCard() string {
	t := m.theme

	cols := make([]string, 0, fieldCount)
	for i := range m.inputs {
		box := t.Input
		if field(i) == m.focus {
			box = t.InputFocused
		}
		cols = append(cols, lipgloss.JoinVertical(lipgloss.Left,
			t.Label.Render(fieldLabels[i]),
			box.Render(m.inputs[i].View()),
		))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, interleave(cols, "  ")...)

	label := "Reveal My Stars ✨"
	if m.busy {
		label = "Consulting the stars…"
	}

	return t.InputCard.Render(strings.Join([]string{
		t.InputTitle.Render("Enter Your Birth Date"),
		row,
		t.Button.Render(label),
	}, "\n"))
}
