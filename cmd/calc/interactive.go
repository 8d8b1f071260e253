package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/unbound-force/calc/internal/evaluate"
	"github.com/unbound-force/calc/internal/report"
	"github.com/unbound-force/calc/internal/taxonomy"
)

// keyMap defines keybindings for the interactive TUI. Printable keys
// are reserved for the input line.
type keyMap struct {
	Submit   key.Binding
	Clear    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Quit     key.Binding
	Help     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Quit, k.Help}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.Clear},
		{k.PageUp, k.PageDown},
		{k.Quit, k.Help},
	}
}

var defaultKeyMap = keyMap{
	Submit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "evaluate")),
	Clear:    key.NewBinding(key.WithKeys("ctrl+l"), key.WithHelp("ctrl+l", "clear history")),
	PageUp:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "scroll up")),
	PageDown: key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "scroll down")),
	Quit:     key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
	Help:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "help")),
}

// Styles for the TUI.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("63"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// Lines reserved around the history viewport: title plus blank line,
// input line, and help footer.
const (
	tuiHeaderHeight = 2
	tuiFooterHeight = 2
)

// replModel is the Bubble Tea model for the interactive calculator.
type replModel struct {
	opts     evaluate.Options
	history  []taxonomy.Calculation
	input    textinput.Model
	viewport viewport.Model
	help     help.Model
	keys     keyMap
	ready    bool
}

func newReplModel(opts evaluate.Options) replModel {
	ti := textinput.New()
	ti.Prompt = "calc> "
	ti.Placeholder = "3 * 4"
	ti.Focus()

	return replModel{
		opts:  opts,
		input: ti,
		help:  help.New(),
		keys:  defaultKeyMap,
	}
}

// renderHistory renders every evaluated expression, oldest first.
func renderHistory(history []taxonomy.Calculation) string {
	if len(history) == 0 {
		return statusStyle.Render("Type an expression such as 3 * 4 or 10 / 2 and press enter.")
	}

	s := report.DefaultStyles()
	var sb strings.Builder
	for i, c := range history {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(report.FormatLine(c, s))
	}
	return sb.String()
}

func (m replModel) title() string {
	failed := 0
	for _, c := range m.history {
		if c.Failed() {
			failed++
		}
	}
	return titleStyle.Render(fmt.Sprintf("calc (%s mode): %d evaluated, %d failed",
		modeOrDefault(m.opts.Mode), len(m.history), failed))
}

func modeOrDefault(mode taxonomy.Mode) taxonomy.Mode {
	if mode == "" {
		return taxonomy.ModeFloat
	}
	return mode
}

func (m replModel) Init() tea.Cmd {
	return textinput.Blink
}

// submit evaluates the current input line and appends the outcome to
// the history. Blank input is ignored.
func (m replModel) submit() replModel {
	line := strings.TrimSpace(m.input.Value())
	if line == "" {
		return m
	}
	m.history = append(m.history, evaluate.EvaluateExpression(line, m.opts))
	m.input.Reset()
	m.refresh()
	return m
}

// refresh pushes the rendered history into the viewport and scrolls
// to the newest entry.
func (m *replModel) refresh() {
	if !m.ready {
		return
	}
	m.viewport.SetContent(renderHistory(m.history))
	m.viewport.GotoBottom()
}

func (m replModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		height := msg.Height - tuiHeaderHeight - tuiFooterHeight - 1
		if height < 1 {
			height = 1
		}
		if !m.ready {
			m.viewport = viewport.New(msg.Width, height)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = height
		}
		m.help.Width = msg.Width
		m.refresh()
		return m, nil

	case tea.MouseMsg:
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Submit):
			return m.submit(), nil
		case key.Matches(msg, m.keys.Clear):
			m.history = nil
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
	}

	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m replModel) View() string {
	if !m.ready {
		return "Initializing..."
	}

	return m.title() + "\n\n" +
		m.viewport.View() + "\n" +
		m.input.View() + "\n\n" +
		m.help.View(m.keys)
}

// runInteractive launches the Bubble Tea calculator session.
func runInteractive(opts evaluate.Options) error {
	p := tea.NewProgram(newReplModel(opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
