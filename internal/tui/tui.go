package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/drawnumber/internal/game"
)

// Messages delivered to the model from the controller side
type (
	resultMsg    struct{ result game.Result }
	incorrectMsg struct{}
	errorMsg     struct{ message string }
)

// Model is the Bubble Tea model for the guessing game
type Model struct {
	logger   *log.Logger
	observer game.Observer

	logViewport viewport.Model
	input       textinput.Model

	entries       []string
	focusedPane   int // 0 = log, 1 = input
	quitRequested bool

	width, height int
}

// NewModel creates a new TUI model
func NewModel(logger *log.Logger) *Model {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Enter a number, 'reset' or 'quit'"
	ti.Focus()
	ti.CharLimit = 20
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(focusedBorder).Bold(true)
	ti.Prompt = "> "

	return &Model{
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		input:       ti,
		focusedPane: 1,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case resultMsg, incorrectMsg, errorMsg:
		m.apply(msg)
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitRequested = true
			return m, tea.Quit
		case "ctrl+r":
			return m, m.reset()
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.input.Focus()
			} else {
				m.focusedPane = 0
				m.input.Blur()
			}
			return m, nil
		case "enter":
			if m.focusedPane == 1 {
				value := m.input.Value()
				m.input.SetValue("")
				return m, m.submit(value)
			}
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.input, cmd = m.input.Update(msg)
		cmds = append(cmds, cmd)
	} else {
		m.logViewport, cmd = m.logViewport.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

// submit turns an input line into an observer call. Observer calls run as
// commands so they never block the update loop.
func (m *Model) submit(value string) tea.Cmd {
	input := strings.ToLower(strings.TrimSpace(value))
	switch input {
	case "":
		return nil
	case "reset", "r", "new":
		return m.reset()
	case "quit", "q", "exit":
		m.quitRequested = true
		return tea.Quit
	}

	n, err := strconv.Atoi(input)
	if err != nil {
		m.AddLogEntry(problemStyle.Render(fmt.Sprintf("Not a number: %s", value)))
		return nil
	}
	m.AddLogEntry(guessStyle.Render(fmt.Sprintf("You guessed %d", n)))
	return m.dispatch(func(o game.Observer) { o.NewAttempt(n) })
}

func (m *Model) reset() tea.Cmd {
	m.AddLogEntry(mutedStyle.Render("New number drawn"))
	return m.dispatch(func(o game.Observer) { o.ResetGame() })
}

func (m *Model) dispatch(call func(o game.Observer)) tea.Cmd {
	o := m.observer
	if o == nil {
		m.logger.Warn("No observer registered, dropping input")
		return nil
	}
	return func() tea.Msg {
		call(o)
		return nil
	}
}

// apply renders a controller broadcast into the log
func (m *Model) apply(msg tea.Msg) {
	switch msg := msg.(type) {
	case resultMsg:
		m.AddLogEntry(resultStyle(msg.result).Render(msg.result.Description()))
	case incorrectMsg:
		m.AddLogEntry(problemStyle.Render("Incorrect number, try again"))
	case errorMsg:
		m.AddLogEntry(problemStyle.Render("Warning: " + msg.message))
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	header := titleStyle.Render("Draw Number")

	inputContent := m.input.View() + "\n" + mutedStyle.Render(m.helpText())
	inputStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blurredBorder).
		Width(max(m.width-2, 1))
	if m.focusedPane == 1 {
		inputStyle = inputStyle.BorderForeground(focusedBorder)
	}

	logStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(blurredBorder).
		Width(m.logViewport.Width).
		Height(m.logViewport.Height)
	if m.focusedPane == 0 {
		logStyle = logStyle.BorderForeground(focusedBorder)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		logStyle.Render(m.logViewport.View()),
		inputStyle.Render(inputContent),
	)
}

func (m *Model) helpText() string {
	if m.focusedPane == 0 {
		return "Log focused: ↑↓ scroll, PgUp/PgDn, Tab to input"
	}
	return "Enter to guess • Ctrl+R new number • Tab to scroll log • Ctrl+C to quit"
}

// resize fits the log viewport between the header and the input pane
func (m *Model) resize() {
	// header (1) + log border (2) + input pane (2 lines + 2 border)
	m.logViewport.Width = max(m.width-2, 1)
	m.logViewport.Height = max(m.height-7, 1)
	m.input.Width = max(m.width-6, 1)
	m.logViewport.GotoBottom()
}

// AddLogEntry adds an entry to the game log
func (m *Model) AddLogEntry(entry string) {
	m.entries = append(m.entries, entry)
	m.logViewport.SetContent(strings.Join(m.entries, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// Entries returns a copy of the log entries
func (m *Model) Entries() []string {
	return append([]string(nil), m.entries...)
}
