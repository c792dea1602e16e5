// Package tui implements the interactive bowling scorer on top of
// bubbletea.
package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/scorecounter/internal/bowling"
	"github.com/lox/scorecounter/internal/scoreboard"
)

// LogSize is the number of messages kept in the log pane
const LogSize = 10

// Model is the bubbletea model of a single game
type Model struct {
	engine *bowling.Engine
	rng    *rand.Rand
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	pinInput    textinput.Model

	// State
	messages  []string
	lastError string
	done      bool
	quitting  bool

	width  int
	height int
}

// NewModel creates a model that plays the engine's game. rng supplies pin
// counts when the prompt is left blank.
func NewModel(engine *bowling.Engine, rng *rand.Rand, logger *log.Logger) *Model {
	vp := viewport.New(scoreboard.Width(engine.Sessions()), LogSize)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "0-10"
	ti.Focus()
	ti.CharLimit = 2
	ti.Width = 5
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &Model{
		engine:      engine,
		rng:         rng,
		logger:      logger.WithPrefix("tui"),
		logViewport: vp,
		pinInput:    ti,
	}
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logViewport.Width = max(10, min(msg.Width-2, scoreboard.Width(m.engine.Sessions())))
		m.logger.Debug("Updated dimensions", "width", m.width, "height", m.height)
		return m, nil

	case tea.KeyMsg:
		switch {
		case msg.String() == "ctrl+c" || msg.String() == "esc":
			return m.quit()
		case m.done:
			return m.quit()
		case msg.Type == tea.KeyEnter:
			m.submit(strings.TrimSpace(m.pinInput.Value()))
			m.pinInput.SetValue("")
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.pinInput, cmd = m.pinInput.Update(msg)
	return m, cmd
}

// View renders the score sheet, the log and the prompt
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(scoreboard.Render(m.engine))
	b.WriteString("\n")

	b.WriteString(LogPaneStyle.Render(m.logViewport.View()))
	b.WriteString("\n")

	if m.lastError != "" {
		b.WriteString(ErrorStyle.Render(m.lastError))
		b.WriteString("\n")
	}

	if m.done {
		b.WriteString(scoreboard.Standings(m.engine))
		b.WriteString(HelpStyle.Render("Press any key to exit"))
		return b.String()
	}

	b.WriteString(m.prompt())
	b.WriteString("\n")
	b.WriteString(m.pinInput.View())
	b.WriteString("\n")
	b.WriteString(HelpStyle.Render("enter: roll • ctrl+c/esc: quit"))
	return b.String()
}

// Done reports whether the game has finished
func (m *Model) Done() bool {
	return m.done
}

// Messages returns the lines currently shown in the log pane
func (m *Model) Messages() []string {
	out := make([]string, len(m.messages))
	copy(out, m.messages)
	return out
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Sequence(tea.ClearScreen, tea.Quit)
}

func (m *Model) prompt() string {
	player, err := m.engine.GetCurrentPlayer()
	if err != nil {
		return ""
	}
	style := scoreboard.PlayerStyle(player.Color)
	return style.Render(fmt.Sprintf("[%s] Frame %d:", player.Name, m.engine.CurrentFrame())) +
		MessageStyle.Render(" Your turn (enter number of pins knocked down, or enter for random): ")
}

// submit parses the prompt input and plays it. Input the engine would reject
// is reported without touching the game.
func (m *Model) submit(input string) {
	player, err := m.engine.GetCurrentPlayer()
	if err != nil {
		m.done = m.engine.IsOver()
		return
	}

	pins, err := parsePins(input, m.engine.RemainingPins(), m.rng)
	if err != nil {
		m.lastError = invalidInput(err)
		return
	}
	m.lastError = ""

	frame := m.engine.CurrentFrame()
	outcome, err := m.engine.SubmitTurn(pins)
	if err != nil {
		m.logger.Error("Engine rejected submission", "player", player.Name, "pins", pins, "error", err)
		m.lastError = err.Error()
		return
	}

	style := scoreboard.PlayerStyle(player.Color)
	m.addMessage(style.Render(fmt.Sprintf("[%s] Frame %d: %d", player.Name, frame, pins)))

	var winner bowling.Standing
	if outcome == bowling.GameOver {
		winner = m.engine.Winner()
		m.done = true
	}
	text := announce(outcome, player, frame, pins, m.engine.RemainingPins(), winner)
	if m.done {
		m.addMessage(GameOverStyle.Render(text))
	} else {
		m.addMessage(MessageStyle.Render(text))
	}

	m.logger.Debug("Roll played", "player", player.Name, "frame", frame, "pins", pins, "outcome", outcome)
}

func (m *Model) addMessage(text string) {
	m.messages = append(m.messages, text)
	if len(m.messages) > LogSize {
		m.messages = m.messages[len(m.messages)-LogSize:]
	}
	m.logViewport.SetContent(strings.Join(m.messages, "\n"))
	m.logViewport.GotoBottom()
}
