package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/tictactoe-cli/internal/console"
	"github.com/lox/tictactoe-cli/internal/game"
)

// TUIModel is the Bubble Tea model for a full-screen game. It drives
// the same Game and move parser as the plain console session.
type TUIModel struct {
	game     *game.Game
	renderer *console.Renderer
	logger   *log.Logger

	moveInput textinput.Model

	// State
	errLine  string
	quitting bool

	// Dimensions
	width  int
	height int

	// Test mode
	testMode    bool
	capturedLog []string
}

// NewTUIModel creates a new TUI model.
func NewTUIModel(g *game.Game, renderer *console.Renderer, logger *log.Logger) *TUIModel {
	return NewTUIModelWithOptions(g, renderer, logger, false)
}

// NewTUIModelWithOptions creates a new TUI model with test mode option
func NewTUIModelWithOptions(g *game.Game, renderer *console.Renderer, logger *log.Logger, testMode bool) *TUIModel {
	ti := textinput.New()
	ti.Placeholder = "1A"
	ti.Focus()
	ti.CharLimit = 4
	ti.Width = 20
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FAFAFA"))
	ti.Prompt = "> "

	return &TUIModel{
		game:        g,
		renderer:    renderer,
		logger:      logger.WithPrefix("tui"),
		moveInput:   ti,
		testMode:    testMode,
		capturedLog: []string{},
	}
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// Once the game is over any key leaves the result screen.
		if m.game.Finished() {
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		}

		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.logger.Debug("quit requested", "moves", m.game.Moves())
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			token := strings.TrimSpace(m.moveInput.Value())
			m.moveInput.SetValue("")
			switch token {
			case "":
				return m, nil
			case "q", "quit":
				m.quitting = true
				m.logger.Debug("quit requested", "moves", m.game.Moves())
				return m, tea.Sequence(tea.ClearScreen, tea.Quit)
			}
			m.submitMove(token)
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.moveInput, cmd = m.moveInput.Update(msg)
	return m, cmd
}

// submitMove parses a move token and applies it to the game, recording
// a message for the error line when the move is rejected.
func (m *TUIModel) submitMove(token string) {
	row, col, err := console.ParseMove(token)
	if err != nil {
		m.errLine = ErrorStyle.Render(fmt.Sprintf("Invalid move: '%s'. Please try again.", token))
		m.logger.Debug("rejected token", "token", token)
		m.capture(fmt.Sprintf("Invalid move: '%s'. Please try again.", token))
		return
	}

	mark := m.game.CurrentMark()
	if err := m.game.Move(row, col); err != nil {
		var occupied *game.OccupiedError
		if errors.As(err, &occupied) {
			msg := fmt.Sprintf("The square %s already has %s in it!", console.Square(row, col), occupied.Occupant)
			m.errLine = WarningStyle.Render(msg)
			m.capture(msg)
		} else {
			m.errLine = ErrorStyle.Render(err.Error())
			m.capture(err.Error())
		}
		m.logger.Debug("rejected move", "token", token, "err", err)
		return
	}

	m.errLine = ""
	square := console.Square(row, col)
	m.logger.Debug("move accepted", "square", square, "mark", mark)
	m.capture(fmt.Sprintf("%s played %s", mark, square))

	if outcome, ok := m.game.Outcome(); ok {
		m.logger.Info("game finished", "outcome", outcome, "moves", m.game.Moves())
		m.capture(fmt.Sprintf("game finished: %s", outcome))
	}
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(HeaderStyle.Render(" tictactoe "))
	b.WriteString("\n\n")
	b.WriteString(BoardStyle.Render(m.renderer.Render(m.game.Board())))
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n\n")

	if m.game.Finished() {
		b.WriteString(InfoStyle.Render("press any key to exit"))
	} else {
		b.WriteString(m.moveInput.View())
		b.WriteString("\n")
		if m.errLine != "" {
			b.WriteString(m.errLine)
			b.WriteString("\n")
		}
		b.WriteString(InfoStyle.Render("type a square like 1A • Enter to place • Esc to quit"))
	}

	content := b.String()
	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	return content
}

// statusLine renders whose turn it is, or the result once the game is
// finished.
func (m *TUIModel) statusLine() string {
	if outcome, ok := m.game.Outcome(); ok {
		switch outcome {
		case game.XWins:
			return SuccessStyle.Render("x wins!")
		case game.OWins:
			return SuccessStyle.Render("o wins!")
		default:
			return WarningStyle.Render("Tie!")
		}
	}

	mark := m.game.CurrentMark()
	return StatusStyle.Render("Current piece: ") + m.markStyle(mark).Render(mark.String())
}

func (m *TUIModel) markStyle(mark game.Mark) lipgloss.Style {
	if mark == game.X {
		return XStyle
	}
	return OStyle
}

// capture records an entry for test assertions (test mode only).
func (m *TUIModel) capture(entry string) {
	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
	}
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	// Return a copy to prevent modification
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}
