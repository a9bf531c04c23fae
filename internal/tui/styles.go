package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lox/drawnumber/internal/game"
)

const (
	colorText   = lipgloss.Color("#FAFAFA")
	colorAccent = lipgloss.Color("#7D56F4")
	colorWin    = lipgloss.Color("#96CEB4")
	colorLoss   = lipgloss.Color("#FF6B6B")
	colorHint   = lipgloss.Color("#FFEAA7")
	colorMuted  = lipgloss.Color("#626262")

	focusedBorder = lipgloss.Color("#04B575")
	blurredBorder = colorMuted
)

var (
	titleStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorAccent).Padding(0, 1).Bold(true)
	guessStyle = lipgloss.NewStyle().Foreground(colorText)
	mutedStyle = lipgloss.NewStyle().Foreground(colorMuted)

	// problemStyle marks rejected input and warnings from the controller
	problemStyle = lipgloss.NewStyle().Foreground(colorLoss)

	resultStyles = map[game.Result]lipgloss.Style{
		game.TooLow:        lipgloss.NewStyle().Foreground(colorHint).Bold(true),
		game.TooHigh:       lipgloss.NewStyle().Foreground(colorHint).Bold(true),
		game.Correct:       lipgloss.NewStyle().Foreground(colorWin).Bold(true),
		game.OutOfAttempts: lipgloss.NewStyle().Foreground(colorLoss).Bold(true),
	}
)

func resultStyle(r game.Result) lipgloss.Style {
	if s, ok := resultStyles[r]; ok {
		return s
	}
	return guessStyle
}
