package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kmensah/riddl/internal/game"
	"github.com/kmensah/riddl/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.confirmEnd {
		return renderConfirmEnd(width)
	}

	switch s.state.Phase {
	case game.PhasePlaying:
		return s.renderPlaying(width)
	case game.PhaseEnded:
		return s.renderEnded(width)
	}
	return s.renderNotStarted(width)
}

// renderPlaying shows the tally, the current riddle, and the answer input.
func (s *PlayScreen) renderPlaying(width int) string {
	var b strings.Builder

	tally := fmt.Sprintf("  Score %d   Answered %d   Correct %d (%d%%)",
		s.state.Score, s.state.TotalAnswered, s.state.CorrectAnswers, s.state.SuccessRate())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(tally))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	question := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(s.state.CurrentPrompt)
	b.WriteString(question)
	b.WriteString("\n\n")

	answerLine := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render("Answer: " + s.input.View())
	b.WriteString(answerLine)
	b.WriteString("\n\n")

	b.WriteString(s.renderStatus(width))
	return b.String()
}

// renderEnded shows the final tally.
func (s *PlayScreen) renderEnded(width int) string {
	var b strings.Builder

	title := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Bold(true).
		Render("Game over!")
	b.WriteString("\n")
	b.WriteString(title)
	b.WriteString("\n\n")

	tally := fmt.Sprintf("Final score %d   %d/%d correct (%d%%)",
		s.state.Score, s.state.CorrectAnswers, s.state.TotalAnswered, s.state.SuccessRate())
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(tally))
	b.WriteString("\n\n")

	b.WriteString(s.renderStatus(width))
	return b.String()
}

// renderNotStarted covers both the opening call and a failed begin.
func (s *PlayScreen) renderNotStarted(width int) string {
	if s.state.Busy {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("\n\nStarting a new game...")
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.renderStatus(width))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter to try again"))
	return b.String()
}

// renderStatus shows the last outcome message, or a waiting note while a
// call is in flight.
func (s *PlayScreen) renderStatus(width int) string {
	if s.state.Busy {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.TextDim).
			Render("Waiting for the server...")
	}
	if s.state.StatusMessage == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Accent).
		Render(s.state.StatusMessage)
}

func renderConfirmEnd(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("\n\nEnd this game and see your final score?\n\n[Y]es  [N]o")
}
