package play

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizterm/internal/ui/components"
	"quizterm/internal/ui/theme"
)

func (s *PlayScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("\n\n" + s.errMsg)
	}

	q, ok := s.session.CurrentQuestion()
	if !ok {
		return ""
	}

	var b strings.Builder

	// Position line + progress bar.
	info := fmt.Sprintf("  Question %d/%d", s.session.Index()+1, s.session.Total())
	scoreInfo := fmt.Sprintf("Score %d  ", s.session.Score())
	pad := width - lipgloss.Width(info) - lipgloss.Width(scoreInfo) - 4
	line := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(info)
	if pad > 0 {
		line += strings.Repeat(" ", pad) +
			lipgloss.NewStyle().Foreground(theme.TextDim).Render(scoreInfo)
	}
	b.WriteString(line)
	b.WriteString("\n")

	percent := float64(s.session.Index()) / float64(s.session.Total())
	bar := components.NewProgressBar("", percent, false, width-8)
	b.WriteString("  " + bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render(q.Text))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choices.View()))
	b.WriteString("\n")

	if s.feedback != nil {
		b.WriteString(s.renderFeedback(width))
	}

	return b.String()
}

// renderFeedback renders the graded-answer banner below the choices.
func (s *PlayScreen) renderFeedback(width int) string {
	var b strings.Builder

	if s.feedback.Correct {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Success).
			Bold(true).
			Render("Correct!"))
	} else {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Bold(true).
			Render(fmt.Sprintf("Incorrect — the answer is %q", s.feedback.CorrectAnswer)))
	}
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render("press any key to continue"))

	return b.String()
}
