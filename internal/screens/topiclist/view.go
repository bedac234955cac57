package topiclist

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"quizterm/internal/ui/theme"
)

func (s *TopicListScreen) View(width, height int) string {
	if s.editing {
		return s.renderEditor(width, height)
	}
	if s.loading {
		return s.renderStatus(width, height,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Loading topics..."))
	}
	if s.errMsg != "" {
		return s.renderStatus(width, height,
			lipgloss.NewStyle().Foreground(theme.Error).Render(s.errMsg))
	}
	if len(s.topics) == 0 {
		return s.renderStatus(width, height,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("The feed has no topics."))
	}

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Pick a topic"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.menu.View()))
	b.WriteString("\n")
	b.WriteString(s.renderSourceLine(width))

	return b.String()
}

// renderStatus shows a single centered message with the source URL below.
func (s *TopicListScreen) renderStatus(width, height int, message string) string {
	content := message + "\n\n" + lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render(fmt.Sprintf("source: %s", s.url))
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Align(lipgloss.Center).Render(content))
}

func (s *TopicListScreen) renderEditor(width, height int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Text).
		Bold(true).
		Render("Topic feed URL"))
	b.WriteString("\n\n")
	b.WriteString(s.input.View())
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Italic(true).
		Render("Enter loads the feed, Esc keeps the current one"))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func (s *TopicListScreen) renderSourceLine(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Italic(true).
		Render(fmt.Sprintf("source: %s", s.url))
}
