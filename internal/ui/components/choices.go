package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"quizterm/internal/ui/theme"
)

// ChoiceList presents a question's answer options. Grading lives in the
// quiz session; after Lock the list only renders the graded state.
type ChoiceList struct {
	Options  []string
	Selected int

	locked       bool
	chosenIndex  int
	correctIndex int
}

// NewChoiceList creates a choice list over the given options.
func NewChoiceList(options []string) ChoiceList {
	return ChoiceList{
		Options:      options,
		chosenIndex:  -1,
		correctIndex: -1,
	}
}

// Init returns nil.
func (c ChoiceList) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation. Locked lists ignore input.
func (c ChoiceList) Update(msg tea.Msg) (ChoiceList, tea.Cmd) {
	if c.locked {
		return c, nil
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil
	}

	switch kmsg.String() {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	}

	return c, nil
}

// Lock freezes the list for feedback display. chosen and correct are
// 0-based indexes into Options.
func (c *ChoiceList) Lock(chosen, correct int) {
	c.locked = true
	c.chosenIndex = chosen
	c.correctIndex = correct
}

// Locked reports whether the list has been frozen for feedback.
func (c ChoiceList) Locked() bool {
	return c.locked
}

// View renders the options, highlighting selection or graded state.
func (c ChoiceList) View() string {
	var s string
	for i, opt := range c.Options {
		prefix := "  "
		if !c.locked && i == c.Selected {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		switch {
		case c.locked && i == c.correctIndex:
			s += lipgloss.NewStyle().Foreground(theme.Success).Bold(true).Render(line) + "\n"
		case c.locked && i == c.chosenIndex:
			s += lipgloss.NewStyle().Foreground(theme.Error).Bold(true).Render(line) + "\n"
		case c.locked:
			s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
		case i == c.Selected:
			s += lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line) + "\n"
		default:
			s += lipgloss.NewStyle().Foreground(theme.Text).Render(line) + "\n"
		}
	}
	return s
}
