package play

import (
	tea "charm.land/bubbletea/v2"

	"quizterm/internal/quiz"
	"quizterm/internal/router"
	"quizterm/internal/screen"
	"quizterm/internal/screens/summary"
	"quizterm/internal/ui/components"
	"quizterm/internal/ui/layout"
)

// PlayScreen drives one quiz session: it shows the current question,
// submits the chosen answer, shows feedback, and advances — in strict
// alternation, the only call order the session accepts.
type PlayScreen struct {
	session  *quiz.Session
	choices  components.ChoiceList
	feedback *quiz.AnswerResult
	errMsg   string
}

var _ screen.Screen = (*PlayScreen)(nil)
var _ screen.KeyHintProvider = (*PlayScreen)(nil)

// New creates a PlayScreen for a fresh session over topic.
func New(topic quiz.Topic) *PlayScreen {
	s := &PlayScreen{session: quiz.NewSession(topic)}
	if q, ok := s.session.CurrentQuestion(); ok {
		s.choices = components.NewChoiceList(q.Answers)
	}
	return s
}

func (s *PlayScreen) Init() tea.Cmd {
	// A topic with no questions goes straight to the summary.
	if s.session.Finished() {
		return s.showSummary()
	}
	return nil
}

func (s *PlayScreen) Title() string {
	return s.session.Topic().Title
}

func (s *PlayScreen) KeyHints() []layout.KeyHint {
	if s.feedback != nil {
		return []layout.KeyHint{
			{Key: "any key", Description: "Continue"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Back to topics"},
	}
}

func (s *PlayScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.feedback != nil {
		return s.advance()
	}

	switch kmsg.String() {
	case "enter":
		return s.submit(s.choices.Selected)
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		choice := int(kmsg.String()[0] - '1')
		if choice < len(s.choices.Options) {
			return s.submit(choice)
		}
		return s, nil
	default:
		var cmd tea.Cmd
		s.choices, cmd = s.choices.Update(msg)
		return s, cmd
	}
}

// submit grades the chosen answer and switches to the feedback view.
func (s *PlayScreen) submit(choice int) (screen.Screen, tea.Cmd) {
	q, ok := s.session.CurrentQuestion()
	if !ok {
		return s, s.showSummary()
	}

	result, err := s.session.SubmitAnswer(choice)
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	s.feedback = &result
	s.choices.Lock(choice, q.CorrectIndex-1)
	return s, nil
}

// advance steps past the graded question, on to the next question or
// the summary screen.
func (s *PlayScreen) advance() (screen.Screen, tea.Cmd) {
	p, err := s.session.Advance()
	if err != nil {
		s.errMsg = err.Error()
		return s, nil
	}

	if p.Finished {
		return s, s.showSummary()
	}

	s.feedback = nil
	s.choices = components.NewChoiceList(p.Next.Answers)
	return s, nil
}

func (s *PlayScreen) showSummary() tea.Cmd {
	title := s.session.Topic().Title
	score, total := s.session.Score(), s.session.Total()
	return func() tea.Msg {
		// Replace keeps the stack depth so Esc from the summary lands
		// back on the topic list.
		return router.ReplaceScreenMsg{Screen: summary.New(title, score, total)}
	}
}
