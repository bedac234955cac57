package quiz

// Phase is the current phase of a session's state machine.
type Phase int

const (
	PhaseAwaitingAnswer Phase = iota // waiting for an answer to the current question
	PhaseShowingFeedback             // answer graded, feedback on display
	PhaseFinished                    // all questions answered and advanced past
)

// AnswerResult is the graded outcome of a single submitted answer.
type AnswerResult struct {
	Correct        bool
	SelectedAnswer string
	CorrectAnswer  string
}

// Progress reports the session position after an Advance call.
type Progress struct {
	Finished bool
	Next     Question // zero value when Finished
	Score    int
	Total    int
}

// Session tracks one user working through one topic's questions.
// Submit and advance must strictly alternate: SubmitAnswer grades the
// current question without moving on (feedback is shown first), Advance
// then steps to the next question or finishes the session.
//
// A Session is owned by a single presentation context and must not be
// used concurrently.
type Session struct {
	topic   Topic
	index   int
	answers []string
	score   int
	phase   Phase
}

// NewSession creates a session positioned at the topic's first question.
// A topic with no questions starts finished.
func NewSession(topic Topic) *Session {
	s := &Session{topic: topic}
	if len(topic.Questions) == 0 {
		s.phase = PhaseFinished
	}
	return s
}

// Topic returns the topic this session is playing.
func (s *Session) Topic() Topic { return s.topic }

// Phase returns the current state-machine phase.
func (s *Session) Phase() Phase { return s.phase }

// Index returns the 0-based position of the current question. Once the
// session is finished it equals Total.
func (s *Session) Index() int { return s.index }

// Score returns the number of correct answers so far.
func (s *Session) Score() int { return s.score }

// Total returns the number of questions in the topic.
func (s *Session) Total() int { return len(s.topic.Questions) }

// Finished reports whether all questions have been answered and advanced past.
func (s *Session) Finished() bool { return s.phase == PhaseFinished }

// RecordedAnswers returns the answer texts submitted so far, in question order.
func (s *Session) RecordedAnswers() []string { return s.answers }

// CurrentQuestion returns the question at the current position, or false
// if the session is finished.
func (s *Session) CurrentQuestion() (Question, bool) {
	if s.phase == PhaseFinished {
		return Question{}, false
	}
	return s.topic.Questions[s.index], true
}

// SubmitAnswer records and grades the answer for the current question.
// choice is a 0-based index into the question's answers. The session
// moves to the feedback phase; it does not advance to the next question.
func (s *Session) SubmitAnswer(choice int) (AnswerResult, error) {
	if s.phase == PhaseFinished {
		return AnswerResult{}, ErrSessionFinished
	}
	if s.phase == PhaseShowingFeedback {
		return AnswerResult{}, ErrNothingToGrade
	}

	q := s.topic.Questions[s.index]
	if choice < 0 || choice >= len(q.Answers) {
		return AnswerResult{}, ErrInvalidChoice
	}

	selected := q.Answers[choice]
	result := AnswerResult{
		Correct:        selected == q.CorrectAnswer(),
		SelectedAnswer: selected,
		CorrectAnswer:  q.CorrectAnswer(),
	}

	s.answers = append(s.answers, selected)
	if result.Correct {
		s.score++
	}
	s.phase = PhaseShowingFeedback

	return result, nil
}

// Advance moves past the current question once its feedback has been
// shown, stepping to the next question or finishing the session.
func (s *Session) Advance() (Progress, error) {
	if s.phase == PhaseFinished {
		return Progress{Finished: true, Score: s.score, Total: s.Total()}, nil
	}
	if s.phase != PhaseShowingFeedback {
		return Progress{}, ErrNothingToGrade
	}

	s.index++
	if s.index >= len(s.topic.Questions) {
		s.phase = PhaseFinished
		return Progress{Finished: true, Score: s.score, Total: s.Total()}, nil
	}

	s.phase = PhaseAwaitingAnswer
	return Progress{
		Next:  s.topic.Questions[s.index],
		Score: s.score,
		Total: s.Total(),
	}, nil
}
