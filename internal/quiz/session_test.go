package quiz

import (
	"errors"
	"testing"
)

func testTopic() Topic {
	return Topic{
		ID:          "t-1",
		Title:       "Geography",
		Description: "Capitals of the world",
		Questions: []Question{
			{Text: "Capital of France?", Answers: []string{"Lyon", "Paris", "Nice"}, CorrectIndex: 2},
			{Text: "Capital of Japan?", Answers: []string{"Tokyo", "Osaka"}, CorrectIndex: 1},
			{Text: "Capital of Peru?", Answers: []string{"Quito", "Lima", "Bogota", "Cusco"}, CorrectIndex: 2},
		},
	}
}

func TestNewSession_StartsAtFirstQuestion(t *testing.T) {
	topic := testTopic()
	s := NewSession(topic)

	q, ok := s.CurrentQuestion()
	if !ok {
		t.Fatal("expected a current question on a fresh session")
	}
	if q.Text != topic.Questions[0].Text {
		t.Errorf("CurrentQuestion = %q, want %q", q.Text, topic.Questions[0].Text)
	}
	if s.Phase() != PhaseAwaitingAnswer {
		t.Errorf("Phase = %v, want PhaseAwaitingAnswer", s.Phase())
	}
	if s.Index() != 0 || s.Score() != 0 {
		t.Errorf("Index = %d, Score = %d, want 0, 0", s.Index(), s.Score())
	}
}

func TestSession_GradesAnswers(t *testing.T) {
	s := NewSession(testTopic())

	result, err := s.SubmitAnswer(1) // "Paris", correct
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if !result.Correct {
		t.Error("expected correct grading for the right choice")
	}
	if result.SelectedAnswer != "Paris" || result.CorrectAnswer != "Paris" {
		t.Errorf("result = %+v, want Paris/Paris", result)
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1", s.Score())
	}

	if _, err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}

	result, err = s.SubmitAnswer(1) // "Osaka", wrong
	if err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if result.Correct {
		t.Error("expected incorrect grading for the wrong choice")
	}
	if result.SelectedAnswer != "Osaka" || result.CorrectAnswer != "Tokyo" {
		t.Errorf("result = %+v, want Osaka selected, Tokyo correct", result)
	}
	if s.Score() != 1 {
		t.Errorf("Score = %d, want 1 after a wrong answer", s.Score())
	}
}

func TestSession_FullRunReachesFinished(t *testing.T) {
	topic := testTopic()
	s := NewSession(topic)

	var last Progress
	for i := range topic.Questions {
		if _, err := s.SubmitAnswer(0); err != nil {
			t.Fatalf("SubmitAnswer #%d: %v", i, err)
		}
		p, err := s.Advance()
		if err != nil {
			t.Fatalf("Advance #%d: %v", i, err)
		}
		last = p
	}

	if !last.Finished || !s.Finished() {
		t.Fatal("expected session to be finished after answering every question")
	}
	if last.Total != len(topic.Questions) {
		t.Errorf("Total = %d, want %d", last.Total, len(topic.Questions))
	}
	if last.Score < 0 || last.Score > last.Total {
		t.Errorf("Score = %d out of bounds [0, %d]", last.Score, last.Total)
	}
	if got := len(s.RecordedAnswers()); got != len(topic.Questions) {
		t.Errorf("RecordedAnswers = %d entries, want %d", got, len(topic.Questions))
	}
}

func TestSession_AdvanceWithoutSubmit(t *testing.T) {
	s := NewSession(testTopic())

	if _, err := s.Advance(); !errors.Is(err, ErrNothingToGrade) {
		t.Errorf("Advance before any submit: err = %v, want ErrNothingToGrade", err)
	}

	if _, err := s.SubmitAnswer(0); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if _, err := s.Advance(); err != nil {
		t.Fatalf("Advance: %v", err)
	}
	if _, err := s.Advance(); !errors.Is(err, ErrNothingToGrade) {
		t.Errorf("double Advance: err = %v, want ErrNothingToGrade", err)
	}
}

func TestSession_SubmitTwiceWithoutAdvance(t *testing.T) {
	s := NewSession(testTopic())

	if _, err := s.SubmitAnswer(0); err != nil {
		t.Fatalf("SubmitAnswer: %v", err)
	}
	if _, err := s.SubmitAnswer(0); !errors.Is(err, ErrNothingToGrade) {
		t.Errorf("second submit without advance: err = %v, want ErrNothingToGrade", err)
	}
}

func TestSession_SubmitAfterFinished(t *testing.T) {
	topic := testTopic()
	s := NewSession(topic)
	for range topic.Questions {
		if _, err := s.SubmitAnswer(0); err != nil {
			t.Fatalf("SubmitAnswer: %v", err)
		}
		if _, err := s.Advance(); err != nil {
			t.Fatalf("Advance: %v", err)
		}
	}

	if _, err := s.SubmitAnswer(0); !errors.Is(err, ErrSessionFinished) {
		t.Errorf("submit after finish: err = %v, want ErrSessionFinished", err)
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("expected no current question after finish")
	}
}

func TestSession_InvalidChoice(t *testing.T) {
	s := NewSession(testTopic())

	for _, choice := range []int{-1, 3, 99} {
		if _, err := s.SubmitAnswer(choice); !errors.Is(err, ErrInvalidChoice) {
			t.Errorf("SubmitAnswer(%d): err = %v, want ErrInvalidChoice", choice, err)
		}
	}
	// A rejected choice must not consume the question.
	if s.Phase() != PhaseAwaitingAnswer {
		t.Errorf("Phase = %v after invalid choices, want PhaseAwaitingAnswer", s.Phase())
	}
	if len(s.RecordedAnswers()) != 0 {
		t.Errorf("RecordedAnswers = %d entries, want 0", len(s.RecordedAnswers()))
	}
}

func TestSession_EmptyTopicStartsFinished(t *testing.T) {
	s := NewSession(Topic{ID: "empty", Title: "Empty"})

	if !s.Finished() {
		t.Fatal("expected zero-question topic to start finished")
	}
	if _, ok := s.CurrentQuestion(); ok {
		t.Error("expected no current question")
	}
	if _, err := s.SubmitAnswer(0); !errors.Is(err, ErrSessionFinished) {
		t.Errorf("submit on empty topic: err = %v, want ErrSessionFinished", err)
	}
	p, err := s.Advance()
	if err != nil {
		t.Fatalf("Advance on finished session: %v", err)
	}
	if !p.Finished || p.Score != 0 || p.Total != 0 {
		t.Errorf("Progress = %+v, want finished 0/0", p)
	}
}
