package quiz

// Topic is a named quiz unit: a title, a short description, and an
// ordered list of questions. Topics are immutable once decoded.
type Topic struct {
	ID          string
	Title       string
	Description string
	Questions   []Question
}

// Question is a single quiz item. Answers holds the options in
// presentation order. CorrectIndex is 1-based into Answers; the decoder
// guarantees 1 <= CorrectIndex <= len(Answers).
type Question struct {
	Text         string
	Answers      []string
	CorrectIndex int
}

// CorrectAnswer returns the text of the correct option.
func (q Question) CorrectAnswer() string {
	return q.Answers[q.CorrectIndex-1]
}
