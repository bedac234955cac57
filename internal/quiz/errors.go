package quiz

import "errors"

// Session errors indicate a caller driving the session out of protocol
// (submit and advance must strictly alternate). They are programming
// errors in the presentation layer, not user-facing conditions.
var (
	// ErrInvalidChoice is returned when a submitted choice index is out of
	// range for the current question's answers.
	ErrInvalidChoice = errors.New("answer choice out of range")
	// ErrSessionFinished is returned when an answer is submitted after the
	// last question has been advanced past.
	ErrSessionFinished = errors.New("quiz session already finished")
	// ErrNothingToGrade is returned when the submit/advance alternation
	// is broken: Advance before an answer was submitted for the current
	// question, or a second submit before advancing.
	ErrNothingToGrade = errors.New("no answer submitted for the current question")
)
