package quiz

// ScoreMessage maps a final score to the summary message shown when a
// session completes. A zero-question topic counts as a perfect run.
func ScoreMessage(score, total int) string {
	percentage := 1.0
	if total > 0 {
		percentage = float64(score) / float64(total)
	}

	switch {
	case percentage >= 1.0:
		return "Perfect!"
	case percentage >= 0.9:
		return "Almost perfect!"
	case percentage >= 0.7:
		return "Great job!"
	case percentage >= 0.5:
		return "Not bad!"
	default:
		return "Keep practicing!"
	}
}
