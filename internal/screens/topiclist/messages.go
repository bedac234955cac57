package topiclist

import "quizterm/internal/quiz"

// topicsLoadedMsg is sent when a topic fetch completes. Seq identifies
// which fetch produced it so stale completions can be dropped.
type topicsLoadedMsg struct {
	Seq    int
	Topics []quiz.Topic
	Err    error
}
