package topiclist

import (
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizterm/internal/quiz"
	"quizterm/internal/screen"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testTopics() []quiz.Topic {
	return []quiz.Topic{
		{ID: "t1", Title: "Capitals", Description: "World capitals", Questions: []quiz.Question{
			{Text: "Capital of France?", Answers: []string{"Paris", "Lyon"}, CorrectIndex: 1},
		}},
		{ID: "t2", Title: "Flags", Description: "Flag trivia"},
	}
}

func testScreen() *TopicListScreen {
	return New(nil, "https://example.com/topics.json", time.Second)
}

func TestTopicListScreen_Title(t *testing.T) {
	s := testScreen()
	if s.Title() != "Topics" {
		t.Errorf("Title = %q, want %q", s.Title(), "Topics")
	}
}

func TestTopicListScreen_LoadedTopics(t *testing.T) {
	s := testScreen()
	s.loading = true
	s.fetchSeq = 1

	var scr screen.Screen = s
	scr, _ = scr.Update(topicsLoadedMsg{Seq: 1, Topics: testTopics()})
	ls := scr.(*TopicListScreen)

	if ls.loading {
		t.Error("expected loading to clear")
	}
	if len(ls.topics) != 2 {
		t.Errorf("topics = %d, want 2", len(ls.topics))
	}
	view := ls.View(80, 24)
	if !strings.Contains(view, "Capitals") {
		t.Errorf("expected topic title in view, got:\n%s", view)
	}
}

func TestTopicListScreen_StaleFetchDropped(t *testing.T) {
	s := testScreen()
	s.loading = true
	s.fetchSeq = 2

	var scr screen.Screen = s
	scr, _ = scr.Update(topicsLoadedMsg{Seq: 1, Topics: testTopics()})
	ls := scr.(*TopicListScreen)

	if !ls.loading {
		t.Error("expected stale result to leave the screen loading")
	}
	if len(ls.topics) != 0 {
		t.Error("expected stale topics to be dropped")
	}
}

func TestTopicListScreen_LoadError(t *testing.T) {
	s := testScreen()
	s.loading = true
	s.fetchSeq = 1

	var scr screen.Screen = s
	scr, _ = scr.Update(topicsLoadedMsg{Seq: 1, Err: errors.New("connection refused")})
	ls := scr.(*TopicListScreen)

	if ls.errMsg == "" {
		t.Error("expected error message to be set")
	}
	view := ls.View(80, 24)
	if !strings.Contains(view, "connection refused") {
		t.Errorf("expected error in view, got:\n%s", view)
	}
}

func TestTopicListScreen_EmptyFeed(t *testing.T) {
	s := testScreen()
	s.fetchSeq = 1

	var scr screen.Screen = s
	scr, _ = scr.Update(topicsLoadedMsg{Seq: 1, Topics: nil})
	ls := scr.(*TopicListScreen)

	view := ls.View(80, 24)
	if !strings.Contains(view, "no topics") {
		t.Errorf("expected empty-feed message, got:\n%s", view)
	}
}

func TestTopicListScreen_EditURL(t *testing.T) {
	s := testScreen()
	s.fetchSeq = 1

	var scr screen.Screen = s
	scr, _ = scr.Update(topicsLoadedMsg{Seq: 1, Topics: testTopics()})
	scr, _ = scr.Update(keyPress('e'))
	ls := scr.(*TopicListScreen)

	if !ls.editing {
		t.Fatal("expected e to open the URL editor")
	}
	if ls.input.Value() != "https://example.com/topics.json" {
		t.Errorf("editor seeded with %q, want current URL", ls.input.Value())
	}
}

func TestTopicListScreen_EditURL_EscCancels(t *testing.T) {
	s := testScreen()
	s.editing = true

	var scr screen.Screen = s
	scr, _ = scr.Update(specialKey(tea.KeyEscape))
	ls := scr.(*TopicListScreen)

	if ls.editing {
		t.Error("expected Esc to leave the editor")
	}
	if ls.url != "https://example.com/topics.json" {
		t.Errorf("url = %q, want the original URL kept", ls.url)
	}
}

func TestTopicListScreen_ReloadStartsFetch(t *testing.T) {
	s := testScreen()
	s.fetchSeq = 1

	var scr screen.Screen = s
	scr, _ = scr.Update(topicsLoadedMsg{Seq: 1, Topics: testTopics()})
	scr, cmd := scr.Update(keyPress('r'))
	ls := scr.(*TopicListScreen)

	if cmd == nil {
		t.Error("expected a fetch command on r")
	}
	if !ls.loading {
		t.Error("expected loading state after reload")
	}
	if ls.fetchSeq != 2 {
		t.Errorf("fetchSeq = %d, want 2", ls.fetchSeq)
	}
}

func TestTopicListScreen_KeyHints(t *testing.T) {
	s := testScreen()
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}

	s.editing = true
	hints := s.KeyHints()
	if len(hints) != 2 {
		t.Errorf("KeyHints while editing = %d, want 2", len(hints))
	}
}
