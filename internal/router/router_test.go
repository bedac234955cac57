package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"quizterm/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                    { return s.title }
func (s *stubScreen) Title() string                           { return s.title }

func TestPush(t *testing.T) {
	r := New(&stubScreen{title: "topics"})

	s2 := &stubScreen{title: "play"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "play" {
		t.Errorf("expected active 'play', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	r := New(&stubScreen{title: "topics"})
	r.Push(&stubScreen{title: "play"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "topics" {
		t.Errorf("expected active 'topics', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	r := New(&stubScreen{title: "topics"})
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	r := New(&stubScreen{title: "play"})

	s2 := &stubScreen{title: "summary"}
	r.Replace(s2)

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after replace, got %d", r.Depth())
	}
	if r.Active().Title() != "summary" {
		t.Errorf("expected active 'summary', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on replaced screen")
	}
}

func TestNavigationMsgs(t *testing.T) {
	r := New(&stubScreen{title: "topics"})

	pushed := &stubScreen{title: "play"}
	r.Update(PushScreenMsg{Screen: pushed})
	if r.Active().Title() != "play" || !pushed.initRan {
		t.Fatalf("PushScreenMsg not handled: active %q", r.Active().Title())
	}

	replaced := &stubScreen{title: "summary"}
	r.Update(ReplaceScreenMsg{Screen: replaced})
	if r.Depth() != 2 || r.Active().Title() != "summary" || !replaced.initRan {
		t.Fatalf("ReplaceScreenMsg not handled: depth %d, active %q", r.Depth(), r.Active().Title())
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active().Title() != "topics" {
		t.Fatalf("PopScreenMsg not handled: depth %d, active %q", r.Depth(), r.Active().Title())
	}
}
