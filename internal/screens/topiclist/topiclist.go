package topiclist

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"quizterm/internal/quiz"
	"quizterm/internal/router"
	"quizterm/internal/screen"
	"quizterm/internal/screens/play"
	"quizterm/internal/topics"
	"quizterm/internal/ui/components"
	"quizterm/internal/ui/layout"
)

// urlCharLimit caps the length of an edited source URL.
const urlCharLimit = 200

// TopicListScreen loads the topic feed and lets the user pick a topic
// or point the app at a different feed URL.
type TopicListScreen struct {
	repo    *topics.Repository
	timeout time.Duration

	url     string
	editing bool
	input   components.TextInput

	loading  bool
	fetchSeq int

	topics []quiz.Topic
	menu   components.Menu
	errMsg string
}

var _ screen.Screen = (*TopicListScreen)(nil)
var _ screen.KeyHintProvider = (*TopicListScreen)(nil)

// New creates a TopicListScreen that fetches from url on init.
func New(repo *topics.Repository, url string, timeout time.Duration) *TopicListScreen {
	return &TopicListScreen{repo: repo, url: url, timeout: timeout}
}

func (s *TopicListScreen) Init() tea.Cmd {
	return s.load()
}

func (s *TopicListScreen) Title() string {
	return "Topics"
}

func (s *TopicListScreen) KeyHints() []layout.KeyHint {
	if s.editing {
		return []layout.KeyHint{
			{Key: "Enter", Description: "Load"},
			{Key: "Esc", Description: "Cancel"},
		}
	}
	if s.errMsg != "" {
		return []layout.KeyHint{
			{Key: "R", Description: "Retry"},
			{Key: "E", Description: "Edit URL"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Start quiz"},
		{Key: "E", Description: "Edit URL"},
		{Key: "R", Description: "Reload"},
	}
}

// load kicks off an asynchronous fetch of the current URL. Each fetch
// carries a sequence number; only the newest one's result is applied,
// so racing fetches resolve to last-issued-wins.
func (s *TopicListScreen) load() tea.Cmd {
	s.loading = true
	s.errMsg = ""
	s.fetchSeq++

	seq := s.fetchSeq
	url := s.url
	timeout := s.timeout
	repo := s.repo

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		loaded, err := repo.Load(ctx, url)
		return topicsLoadedMsg{Seq: seq, Topics: loaded, Err: err}
	}
}

func (s *TopicListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case topicsLoadedMsg:
		return s.handleLoaded(msg)
	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.editing {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	return s, nil
}

func (s *TopicListScreen) handleLoaded(msg topicsLoadedMsg) (screen.Screen, tea.Cmd) {
	if msg.Seq != s.fetchSeq {
		return s, nil // stale fetch
	}

	s.loading = false
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}

	s.topics = msg.Topics
	s.menu = components.NewMenu(s.menuItems())
	return s, nil
}

func (s *TopicListScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.editing {
		switch msg.String() {
		case "enter":
			s.url = s.input.Value()
			s.editing = false
			return s, s.load()
		case "esc":
			s.editing = false
			return s, nil
		default:
			var cmd tea.Cmd
			s.input, cmd = s.input.Update(msg)
			return s, cmd
		}
	}

	switch msg.String() {
	case "e":
		s.editing = true
		s.input = components.NewTextInput("https://example.com/topics.json", s.url, urlCharLimit)
		return s, s.input.Init()
	case "r":
		return s, s.load()
	}

	if s.loading || s.errMsg != "" {
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

// menuItems builds one menu entry per loaded topic.
func (s *TopicListScreen) menuItems() []components.MenuItem {
	items := make([]components.MenuItem, 0, len(s.topics))
	for _, t := range s.topics {
		topic := t
		items = append(items, components.MenuItem{
			Label:  topic.Title,
			Detail: fmt.Sprintf("%s (%d questions)", topic.Description, len(topic.Questions)),
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: play.New(topic)}
				}
			},
		})
	}
	return items
}
