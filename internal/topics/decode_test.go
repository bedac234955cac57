package topics

import (
	"errors"
	"strings"
	"testing"
)

func TestDecodeTopics_RejectsBadPayloads(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantMsg string
	}{
		{
			name:    "malformed JSON",
			payload: "not-json",
			wantMsg: "invalid JSON",
		},
		{
			name:    "object instead of array",
			payload: `{"title": "Geography"}`,
			wantMsg: "schema validation failed",
		},
		{
			name:    "missing questions field",
			payload: `[{"title": "Geography", "desc": "d"}]`,
			wantMsg: "schema validation failed",
		},
		{
			name: "answer index not numeric",
			payload: `[{"title": "T", "desc": "d", "questions": [
				{"text": "q", "answer": "two", "answers": ["a", "b"]}]}]`,
			wantMsg: "schema validation failed",
		},
		{
			name: "answer index out of range",
			payload: `[{"title": "T", "desc": "d", "questions": [
				{"text": "q", "answer": "5", "answers": ["a", "b", "c", "d"]}]}]`,
			wantMsg: "out of range",
		},
		{
			name: "answer index zero",
			payload: `[{"title": "T", "desc": "d", "questions": [
				{"text": "q", "answer": "0", "answers": ["a", "b"]}]}]`,
			wantMsg: "out of range",
		},
		{
			name: "empty answers list",
			payload: `[{"title": "T", "desc": "d", "questions": [
				{"text": "q", "answer": "1", "answers": []}]}]`,
			wantMsg: "schema validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var decodeErr *ErrDecode
			_, err := decodeTopics([]byte(tt.payload))
			if !errors.As(err, &decodeErr) {
				t.Fatalf("err = %v, want *ErrDecode", err)
			}
			if !strings.Contains(err.Error(), tt.wantMsg) {
				t.Errorf("err = %q, want it to mention %q", err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestDecodeTopics_EmptyFeed(t *testing.T) {
	topics, err := decodeTopics([]byte(`[]`))
	if err != nil {
		t.Fatalf("decodeTopics: %v", err)
	}
	if len(topics) != 0 {
		t.Errorf("got %d topics, want 0", len(topics))
	}
}

func TestDecodeTopics_TopicWithNoQuestions(t *testing.T) {
	topics, err := decodeTopics([]byte(`[{"title": "T", "desc": "d", "questions": []}]`))
	if err != nil {
		t.Fatalf("decodeTopics: %v", err)
	}
	if len(topics) != 1 || len(topics[0].Questions) != 0 {
		t.Fatalf("got %+v, want one topic with zero questions", topics)
	}
}

func TestDecodeTopics_UniqueIDs(t *testing.T) {
	feed := `[
		{"title": "A", "desc": "d", "questions": []},
		{"title": "B", "desc": "d", "questions": []}
	]`
	topics, err := decodeTopics([]byte(feed))
	if err != nil {
		t.Fatalf("decodeTopics: %v", err)
	}
	if topics[0].ID == topics[1].ID {
		t.Errorf("topic IDs collide: %q", topics[0].ID)
	}
}
