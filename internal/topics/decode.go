package topics

import (
	"encoding/json"
	"fmt"
	"strconv"
	"sync"

	"github.com/google/uuid"
	"github.com/santhosh-tekuri/jsonschema/v6"

	"quizterm/internal/quiz"
)

// rawTopic mirrors one topic in the feed payload.
type rawTopic struct {
	Title     string        `json:"title"`
	Desc      string        `json:"desc"`
	Questions []rawQuestion `json:"questions"`
}

// rawQuestion mirrors one question in the feed payload. Answer carries
// the 1-based index of the correct option as a decimal string.
type rawQuestion struct {
	Text    string   `json:"text"`
	Answer  string   `json:"answer"`
	Answers []string `json:"answers"`
}

var (
	feedSchemaOnce sync.Once
	feedSchema     *jsonschema.Schema
	feedSchemaErr  error
)

// compiledFeedSchema compiles the feed schema once and caches it.
func compiledFeedSchema() (*jsonschema.Schema, error) {
	feedSchemaOnce.Do(func() {
		// The jsonschema library expects a parsed JSON value (any), not
		// raw bytes. Marshal then unmarshal to get a clean representation.
		defBytes, err := json.Marshal(feedSchemaDefinition)
		if err != nil {
			feedSchemaErr = fmt.Errorf("marshal schema definition: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			feedSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://topic-feed.json"
		if err := c.AddResource(schemaURL, defParsed); err != nil {
			feedSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		feedSchema, feedSchemaErr = c.Compile(schemaURL)
	})
	return feedSchema, feedSchemaErr
}

// decodeTopics validates and decodes a topic feed payload. Any
// structural problem or answer-index violation rejects the whole
// payload with *ErrDecode; no partial topic list is returned.
func decodeTopics(data []byte) ([]quiz.Topic, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, &ErrDecode{Err: fmt.Errorf("invalid JSON: %w", err)}
	}

	schema, err := compiledFeedSchema()
	if err != nil {
		return nil, &ErrDecode{Err: fmt.Errorf("compile feed schema: %w", err)}
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, &ErrDecode{Err: fmt.Errorf("schema validation failed: %w", err)}
	}

	var raw []rawTopic
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ErrDecode{Err: err}
	}

	topics := make([]quiz.Topic, 0, len(raw))
	for _, rt := range raw {
		questions := make([]quiz.Question, 0, len(rt.Questions))
		for qi, rq := range rt.Questions {
			idx, err := strconv.Atoi(rq.Answer)
			if err != nil {
				return nil, &ErrDecode{Err: fmt.Errorf(
					"topic %q question %d: answer index %q is not a number", rt.Title, qi+1, rq.Answer)}
			}
			if idx < 1 || idx > len(rq.Answers) {
				return nil, &ErrDecode{Err: fmt.Errorf(
					"topic %q question %d: answer index %d out of range for %d answers",
					rt.Title, qi+1, idx, len(rq.Answers))}
			}
			questions = append(questions, quiz.Question{
				Text:         rq.Text,
				Answers:      rq.Answers,
				CorrectIndex: idx,
			})
		}
		topics = append(topics, quiz.Topic{
			ID:          uuid.New().String(),
			Title:       rt.Title,
			Description: rt.Desc,
			Questions:   questions,
		})
	}

	return topics, nil
}
