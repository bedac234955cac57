package topics

import (
	"errors"
	"fmt"
)

// ErrNetworkUnavailable is returned when the connectivity check reports
// no network before any request is attempted.
var ErrNetworkUnavailable = errors.New("network unavailable")

// ErrInvalidURL indicates the topic source URL is not syntactically
// valid. No network call was attempted.
type ErrInvalidURL struct {
	URL string
}

func (e *ErrInvalidURL) Error() string {
	return fmt.Sprintf("invalid topic source URL %q", e.URL)
}

// ErrTransport indicates the GET request failed: connection error,
// timeout, or a non-200 response.
type ErrTransport struct {
	Err error
}

func (e *ErrTransport) Error() string {
	return fmt.Sprintf("fetch topics: %v", e.Err)
}

func (e *ErrTransport) Unwrap() error { return e.Err }

// ErrDecode indicates the response body is not a valid topic feed:
// malformed JSON, a schema violation, or a correct-answer index that
// does not point into its question's answers.
type ErrDecode struct {
	Err error
}

func (e *ErrDecode) Error() string {
	return fmt.Sprintf("decode topics: %v", e.Err)
}

func (e *ErrDecode) Unwrap() error { return e.Err }
