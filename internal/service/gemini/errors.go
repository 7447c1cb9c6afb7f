package gemini

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyRequest is returned before any network call when both the
	// message text and the attachment are absent.
	ErrEmptyRequest = errors.New("message and attachment are both empty")

	// ErrInvalidUpstreamResponse marks a reply that violates the upstream
	// contract: no candidate, no content, or no text part.
	ErrInvalidUpstreamResponse = errors.New("upstream response has no reply text")
)

// UpstreamError carries a non-success status from the generative-language
// API, or a transport failure (StatusCode 0).
type UpstreamError struct {
	StatusCode int
	Body       string
}

func (e *UpstreamError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("upstream request failed: %s", e.Body)
	}
	return fmt.Sprintf("upstream returned status %d: %s", e.StatusCode, e.Body)
}

// AttachmentError wraps a failure to extract text from a document
// attachment.
type AttachmentError struct {
	Filename string
	Err      error
}

func (e *AttachmentError) Error() string {
	return fmt.Sprintf("process attachment %q: %v", e.Filename, e.Err)
}

func (e *AttachmentError) Unwrap() error { return e.Err }
