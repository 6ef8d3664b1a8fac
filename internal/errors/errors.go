// internal/errors/errors.go
package errors

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrFetchFailed matches any FetchError via errors.Is.
var ErrFetchFailed = errors.New("failed to fetch GitHub repositories")

// ErrHandleRequired is returned when a sync is requested without a GitHub username.
var ErrHandleRequired = &ValidationError{Fields: map[string]string{"handle": "GitHub username is required"}}

// FetchError is returned when the GitHub API does not answer a repository listing successfully.
// The message stays generic; the underlying cause is available through Unwrap.
type FetchError struct {
	Handle string
	Err    error
}

func (e *FetchError) Error() string {
	return ErrFetchFailed.Error()
}

func (e *FetchError) Unwrap() error {
	return e.Err
}

func (e *FetchError) Is(target error) bool {
	return target == ErrFetchFailed
}

// ValidationError reports user input that was rejected before any I/O happened.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	msgs := make([]string, 0, len(keys))
	for _, k := range keys {
		msgs = append(msgs, e.Fields[k])
	}
	return fmt.Sprintf("validation failed: %s", strings.Join(msgs, "; "))
}
