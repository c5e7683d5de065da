package cli

import (
	"errors"
	"fmt"
)

// ErrUnmatchedWords is returned when processing succeeded but some words
// were not in the dictionary. It is an outcome, not a failure.
var ErrUnmatchedWords = errors.New("some words were not found in the dictionary")

// UsageError reports wrong command line arguments.
type UsageError struct {
	Detail string
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("usage: %s", e.Detail)
}

// NewUsageError wraps err as a usage error.
func NewUsageError(err error) error {
	return &UsageError{Detail: err.Error()}
}
