package dictionary

import (
	"errors"
	"fmt"
)

var (
	ErrDuplicateKey       = errors.New("duplicate key")
	ErrCorrupt            = errors.New("dictionary table is corrupt: no empty slot within capacity probes")
	ErrOutOfMemory        = errors.New("out of memory")
	ErrZeroCapacity       = errors.New("dictionary capacity must be greater than zero")
	ErrDictionaryNotFound = errors.New("dictionary not found")
)

// DuplicateKeyError reports a word that appears more than once in an entry batch.
type DuplicateKeyError struct {
	Word      string
	Line      int
	FirstLine int
}

func (e *DuplicateKeyError) Error() string {
	if e.Line > 0 && e.FirstLine > 0 {
		return fmt.Sprintf("found duplicate: <%s> in line %d (first defined in line %d)", e.Word, e.Line, e.FirstLine)
	}
	if e.Line > 0 {
		return fmt.Sprintf("found duplicate: <%s> in line %d", e.Word, e.Line)
	}
	return fmt.Sprintf("found duplicate: <%s>", e.Word)
}

func (e *DuplicateKeyError) Unwrap() error {
	return ErrDuplicateKey
}
