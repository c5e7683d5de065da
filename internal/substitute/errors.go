package substitute

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput = errors.New("wrong input format due to non valid character")
	ErrOutOfMemory  = errors.New("out of memory")
)

// InvalidByteError reports a byte that is neither printable ASCII nor a line feed.
type InvalidByteError struct {
	Byte   byte
	Offset int64
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("invalid input byte 0x%02x at offset %d", e.Byte, e.Offset)
}

func (e *InvalidByteError) Unwrap() error {
	return ErrInvalidInput
}
