package substitute

import "fmt"

const defaultInitialBufferBytes = 1024

// tokenBuffer accumulates the bytes of one token. Its backing array doubles
// whenever it is full, up to limit bytes when limit is positive.
type tokenBuffer struct {
	data  []byte
	n     int
	limit int
}

func newTokenBuffer(initial, limit int) *tokenBuffer {
	if initial <= 0 {
		initial = defaultInitialBufferBytes
	}
	if limit > 0 && initial > limit {
		initial = limit
	}
	return &tokenBuffer{
		data:  make([]byte, initial),
		limit: limit,
	}
}

func (b *tokenBuffer) push(c byte) error {
	if b.n == len(b.data) {
		if err := b.grow(); err != nil {
			return err
		}
	}
	b.data[b.n] = c
	b.n++
	return nil
}

func (b *tokenBuffer) grow() error {
	size := len(b.data) * 2
	if b.limit > 0 && size > b.limit {
		if len(b.data) >= b.limit {
			return fmt.Errorf("token longer than %d bytes: %w", b.limit, ErrOutOfMemory)
		}
		size = b.limit
	}
	if size <= len(b.data) {
		return fmt.Errorf("grow token buffer beyond %d bytes: %w", len(b.data), ErrOutOfMemory)
	}

	grown := make([]byte, size)
	copy(grown, b.data[:b.n])
	b.data = grown
	return nil
}

func (b *tokenBuffer) bytes() []byte {
	return b.data[:b.n]
}

func (b *tokenBuffer) length() int {
	return b.n
}

func (b *tokenBuffer) capacity() int {
	return len(b.data)
}

func (b *tokenBuffer) reset() {
	b.n = 0
}
