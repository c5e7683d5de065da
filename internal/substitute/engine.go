// Package substitute streams text and replaces dictionary words with their translations.
//
// The input is split into tokens (maximal runs of ASCII letters) and separators
// (every other byte). Separators are copied unchanged. A token is looked up in
// lowercase; a known token is replaced by its translation, with the first byte
// uppercased when the token started with an uppercase letter, and an unknown
// token is written as <token>.
package substitute

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

const defaultOutputBufferBytes = 4096

type Options struct {
	// InitialBufferBytes is the starting size of the token buffer.
	InitialBufferBytes int
	// MaxTokenBytes caps token length; 0 means unbounded.
	MaxTokenBytes     int
	OutputBufferBytes int
}

// Engine substitutes words using a read-only dictionary.
type Engine struct {
	dict    Lookuper
	options Options
}

func NewEngine(dict Lookuper, options Options) *Engine {
	if options.InitialBufferBytes <= 0 {
		options.InitialBufferBytes = defaultInitialBufferBytes
	}
	if options.OutputBufferBytes <= 0 {
		options.OutputBufferBytes = defaultOutputBufferBytes
	}
	return &Engine{
		dict:    dict,
		options: options,
	}
}

// Result summarises one Process call.
type Result struct {
	Matched   int
	Unmatched int
	BytesIn   int64
	BytesOut  int64
}

// HadUnmatched reports whether at least one token was not in the dictionary.
func (r Result) HadUnmatched() bool {
	return r.Unmatched > 0
}

// Process copies r to w, substituting tokens on the way. It stops at the end
// of r or at the first fault; a token in progress is always written before
// Process returns, and output already written is flushed even on faults.
func (e *Engine) Process(r io.Reader, w io.Writer) (Result, error) {
	counter := &countingWriter{w: w}
	s := &stream{
		dict:  e.dict,
		in:    bufio.NewReader(r),
		out:   bufio.NewWriterSize(counter, e.options.OutputBufferBytes),
		token: newTokenBuffer(e.options.InitialBufferBytes, e.options.MaxTokenBytes),
		lower: newTokenBuffer(e.options.InitialBufferBytes, e.options.MaxTokenBytes),
	}

	err := s.run()
	if flushErr := s.out.Flush(); flushErr != nil && err == nil {
		err = fmt.Errorf("write output: %w", flushErr)
	}
	s.result.BytesOut = counter.n
	return s.result, err
}

type stream struct {
	dict   Lookuper
	in     *bufio.Reader
	out    *bufio.Writer
	token  *tokenBuffer
	lower  *tokenBuffer
	result Result
}

func (s *stream) run() error {
	for {
		c, err := s.in.ReadByte()
		if errors.Is(err, io.EOF) {
			return s.flushToken()
		}
		if err != nil {
			if flushErr := s.flushToken(); flushErr != nil {
				return flushErr
			}
			return fmt.Errorf("read input: %w", err)
		}
		offset := s.result.BytesIn
		s.result.BytesIn++

		if !isValid(c) {
			if err := s.flushToken(); err != nil {
				return err
			}
			return &InvalidByteError{Byte: c, Offset: offset}
		}

		if isLetter(c) {
			if err := s.token.push(c); err != nil {
				return err
			}
			continue
		}

		if err := s.flushToken(); err != nil {
			return err
		}
		if err := s.out.WriteByte(c); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
}

// flushToken writes the substitution of the pending token, if any.
func (s *stream) flushToken() error {
	if s.token.length() == 0 {
		return nil
	}
	defer s.token.reset()

	word := s.token.bytes()
	capitalized := isUpper(word[0])

	s.lower.reset()
	for _, c := range word {
		if err := s.lower.push(toLower(c)); err != nil {
			return err
		}
	}

	translation, found, err := s.dict.Lookup(string(s.lower.bytes()))
	if err != nil {
		return fmt.Errorf("look up %q: %w", s.lower.bytes(), err)
	}

	if !found {
		s.result.Unmatched++
		return s.write('<', string(word), '>')
	}

	s.result.Matched++
	if capitalized && translation != "" {
		return s.write(toUpper(translation[0]), translation[1:], 0)
	}
	_, err = s.out.WriteString(translation)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// write emits head, body and tail; a zero tail is skipped.
func (s *stream) write(head byte, body string, tail byte) error {
	if err := s.out.WriteByte(head); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if _, err := s.out.WriteString(body); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	if tail != 0 {
		if err := s.out.WriteByte(tail); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}
	return nil
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
