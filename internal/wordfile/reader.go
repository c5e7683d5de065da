// Package wordfile reads dictionaries written as "word:translation" lines.
package wordfile

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/afero"

	"github.com/at-ishikawa/wordsub/internal/dictionary"
	"github.com/at-ishikawa/wordsub/internal/validation"
)

var ErrMalformedLine = errors.New("wrong dictionary format")

// LineError reports the first malformed line of a dictionary file.
type LineError struct {
	Line   int
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("wrong dictionary format in line %d: %s", e.Line, e.Reason)
}

func (e *LineError) Unwrap() error {
	return ErrMalformedLine
}

type Reader struct {
	fs        afero.Fs
	validator *validation.Validator
}

func NewReader(fs afero.Fs) (*Reader, error) {
	v, err := validation.New()
	if err != nil {
		return nil, fmt.Errorf("validation.New > %w", err)
	}
	return &Reader{
		fs:        fs,
		validator: v,
	}, nil
}

// Read parses the dictionary file at path.
func (r *Reader) Read(path string) ([]dictionary.Entry, error) {
	file, err := r.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dictionary %s: %w", path, err)
	}
	defer func() {
		_ = file.Close()
	}()

	entries, err := r.Parse(file)
	if err != nil {
		return nil, err
	}
	slog.Debug("dictionary file read", "path", path, "entries", len(entries))
	return entries, nil
}

// Parse reads entries from src. Empty lines are skipped and the last line
// may omit its line feed. Lines are not length limited.
func (r *Reader) Parse(src io.Reader) ([]dictionary.Entry, error) {
	reader := bufio.NewReader(src)
	entries := make([]dictionary.Entry, 0)

	for lineNumber := 1; ; lineNumber++ {
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return nil, fmt.Errorf("read dictionary line %d: %w", lineNumber, readErr)
		}
		line = strings.TrimSuffix(line, "\n")

		if line != "" {
			entry, err := r.parseLine(line, lineNumber)
			if err != nil {
				return nil, err
			}
			entries = append(entries, entry)
		}

		if readErr != nil {
			return entries, nil
		}
	}
}

func (r *Reader) parseLine(line string, lineNumber int) (dictionary.Entry, error) {
	if colons := strings.Count(line, ":"); colons != 1 {
		return dictionary.Entry{}, &LineError{
			Line:   lineNumber,
			Reason: fmt.Sprintf("expected exactly one colon, found %d", colons),
		}
	}

	word, translation, _ := strings.Cut(line, ":")
	entry := dictionary.Entry{
		Word:        word,
		Translation: translation,
		Line:        lineNumber,
	}
	if messages := r.validator.Struct(entry); len(messages) > 0 {
		return dictionary.Entry{}, &LineError{
			Line:   lineNumber,
			Reason: strings.Join(messages, ", "),
		}
	}
	return entry, nil
}
