package cli

import (
	"context"
	"fmt"

	"github.com/spf13/afero"

	"github.com/at-ishikawa/wordsub/internal/dictionary"
	"github.com/at-ishikawa/wordsub/internal/wordfile"
)

//go:generate mockgen -source=source.go -destination=../mocks/cli/mock_source.go -package=mock_cli EntrySource

// EntrySource produces the entry batch a dictionary is built from.
type EntrySource interface {
	Entries(ctx context.Context, name string) ([]dictionary.Entry, error)
}

// FileSource reads entries from a word:translation file; name is its path.
type FileSource struct {
	reader *wordfile.Reader
}

func NewFileSource(fs afero.Fs) (*FileSource, error) {
	reader, err := wordfile.NewReader(fs)
	if err != nil {
		return nil, fmt.Errorf("wordfile.NewReader > %w", err)
	}
	return &FileSource{reader: reader}, nil
}

func (s *FileSource) Entries(_ context.Context, path string) ([]dictionary.Entry, error) {
	entries, err := s.reader.Read(path)
	if err != nil {
		return nil, fmt.Errorf("wordfile.Reader.Read > %w", err)
	}
	return entries, nil
}

// DatabaseSource reads entries previously imported under a dictionary name.
type DatabaseSource struct {
	repository dictionary.EntryRepository
}

func NewDatabaseSource(repository dictionary.EntryRepository) *DatabaseSource {
	return &DatabaseSource{repository: repository}
}

func (s *DatabaseSource) Entries(ctx context.Context, name string) ([]dictionary.Entry, error) {
	entries, err := s.repository.FindByDictionary(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("repository.FindByDictionary > %w", err)
	}
	return entries, nil
}
