package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/at-ishikawa/wordsub/internal/dictionary"
)

// ImportDictionary parses path and stores its entries under name, replacing
// any entries stored under that name before. A batch that would not build
// into a dictionary is rejected before anything is written.
func ImportDictionary(
	ctx context.Context,
	source EntrySource,
	repository dictionary.EntryRepository,
	path string,
	name string,
	stdout io.Writer,
) error {
	entries, err := source.Entries(ctx, path)
	if err != nil {
		return err
	}
	if _, err := dictionary.Build(entries); err != nil {
		return fmt.Errorf("dictionary.Build > %w", err)
	}

	if err := repository.ReplaceDictionary(ctx, name, entries); err != nil {
		return fmt.Errorf("repository.ReplaceDictionary > %w", err)
	}
	slog.Info("dictionary imported", "dictionary", name, "file", path, "entries", len(entries))
	_, _ = color.New(color.FgGreen).Fprintf(stdout, "imported %d entries into %s\n", len(entries), name)
	return nil
}
