package dictionary

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/at-ishikawa/wordsub/internal/database"
)

//go:generate mockgen -source=repository.go -destination=../mocks/dictionary/mock_repository.go -package=mock_dictionary EntryRepository

// EntryRepository stores entry batches under a dictionary name.
type EntryRepository interface {
	FindByDictionary(ctx context.Context, name string) ([]Entry, error)
	ReplaceDictionary(ctx context.Context, name string, entries []Entry) error
}

// DBEntryRepository implements EntryRepository using MySQL.
type DBEntryRepository struct {
	db *sqlx.DB
}

// NewDBEntryRepository creates a new DBEntryRepository.
func NewDBEntryRepository(db *sqlx.DB) *DBEntryRepository {
	return &DBEntryRepository{db: db}
}

// FindByDictionary returns the entries of the named dictionary in source order.
func (r *DBEntryRepository) FindByDictionary(ctx context.Context, name string) ([]Entry, error) {
	var count int
	if err := r.db.GetContext(ctx, &count, "SELECT COUNT(*) FROM dictionaries WHERE name = ?", name); err != nil {
		return nil, fmt.Errorf("db.GetContext(dictionaries) > %w", err)
	}
	if count == 0 {
		return nil, fmt.Errorf("%q: %w", name, ErrDictionaryNotFound)
	}

	entries := make([]Entry, 0)
	if err := r.db.SelectContext(ctx, &entries,
		"SELECT word, translation, source_line FROM dictionary_entries WHERE dictionary = ? ORDER BY source_line, word",
		name,
	); err != nil {
		return nil, fmt.Errorf("db.SelectContext(dictionary_entries) > %w", err)
	}
	return entries, nil
}

type entryRow struct {
	Dictionary  string `db:"dictionary"`
	Word        string `db:"word"`
	Translation string `db:"translation"`
	SourceLine  int    `db:"source_line"`
}

// ReplaceDictionary drops every stored entry of name and stores entries instead,
// all within one transaction.
func (r *DBEntryRepository) ReplaceDictionary(ctx context.Context, name string, entries []Entry) error {
	return database.RunInTx(ctx, r.db, func(ctx context.Context, tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO dictionaries (name, entry_count) VALUES (?, ?)
			ON DUPLICATE KEY UPDATE entry_count = VALUES(entry_count), imported_at = CURRENT_TIMESTAMP`,
			name, len(entries),
		); err != nil {
			return fmt.Errorf("tx.ExecContext(upsert dictionary) > %w", err)
		}
		if _, err := tx.ExecContext(ctx, "DELETE FROM dictionary_entries WHERE dictionary = ?", name); err != nil {
			return fmt.Errorf("tx.ExecContext(delete dictionary_entries) > %w", err)
		}

		for _, e := range entries {
			_, err := tx.NamedExecContext(ctx,
				"INSERT INTO dictionary_entries (dictionary, word, translation, source_line) VALUES (:dictionary, :word, :translation, :source_line)",
				entryRow{
					Dictionary:  name,
					Word:        e.Word,
					Translation: e.Translation,
					SourceLine:  e.Line,
				})
			if err != nil {
				return fmt.Errorf("insert dictionary entry %q: %w", e.Word, err)
			}
		}
		return nil
	})
}
