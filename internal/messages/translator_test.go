package messages

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordsub/internal/cli"
	"github.com/at-ishikawa/wordsub/internal/config"
	"github.com/at-ishikawa/wordsub/internal/database"
	"github.com/at-ishikawa/wordsub/internal/dictionary"
	"github.com/at-ishikawa/wordsub/internal/substitute"
	"github.com/at-ishikawa/wordsub/internal/wordfile"
)

func TestNewTranslator(t *testing.T) {
	tests := []struct {
		name    string
		locale  string
		want    string
		wantErr bool
	}{
		{name: "english", locale: "en", want: "en"},
		{name: "german", locale: "de", want: "de"},
		{name: "region subtag", locale: "de-AT", want: "de-AT"},
		{name: "malformed locale", locale: "not a locale", wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := NewTranslator(tc.locale)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Locale().String())
		})
	}
}

func TestTranslator_Describe(t *testing.T) {
	_, openErr := afero.NewMemMapFs().Open("/missing.txt")
	require.Error(t, openErr)

	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "usage",
			err:  cli.NewUsageError(errors.New("accepts 1 arg(s), received 0")),
			want: "usage error: accepts 1 arg(s), received 0",
		},
		{
			name: "malformed line",
			err:  fmt.Errorf("wordfile.Read > %w", &wordfile.LineError{Line: 1, Reason: "word can only contain alphabetic characters"}),
			want: "wrong dictionary format in line 1: word can only contain alphabetic characters",
		},
		{
			name: "duplicate with both lines",
			err:  &dictionary.DuplicateKeyError{Word: "cat", Line: 4, FirstLine: 2},
			want: "found duplicate: <cat> in line 4 (first defined in line 2)",
		},
		{
			name: "duplicate with one line",
			err:  &dictionary.DuplicateKeyError{Word: "cat", Line: 4},
			want: "found duplicate: <cat> in line 4",
		},
		{
			name: "duplicate without lines",
			err:  &dictionary.DuplicateKeyError{Word: "cat"},
			want: "found duplicate: <cat>",
		},
		{
			name: "invalid byte",
			err:  fmt.Errorf("process input: %w", &substitute.InvalidByteError{Byte: 0x01, Offset: 7}),
			want: "wrong input format due to non valid character 0x01 at offset 7",
		},
		{
			name: "token out of memory",
			err:  fmt.Errorf("token longer than 4 bytes: %w", substitute.ErrOutOfMemory),
			want: "out of memory: token longer than 4 bytes: out of memory",
		},
		{
			name: "table out of memory",
			err:  fmt.Errorf("allocate 3 slots: %w", dictionary.ErrOutOfMemory),
			want: "out of memory: allocate 3 slots: out of memory",
		},
		{
			name: "corrupt table",
			err:  fmt.Errorf("lookup %q: %w", "cat", dictionary.ErrCorrupt),
			want: "internal error: the dictionary table is corrupt",
		},
		{
			name: "dictionary not in database",
			err:  dictionary.ErrDictionaryNotFound,
			want: "dictionary not found in the database",
		},
		{
			name: "database unavailable",
			err:  fmt.Errorf("ping database: %w: %w", database.ErrUnavailable, errors.New("connection refused")),
			want: "cannot connect to the database: connection refused",
		},
		{
			name: "mysql error",
			err:  fmt.Errorf("select entries: %w", &mysql.MySQLError{Number: 1146, Message: "Table 'wordsub.dictionaries' doesn't exist"}),
			want: "database error 1146: Table 'wordsub.dictionaries' doesn't exist",
		},
		{
			name: "invalid config",
			err:  fmt.Errorf("%w: messages.locale must be one of [en de]", config.ErrInvalidConfig),
			want: "invalid configuration: messages.locale must be one of [en de]",
		},
		{
			name: "open failure",
			err:  fmt.Errorf("open dictionary %s: %w", "/missing.txt", openErr),
			want: "cannot open /missing.txt: file does not exist",
		},
		{
			name: "anything else",
			err:  errors.New("boom"),
			want: "error: boom",
		},
	}

	translator, err := NewTranslator("en")
	require.NoError(t, err)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, translator.Describe(tc.err))
		})
	}
}

func TestTranslator_Describe_German(t *testing.T) {
	translator, err := NewTranslator("de")
	require.NoError(t, err)

	assert.Equal(t,
		"Falsches Wörterbuchformat in Zeile 3: expected exactly one colon, found 2",
		translator.Describe(&wordfile.LineError{Line: 3, Reason: "expected exactly one colon, found 2"}),
	)
	assert.Equal(t,
		"Falsches Eingabeformat wegen ungültigem Zeichen 0x7f an Position 0",
		translator.Describe(&substitute.InvalidByteError{Byte: 0x7f}),
	)
}

func TestTranslator_Describe_Nil(t *testing.T) {
	translator, err := NewTranslator("en")
	require.NoError(t, err)
	assert.Empty(t, translator.Describe(nil))
}
