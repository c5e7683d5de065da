package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/at-ishikawa/wordsub/internal/dictionary"
	mock_cli "github.com/at-ishikawa/wordsub/internal/mocks/cli"
	"github.com/at-ishikawa/wordsub/internal/substitute"
	"github.com/at-ishikawa/wordsub/internal/wordfile"
)

const germanDictionary = "cat:katze\ndog:hund\n"

func newTestCLI(t *testing.T, dictionaryContent string, stdin string) (*WordsubCLI, *bytes.Buffer) {
	t.Helper()
	source, err := NewFileSource(newMemFs(t, map[string]string{"/german.txt": dictionaryContent}))
	require.NoError(t, err)

	var stdout bytes.Buffer
	cli := NewWordsubCLI(source, substitute.Options{}).WithIO(strings.NewReader(stdin), &stdout)
	return cli, &stdout
}

func TestWordsubCLI_RunTranslate(t *testing.T) {
	tests := []struct {
		name       string
		dictionary string
		stdin      string
		want       string
		wantErrIs  error
	}{
		{
			name:       "every word matched",
			dictionary: germanDictionary,
			stdin:      "Cat, dog.\n",
			want:       "Katze, hund.\n",
		},
		{
			name:       "unmatched words",
			dictionary: germanDictionary,
			stdin:      "Cats and Dogs run.\n",
			want:       "<Cats> <and> <Dogs> <run>.\n",
			wantErrIs:  ErrUnmatchedWords,
		},
		{
			name:       "malformed dictionary produces no output",
			dictionary: "cat:katze\n1dog:hund\n",
			stdin:      "cat\n",
			want:       "",
			wantErrIs:  wordfile.ErrMalformedLine,
		},
		{
			name:       "duplicate word",
			dictionary: "cat:katze\ndog:hund\ncat:mieze\n",
			stdin:      "cat\n",
			want:       "",
			wantErrIs:  dictionary.ErrDuplicateKey,
		},
		{
			name:       "invalid input byte",
			dictionary: "a:x\nb:y\n",
			stdin:      "a\x01b\n",
			want:       "x",
			wantErrIs:  substitute.ErrInvalidInput,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cli, stdout := newTestCLI(t, tc.dictionary, tc.stdin)

			err := cli.RunTranslate(context.Background(), "/german.txt")
			if tc.wantErrIs != nil {
				assert.ErrorIs(t, err, tc.wantErrIs)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, stdout.String())
		})
	}
}

func TestWordsubCLI_RunTranslate_DuplicateLines(t *testing.T) {
	cli, _ := newTestCLI(t, germanDictionary+"cat:mieze\n", "")

	err := cli.RunTranslate(context.Background(), "/german.txt")
	var duplicateErr *dictionary.DuplicateKeyError
	require.ErrorAs(t, err, &duplicateErr)
	assert.Equal(t, &dictionary.DuplicateKeyError{Word: "cat", Line: 3, FirstLine: 1}, duplicateErr)
}

func TestWordsubCLI_RunTranslate_SourceError(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mock_cli.NewMockEntrySource(ctrl)
	source.EXPECT().Entries(gomock.Any(), "german").Return(nil, dictionary.ErrDictionaryNotFound)

	var stdout bytes.Buffer
	err := NewWordsubCLI(source, substitute.Options{}).
		WithIO(strings.NewReader("cat"), &stdout).
		RunTranslate(context.Background(), "german")
	assert.ErrorIs(t, err, dictionary.ErrDictionaryNotFound)
	assert.Empty(t, stdout.String())
}

func TestWordsubCLI_RunCheck(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	cli, stdout := newTestCLI(t, germanDictionary, "")
	require.NoError(t, cli.RunCheck(context.Background(), "/german.txt"))
	assert.Equal(t, `/german.txt
  entries:     2
  capacity:    5
  load factor: 0.4000
OK
`, stdout.String())
}

func TestWordsubCLI_RunLookup(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name      string
		words     []string
		want      string
		wantErrIs error
	}{
		{
			name:  "all found",
			words: []string{"cat", "DOG"},
			want:  "cat → katze\nDOG → hund\n",
		},
		{
			name:      "one missing",
			words:     []string{"Cat", "bird"},
			want:      "Cat → katze\nbird: not found\n",
			wantErrIs: ErrUnmatchedWords,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cli, stdout := newTestCLI(t, germanDictionary, "")
			err := cli.RunLookup(context.Background(), "/german.txt", tc.words)
			if tc.wantErrIs != nil {
				assert.ErrorIs(t, err, tc.wantErrIs)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.want, stdout.String())
		})
	}
}

func TestWordsubCLI_RunStats(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	t.Run("text", func(t *testing.T) {
		cli, stdout := newTestCLI(t, germanDictionary, "")
		require.NoError(t, cli.RunStats(context.Background(), "/german.txt", false))
		assert.Equal(t, `/german.txt
  capacity:    5
  entries:     2
  load factor: 0.4000
  max probes:  1
  mean probes: 1.0000
  probe histogram:
    1: 2
`, stdout.String())
	})

	t.Run("yaml", func(t *testing.T) {
		cli, stdout := newTestCLI(t, germanDictionary, "")
		require.NoError(t, cli.RunStats(context.Background(), "/german.txt", true))
		got := stdout.String()
		assert.Contains(t, got, "capacity: 5\n")
		assert.Contains(t, got, "entries: 2\n")
		assert.Contains(t, got, "load_factor: 0.4\n")
		assert.Contains(t, got, "probe_histogram:\n  1: 2\n")
	})
}
