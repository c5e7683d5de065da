package wordfile

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/at-ishikawa/wordsub/internal/dictionary"
)

func TestReader_Parse(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		want       []dictionary.Entry
		wantLine   int
		wantReason string
	}{
		{
			name:    "two entries",
			content: "cat:katze\ndog:hund\n",
			want: []dictionary.Entry{
				{Word: "cat", Translation: "katze", Line: 1},
				{Word: "dog", Translation: "hund", Line: 2},
			},
		},
		{
			name:    "last line without line feed",
			content: "cat:katze\ndog:hund",
			want: []dictionary.Entry{
				{Word: "cat", Translation: "katze", Line: 1},
				{Word: "dog", Translation: "hund", Line: 2},
			},
		},
		{
			name:    "empty lines are skipped but counted",
			content: "\ncat:katze\n\n\ndog:hund\n\n",
			want: []dictionary.Entry{
				{Word: "cat", Translation: "katze", Line: 2},
				{Word: "dog", Translation: "hund", Line: 5},
			},
		},
		{
			name:    "translation with spaces and punctuation",
			content: "hello:guten Tag, Welt!\n",
			want: []dictionary.Entry{
				{Word: "hello", Translation: "guten Tag, Welt!", Line: 1},
			},
		},
		{
			name:    "empty file",
			content: "",
			want:    []dictionary.Entry{},
		},
		{
			name:       "leading digit",
			content:    "1dog:hund\n",
			wantLine:   1,
			wantReason: "word can only contain alphabetic characters",
		},
		{
			name:       "uppercase word",
			content:    "cat:katze\nDog:hund\n",
			wantLine:   2,
			wantReason: "word must be a lowercase string",
		},
		{
			name:       "missing word",
			content:    ":hund\n",
			wantLine:   1,
			wantReason: "word is a required field",
		},
		{
			name:       "missing translation",
			content:    "cat:katze\ndog:\n",
			wantLine:   2,
			wantReason: "translation is a required field",
		},
		{
			name:       "missing colon",
			content:    "cat:katze\ndog\n",
			wantLine:   2,
			wantReason: "expected exactly one colon, found 0",
		},
		{
			name:       "second colon",
			content:    "cat:kat:ze\n",
			wantLine:   1,
			wantReason: "expected exactly one colon, found 2",
		},
		{
			name:       "control character in translation",
			content:    "cat:kat\tze\n",
			wantLine:   1,
			wantReason: "translation must contain only printable ascii characters",
		},
		{
			name:       "carriage return line ending",
			content:    "cat:katze\r\n",
			wantLine:   1,
			wantReason: "translation must contain only printable ascii characters",
		},
	}

	reader, err := NewReader(afero.NewMemMapFs())
	require.NoError(t, err)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := reader.Parse(strings.NewReader(tt.content))
			if tt.wantReason != "" {
				assert.ErrorIs(t, err, ErrMalformedLine)
				var lineErr *LineError
				require.ErrorAs(t, err, &lineErr)
				assert.Equal(t, tt.wantLine, lineErr.Line)
				assert.Equal(t, tt.wantReason, lineErr.Reason)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Parse() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestReader_ParseLongLine(t *testing.T) {
	word := strings.Repeat("a", 200_000)
	translation := strings.Repeat("b", 300_000)

	reader, err := NewReader(afero.NewMemMapFs())
	require.NoError(t, err)

	got, err := reader.Parse(strings.NewReader(word + ":" + translation + "\n"))
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, word, got[0].Word)
	assert.Equal(t, translation, got[0].Translation)
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("disk on fire")
}

func TestReader_ParseReadError(t *testing.T) {
	reader, err := NewReader(afero.NewMemMapFs())
	require.NoError(t, err)

	_, err = reader.Parse(failingReader{})
	assert.ErrorContains(t, err, "read dictionary line 1")
	assert.ErrorContains(t, err, "disk on fire")
}

func TestReader_Read(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/dicts/de.txt", []byte("cat:katze\ndog:hund\n"), 0644))

	reader, err := NewReader(fs)
	require.NoError(t, err)

	t.Run("existing file", func(t *testing.T) {
		got, err := reader.Read("/dicts/de.txt")
		require.NoError(t, err)
		assert.Equal(t, []dictionary.Entry{
			{Word: "cat", Translation: "katze", Line: 1},
			{Word: "dog", Translation: "hund", Line: 2},
		}, got)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := reader.Read("/dicts/missing.txt")
		assert.ErrorIs(t, err, os.ErrNotExist)
		assert.ErrorContains(t, err, "open dictionary /dicts/missing.txt")
	})
}
