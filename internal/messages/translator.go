// Package messages renders fatal errors as localized, user facing diagnostics.
package messages

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/go-sql-driver/mysql"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"

	"github.com/at-ishikawa/wordsub/internal/cli"
	"github.com/at-ishikawa/wordsub/internal/config"
	"github.com/at-ishikawa/wordsub/internal/database"
	"github.com/at-ishikawa/wordsub/internal/dictionary"
	"github.com/at-ishikawa/wordsub/internal/substitute"
	"github.com/at-ishikawa/wordsub/internal/wordfile"
)

//go:embed active.*.toml
var localeFS embed.FS

var catalogs = []string{"active.en.toml", "active.de.toml"}

type Translator struct {
	localizer *i18n.Localizer
	locale    language.Tag
}

// NewTranslator loads the embedded catalogs. Messages missing in locale fall
// back to English.
func NewTranslator(locale string) (*Translator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}

	bundle := i18n.NewBundle(language.English)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	for _, file := range catalogs {
		if _, err := bundle.LoadMessageFileFS(localeFS, file); err != nil {
			return nil, fmt.Errorf("load message file %s: %w", file, err)
		}
	}

	return &Translator{
		localizer: i18n.NewLocalizer(bundle, tag.String(), language.English.String()),
		locale:    tag,
	}, nil
}

func (t *Translator) Locale() language.Tag {
	return t.locale
}

// Describe returns the diagnostic for err.
func (t *Translator) Describe(err error) string {
	if err == nil {
		return ""
	}
	id, data := classify(err)
	msg, localizeErr := t.localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    id,
		TemplateData: data,
	})
	if localizeErr != nil {
		slog.Debug("localize diagnostic", "id", id, "locale", t.locale, "error", localizeErr)
		return err.Error()
	}
	return msg
}

func classify(err error) (string, map[string]any) {
	var (
		usageErr     *cli.UsageError
		lineErr      *wordfile.LineError
		duplicateErr *dictionary.DuplicateKeyError
		invalidErr   *substitute.InvalidByteError
		mysqlErr     *mysql.MySQLError
		pathErr      *fs.PathError
	)

	switch {
	case errors.As(err, &usageErr):
		return "Usage", map[string]any{"Detail": usageErr.Detail}
	case errors.As(err, &lineErr):
		return "MalformedLine", map[string]any{"Line": lineErr.Line, "Reason": lineErr.Reason}
	case errors.As(err, &duplicateErr):
		data := map[string]any{
			"Word":      duplicateErr.Word,
			"Line":      duplicateErr.Line,
			"FirstLine": duplicateErr.FirstLine,
		}
		switch {
		case duplicateErr.Line > 0 && duplicateErr.FirstLine > 0:
			return "DuplicateKey", data
		case duplicateErr.Line > 0:
			return "DuplicateKeyAtLine", data
		default:
			return "DuplicateKeyUnknownLine", data
		}
	case errors.As(err, &invalidErr):
		return "InvalidInput", map[string]any{
			"Byte":   fmt.Sprintf("%02x", invalidErr.Byte),
			"Offset": invalidErr.Offset,
		}
	case errors.Is(err, dictionary.ErrOutOfMemory), errors.Is(err, substitute.ErrOutOfMemory):
		return "OutOfMemory", map[string]any{"Reason": err.Error()}
	case errors.Is(err, dictionary.ErrCorrupt):
		return "CorruptTable", nil
	case errors.Is(err, dictionary.ErrDictionaryNotFound):
		return "DictionaryNotFound", nil
	case errors.Is(err, database.ErrUnavailable):
		return "DatabaseUnavailable", map[string]any{"Reason": reasonAfter(err, database.ErrUnavailable)}
	case errors.As(err, &mysqlErr):
		return "DatabaseError", map[string]any{"Code": mysqlErr.Number, "Reason": mysqlErr.Message}
	case errors.Is(err, config.ErrInvalidConfig):
		return "InvalidConfig", map[string]any{"Reason": reasonAfter(err, config.ErrInvalidConfig)}
	case errors.As(err, &pathErr):
		return "OpenFailed", map[string]any{"Path": pathErr.Path, "Reason": pathErr.Err.Error()}
	default:
		return "Unknown", map[string]any{"Reason": err.Error()}
	}
}

// reasonAfter returns the part of err's message that follows sentinel.
func reasonAfter(err, sentinel error) string {
	msg := err.Error()
	if _, after, found := strings.Cut(msg, sentinel.Error()+": "); found {
		return after
	}
	return msg
}
