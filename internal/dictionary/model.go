package dictionary

// Entry is a single word-translation pair.
// Word is a non-empty run of [a-z]; Translation is non-empty printable ASCII.
type Entry struct {
	Word        string `db:"word" yaml:"word" validate:"required,alpha,lowercase"`
	Translation string `db:"translation" yaml:"translation" validate:"required,printascii"`
	// Line is the 1-based source line the entry was read from, 0 if unknown.
	Line int `db:"source_line" yaml:"-" validate:"-"`
}
