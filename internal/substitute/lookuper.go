package substitute

//go:generate mockgen -source=lookuper.go -destination=../mocks/substitute/mock_lookuper.go -package=mock_substitute

// Lookuper resolves a lowercase word to its translation.
type Lookuper interface {
	Lookup(word string) (translation string, found bool, err error)
}
