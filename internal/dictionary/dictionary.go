// Package dictionary holds the word-to-translation lookup table.
//
// The table uses open addressing over a fixed, prime-sized slot array. A key is
// probed at (djb2(word) + salt) mod capacity for salt = 0, 1, 2, ... until either
// the key or an empty slot is found. Entries are never removed, so the table has
// no tombstones and an empty slot always ends a search. Adding deletion requires
// adding tombstones first.
package dictionary

import (
	"fmt"
	"math"
)

const djb2Seed uint64 = 5381

// Dictionary is an immutable-after-build open addressing hash table.
// It is safe for concurrent readers once built.
type Dictionary struct {
	capacity uint64
	size     int
	slots    []*Entry
}

// New allocates a dictionary with capacity empty slots.
func New(capacity uint64) (dict *Dictionary, err error) {
	if capacity == 0 {
		return nil, ErrZeroCapacity
	}
	if capacity > math.MaxInt {
		return nil, fmt.Errorf("allocate %d slots: %w", capacity, ErrOutOfMemory)
	}

	// make panics with a runtime error when the slice length cannot be represented.
	defer func() {
		if r := recover(); r != nil {
			dict = nil
			err = fmt.Errorf("allocate %d slots: %v: %w", capacity, r, ErrOutOfMemory)
		}
	}()
	return &Dictionary{
		capacity: capacity,
		slots:    make([]*Entry, capacity),
	}, nil
}

// CapacityFor returns the slot count for a table holding count entries:
// the smallest prime strictly greater than 1.5 * count.
func CapacityFor(count int) uint64 {
	n := uint64(count)
	return NextPrimeAbove(n + n/2)
}

// NextPrimeAbove returns the smallest prime strictly greater than n.
// It is only used once per table, so plain trial division is enough.
func NextPrimeAbove(n uint64) uint64 {
	candidate := n + 1
	if candidate <= 2 {
		return 2
	}
	if candidate%2 == 0 {
		candidate++
	}
	for !isPrime(candidate) {
		candidate += 2
	}
	return candidate
}

func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	for x := uint64(2); x <= n/2; x++ {
		if n%x == 0 {
			return false
		}
	}
	return true
}

// hash is DJB2 (h*33 + c, wrapping) shifted by salt and reduced to a bucket index.
func hash(word string, salt uint64, capacity uint64) uint64 {
	h := djb2Seed
	for i := 0; i < len(word); i++ {
		h = h*33 + uint64(word[i])
	}
	return (h + salt) % capacity
}

func (d *Dictionary) Capacity() uint64 {
	return d.capacity
}

func (d *Dictionary) Len() int {
	return d.size
}

// Insert stores entry in the first empty slot of its probe sequence.
// The caller must make sure entry.Word is not in the table yet; Insert does not check.
func (d *Dictionary) Insert(entry Entry) error {
	for salt := uint64(0); salt < d.capacity; salt++ {
		index := hash(entry.Word, salt, d.capacity)
		if d.slots[index] != nil {
			continue
		}
		stored := entry
		d.slots[index] = &stored
		d.size++
		return nil
	}
	return fmt.Errorf("insert %q: %w", entry.Word, ErrCorrupt)
}

// Lookup returns the translation stored for word.
func (d *Dictionary) Lookup(word string) (string, bool, error) {
	entry, err := d.find(word)
	if err != nil {
		return "", false, err
	}
	if entry == nil {
		return "", false, nil
	}
	return entry.Translation, true, nil
}

func (d *Dictionary) find(word string) (*Entry, error) {
	_, entry, err := d.probe(word)
	return entry, err
}

// probe walks the probe sequence of word and reports how many slots it visited.
func (d *Dictionary) probe(word string) (int, *Entry, error) {
	for salt := uint64(0); salt < d.capacity; salt++ {
		entry := d.slots[hash(word, salt, d.capacity)]
		if entry == nil {
			return int(salt) + 1, nil, nil
		}
		if entry.Word == word {
			return int(salt) + 1, entry, nil
		}
	}
	return int(d.capacity), nil, fmt.Errorf("lookup %q: %w", word, ErrCorrupt)
}

// Build creates a dictionary sized for entries and inserts them in order.
// The first occurrence of a word wins; any later one fails the whole build.
func Build(entries []Entry) (*Dictionary, error) {
	dict, err := New(CapacityFor(len(entries)))
	if err != nil {
		return nil, fmt.Errorf("dictionary.New > %w", err)
	}

	for _, entry := range entries {
		existing, err := dict.find(entry.Word)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, &DuplicateKeyError{
				Word:      entry.Word,
				Line:      entry.Line,
				FirstLine: existing.Line,
			}
		}
		if err := dict.Insert(entry); err != nil {
			return nil, err
		}
	}
	return dict, nil
}
