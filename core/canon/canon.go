// Package canon defines the fixed 66-book canonical catalog and the
// alias resolver that maps free-text book names onto it.
//
// The catalog is versioned with this module: changing it changes what
// counts as a well-formed corpus, so it is never supplied at runtime.
package canon

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownBook indicates a book name that resolves to nothing in the catalog.
var ErrUnknownBook = errors.New("unknown book")

// UnknownBookError reports a name the catalog could not resolve.
// Resolution is exact (after case folding and whitespace normalization);
// there is no fuzzy matching, so an unrecognized spelling is always an error.
type UnknownBookError struct {
	Name string
}

func (e *UnknownBookError) Error() string {
	return fmt.Sprintf("unknown book: %q", e.Name)
}

func (e *UnknownBookError) Unwrap() error {
	return ErrUnknownBook
}

// BookID identifies one of the 66 canonical books. Values use OSIS-style
// identifiers (e.g. "Gen", "2Sam", "Rev") and are created only by catalog
// lookup or the package constants.
type BookID string

// bookIndex maps a BookID to its position in reading order.
var bookIndex = func() map[BookID]int {
	m := make(map[BookID]int, len(books))
	for i, b := range books {
		m[b.id] = i
	}
	return m
}()

// aliasIndex maps every normalized spelling to its BookID.
var aliasIndex = func() map[string]BookID {
	m := make(map[string]BookID, len(books)*6)
	for _, b := range books {
		m[normalize(string(b.id))] = b.id
		m[normalize(b.name)] = b.id
		for _, a := range b.aliases {
			m[normalize(a)] = b.id
		}
	}
	return m
}()

// normalize lowercases a name, trims surrounding whitespace, and collapses
// interior whitespace runs to single spaces.
func normalize(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), " ")
}

// Resolve maps a free-text book name to its canonical identifier.
// Matching is case-insensitive and ignores surrounding whitespace.
// An unrecognized name returns an *UnknownBookError; no guessing.
func Resolve(name string) (BookID, error) {
	if id, ok := aliasIndex[normalize(name)]; ok {
		return id, nil
	}
	return "", &UnknownBookError{Name: name}
}

// Order returns all 66 book identifiers in canonical reading order.
// The returned slice is a copy.
func Order() []BookID {
	ids := make([]BookID, len(books))
	for i, b := range books {
		ids[i] = b.id
	}
	return ids
}

// Count is the number of books in the canon.
const Count = 66

// IsValid reports whether id is one of the 66 canonical identifiers.
func (id BookID) IsValid() bool {
	_, ok := bookIndex[id]
	return ok
}

// Index returns the position of the book in reading order (0-65),
// or -1 for an identifier outside the catalog.
func (id BookID) Index() int {
	if i, ok := bookIndex[id]; ok {
		return i
	}
	return -1
}

// Name returns the canonical English name of the book ("2Sam" -> "2 Samuel").
// Unknown identifiers return their raw value.
func (id BookID) Name() string {
	if i, ok := bookIndex[id]; ok {
		return books[i].name
	}
	return string(id)
}

// Compare orders two identifiers by reading order. Identifiers outside the
// catalog sort after all canonical ones.
func Compare(a, b BookID) int {
	ai, bi := a.Index(), b.Index()
	if ai < 0 {
		ai = len(books)
	}
	if bi < 0 {
		bi = len(books)
	}
	switch {
	case ai < bi:
		return -1
	case ai > bi:
		return 1
	default:
		return 0
	}
}
