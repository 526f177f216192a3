// Package scripture defines the canonical corpus data model: a Translation
// holding Books keyed by canonical identifier, Chapters keyed by number, and
// ordered Verse sequences identified by VerseNumber values.
//
// A Translation is built once (by the conversion pipeline or the builders
// here) and treated as immutable afterward; nothing in this module mutates
// one after construction.
package scripture

import (
	"errors"
	"fmt"
	"slices"

	"github.com/canonlint/canonlint/core/canon"
)

// Meta carries edition-level metadata. It is always supplied by the caller;
// the conversion pipeline never invents it.
type Meta struct {
	Name      string   `json:"name"`
	Code      string   `json:"code"`
	Year      int      `json:"year,omitempty"`
	Languages []string `json:"languages,omitempty"`
}

// Translation is the top-level corpus value: metadata plus the book
// collection behind a storage-location tag.
type Translation struct {
	Meta  Meta
	Books BookStorage
}

// Local returns the book collection when it is locally held.
func (t *Translation) Local() (*Books, bool) {
	l, ok := t.Books.(Local)
	if !ok {
		return nil, false
	}
	return l.Books, true
}

// Verse is one verse: its identity, its text, and an optional footnote.
type Verse struct {
	Number   VerseNumber `json:"number"`
	Text     string      `json:"text"`
	Footnote string      `json:"footnote,omitempty"`
}

// Chapter is an ordered verse sequence plus optional section headings for
// the subset of verses that carry one.
type Chapter struct {
	Verses   []Verse                `json:"verses"`
	Headings map[VerseNumber]string `json:"headings,omitempty"`
}

// Book is one book as it appears in this edition: the display name is kept
// verbatim (it is not necessarily the canonical English name), plus an
// optional introduction and the chapters.
type Book struct {
	Name     string    `json:"name"`
	Intro    string    `json:"intro,omitempty"`
	Chapters *Chapters `json:"chapters"`
}

// Chapters is an ordered mapping from chapter number to Chapter.
// Keys are positive and unique by construction.
type Chapters struct {
	numbers []int
	byNum   map[int]*Chapter
}

// NewChapters returns an empty chapter collection.
func NewChapters() *Chapters {
	return &Chapters{byNum: make(map[int]*Chapter)}
}

// Add inserts a chapter under the given number.
func (c *Chapters) Add(number int, ch *Chapter) error {
	if number <= 0 {
		return fmt.Errorf("chapter number must be positive, got %d", number)
	}
	if _, dup := c.byNum[number]; dup {
		return fmt.Errorf("duplicate chapter number %d", number)
	}
	c.numbers = append(c.numbers, number)
	c.byNum[number] = ch
	return nil
}

// Get returns the chapter with the given number.
func (c *Chapters) Get(number int) (*Chapter, bool) {
	ch, ok := c.byNum[number]
	return ch, ok
}

// Numbers returns the chapter numbers in ascending order.
func (c *Chapters) Numbers() []int {
	out := make([]int, len(c.numbers))
	copy(out, c.numbers)
	slices.Sort(out)
	return out
}

// Len returns the number of chapters.
func (c *Chapters) Len() int {
	return len(c.numbers)
}

// Books is an ordered mapping from canonical book identifier to Book.
// Keys are unique by construction and iterate in canonical reading order.
type Books struct {
	ids  []canon.BookID
	byID map[canon.BookID]*Book
}

// NewBooks returns an empty book collection.
func NewBooks() *Books {
	return &Books{byID: make(map[canon.BookID]*Book)}
}

// Add inserts a book under its canonical identifier.
func (b *Books) Add(id canon.BookID, book *Book) error {
	if !id.IsValid() {
		return fmt.Errorf("%q is not a canonical book identifier", id)
	}
	if _, dup := b.byID[id]; dup {
		return fmt.Errorf("duplicate book %s", id)
	}
	b.ids = append(b.ids, id)
	b.byID[id] = book
	return nil
}

// Get returns the book for the given identifier.
func (b *Books) Get(id canon.BookID) (*Book, bool) {
	book, ok := b.byID[id]
	return book, ok
}

// IDs returns the present book identifiers in canonical reading order.
func (b *Books) IDs() []canon.BookID {
	out := make([]canon.BookID, len(b.ids))
	copy(out, b.ids)
	slices.SortFunc(out, canon.Compare)
	return out
}

// Len returns the number of books.
func (b *Books) Len() int {
	return len(b.ids)
}

// Complete reports whether the collection holds exactly the full canon.
func (b *Books) Complete() bool {
	return len(b.ids) == canon.Count
}

// ErrRemoteBooks indicates an operation that requires the book collection
// to be locally materialized.
var ErrRemoteBooks = errors.New("book collection is remotely stored")
