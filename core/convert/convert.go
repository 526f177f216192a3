// Package convert turns the loosely-structured legacy representation of a
// Scripture edition into the canonical scripture model, failing fast on the
// first structural defect it finds. Auditing an already-built corpus is the
// job of core/audit, which aggregates instead.
package convert

import (
	"fmt"

	"github.com/canonlint/canonlint/core/canon"
	"github.com/canonlint/canonlint/core/scripture"
)

// Legacy mirrors the legacy wire shape: book names as free text, chapters
// and verses as flat lists with redundant embedded numbering. No other
// fields of the legacy format are consumed.
type Legacy struct {
	Books []LegacyBook `json:"books"`
}

// LegacyBook is one book of the legacy representation.
type LegacyBook struct {
	Name     string          `json:"name"`
	Chapters []LegacyChapter `json:"chapters"`
}

// LegacyChapter is one chapter of the legacy representation.
type LegacyChapter struct {
	Chapter int           `json:"chapter"`
	Verses  []LegacyVerse `json:"verses"`
}

// LegacyVerse is one verse of the legacy representation. Chapter repeats
// the number of the enclosing chapter and must agree with it.
type LegacyVerse struct {
	Verse   int    `json:"verse"`
	Chapter int    `json:"chapter"`
	Text    string `json:"text"`
}

// PlaceholderMeta returns stand-in metadata for intermediate migration
// tooling that has no real metadata to supply yet. The values are labeled
// so they cannot be mistaken for a real edition.
func PlaceholderMeta() scripture.Meta {
	return scripture.Meta{
		Name: "Untitled migration (placeholder)",
		Code: "XXX",
	}
}

// Convert builds a canonical Translation from the legacy representation.
// The caller supplies the edition metadata; the resulting book collection
// is locally held. Conversion short-circuits at the first defect and
// returns one of the typed errors of this package (or a
// *scripture.InvalidVerseRangeError from verse-number derivation).
func Convert(legacy Legacy, meta scripture.Meta) (*scripture.Translation, error) {
	type resolved struct {
		id   canon.BookID
		book LegacyBook
	}

	// Resolve every name before any structural checks, so an unknown
	// spelling is always reported ahead of downstream defects.
	pairs := make([]resolved, 0, len(legacy.Books))
	for _, lb := range legacy.Books {
		id, err := canon.Resolve(lb.Name)
		if err != nil {
			return nil, &BookNameError{Name: lb.Name, Err: err}
		}
		pairs = append(pairs, resolved{id: id, book: lb})
	}

	seen := make(map[canon.BookID]bool, len(pairs))
	for _, p := range pairs {
		if seen[p.id] {
			return nil, &DuplicateBookError{Name: p.book.Name}
		}
		seen[p.id] = true
	}

	books := scripture.NewBooks()
	for _, p := range pairs {
		book, err := convertBook(p.book)
		if err != nil {
			return nil, err
		}
		if err := books.Add(p.id, book); err != nil {
			return nil, fmt.Errorf("book %q: %w", p.book.Name, err)
		}
	}

	return &scripture.Translation{
		Meta:  meta,
		Books: scripture.Local{Books: books},
	}, nil
}

func convertBook(lb LegacyBook) (*scripture.Book, error) {
	if len(lb.Chapters) == 0 {
		return nil, &EmptyBookError{Name: lb.Name}
	}

	chapters := scripture.NewChapters()
	for _, lc := range lb.Chapters {
		ch, err := convertChapter(lb.Name, lc)
		if err != nil {
			return nil, err
		}
		if err := chapters.Add(lc.Chapter, ch); err != nil {
			return nil, fmt.Errorf("book %q: %w", lb.Name, err)
		}
	}

	// The legacy display name is preserved verbatim; the canonical
	// identifier is only the lookup key.
	return &scripture.Book{Name: lb.Name, Chapters: chapters}, nil
}

func convertChapter(bookName string, lc LegacyChapter) (*scripture.Chapter, error) {
	if len(lc.Verses) == 0 {
		return nil, &EmptyChapterError{Book: bookName, Chapter: lc.Chapter}
	}

	verses := make([]scripture.Verse, 0, len(lc.Verses))
	for _, lv := range lc.Verses {
		if lv.Chapter != lc.Chapter {
			return nil, &ChapterNumberError{
				Book:    bookName,
				Chapter: lc.Chapter,
				Verse:   lv.Verse,
				Want:    lc.Chapter,
				Got:     lv.Chapter,
			}
		}
		num, err := deriveVerseNumber(lv.Text, lv.Verse)
		if err != nil {
			return nil, fmt.Errorf("book %q chapter %d verse %d: %w",
				bookName, lc.Chapter, lv.Verse, err)
		}
		verses = append(verses, scripture.Verse{Number: num, Text: lv.Text})
	}

	return &scripture.Chapter{Verses: verses}, nil
}

// deriveVerseNumber infers a verse's identity from its text. The legacy
// format writes combined verses as prose beginning with "<start>-<end> ",
// so a leading digit plus a hyphen triggers a range parse; anything that
// does not match that exact shape (non-numeric bounds, no trailing space)
// falls back to the verse index. The heuristic is inherently ambiguous for
// prose that legitimately opens with a number-hyphen-number pattern; that
// behavior is kept as-is rather than second-guessed.
func deriveVerseNumber(text string, index int) (scripture.VerseNumber, error) {
	if len(text) == 0 || !isDigit(text[0]) || !containsHyphen(text) {
		return scripture.Single(index), nil
	}

	i := 0
	start := 0
	for i < len(text) && isDigit(text[i]) {
		start = start*10 + int(text[i]-'0')
		i++
	}
	if i >= len(text) || text[i] != '-' {
		return scripture.Single(index), nil
	}
	i++
	end := 0
	digits := 0
	for i < len(text) && isDigit(text[i]) {
		end = end*10 + int(text[i]-'0')
		i++
		digits++
	}
	if digits == 0 || i >= len(text) || text[i] != ' ' {
		return scripture.Single(index), nil
	}

	return scripture.NewRange(start, end)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func containsHyphen(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] == '-' {
			return true
		}
	}
	return false
}
