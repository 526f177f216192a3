package scripture

import (
	"encoding/hex"
	"fmt"
	"slices"

	"github.com/zeebo/blake3"
)

// Fingerprint computes a deterministic BLAKE3 digest over the full content
// of a locally held Translation: metadata, then every book in canonical
// order with its chapters, verses, footnotes, and headings. Two editions
// with identical content produce identical fingerprints regardless of how
// they were loaded. Remote collections return ErrRemoteBooks.
func Fingerprint(t *Translation) (string, error) {
	books, ok := t.Local()
	if !ok {
		return "", ErrRemoteBooks
	}

	h := blake3.New()
	field := func(parts ...any) {
		// Field and record separators keep adjacent values from
		// concatenating into the same digest input.
		for _, p := range parts {
			fmt.Fprintf(h, "%v\x1f", p)
		}
		h.Write([]byte{0x1e})
	}

	field("meta", t.Meta.Name, t.Meta.Code, t.Meta.Year)
	for _, lang := range t.Meta.Languages {
		field("lang", lang)
	}

	for _, id := range books.IDs() {
		book, _ := books.Get(id)
		field("book", id, book.Name, book.Intro)
		for _, num := range book.Chapters.Numbers() {
			ch, _ := book.Chapters.Get(num)
			field("chapter", num)
			for _, v := range ch.Verses {
				field("verse", v.Number, v.Text, v.Footnote)
			}
			for _, vn := range sortedHeadingKeys(ch.Headings) {
				field("heading", vn, ch.Headings[vn])
			}
		}
	}

	sum := h.Sum(nil)
	return hex.EncodeToString(sum), nil
}

func sortedHeadingKeys(m map[VerseNumber]string) []VerseNumber {
	keys := make([]VerseNumber, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.SortFunc(keys, VerseNumber.Compare)
	return keys
}
