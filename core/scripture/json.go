package scripture

import (
	"encoding/json"
	"fmt"

	"github.com/canonlint/canonlint/core/canon"
)

// JSON forms. Ordered collections serialize as arrays so the canonical
// order survives the round trip; plain maps would not preserve it.

type bookJSON struct {
	ID       canon.BookID `json:"id"`
	Name     string       `json:"name"`
	Intro    string       `json:"intro,omitempty"`
	Chapters *Chapters    `json:"chapters"`
}

// MarshalJSON renders the collection as an array in canonical reading order.
func (b *Books) MarshalJSON() ([]byte, error) {
	out := make([]bookJSON, 0, b.Len())
	for _, id := range b.IDs() {
		book, _ := b.Get(id)
		out = append(out, bookJSON{ID: id, Name: book.Name, Intro: book.Intro, Chapters: book.Chapters})
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the collection from the array form.
func (b *Books) UnmarshalJSON(data []byte) error {
	var entries []bookJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*b = *NewBooks()
	for _, e := range entries {
		if err := b.Add(e.ID, &Book{Name: e.Name, Intro: e.Intro, Chapters: e.Chapters}); err != nil {
			return err
		}
	}
	return nil
}

type chapterJSON struct {
	Number   int                    `json:"number"`
	Verses   []Verse                `json:"verses"`
	Headings map[VerseNumber]string `json:"headings,omitempty"`
}

// MarshalJSON renders the chapters as an array in ascending number order.
func (c *Chapters) MarshalJSON() ([]byte, error) {
	out := make([]chapterJSON, 0, c.Len())
	for _, num := range c.Numbers() {
		ch, _ := c.Get(num)
		out = append(out, chapterJSON{Number: num, Verses: ch.Verses, Headings: ch.Headings})
	}
	return json.Marshal(out)
}

// UnmarshalJSON rebuilds the chapters from the array form.
func (c *Chapters) UnmarshalJSON(data []byte) error {
	var entries []chapterJSON
	if err := json.Unmarshal(data, &entries); err != nil {
		return err
	}
	*c = *NewChapters()
	for _, e := range entries {
		if err := c.Add(e.Number, &Chapter{Verses: e.Verses, Headings: e.Headings}); err != nil {
			return err
		}
	}
	return nil
}

type translationJSON struct {
	Meta   Meta   `json:"meta"`
	Books  *Books `json:"books,omitempty"`
	Remote string `json:"remote,omitempty"`
}

// MarshalJSON renders a Translation with the storage tag made explicit:
// a local collection inlines its books, a remote one carries the opaque
// reference string.
func (t *Translation) MarshalJSON() ([]byte, error) {
	doc := translationJSON{Meta: t.Meta}
	switch s := t.Books.(type) {
	case Local:
		doc.Books = s.Books
	case Remote:
		doc.Remote = s.Ref
	default:
		return nil, fmt.Errorf("unsupported book storage %T", t.Books)
	}
	return json.Marshal(doc)
}

// UnmarshalJSON rebuilds a Translation, restoring the storage tag.
func (t *Translation) UnmarshalJSON(data []byte) error {
	var doc translationJSON
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	t.Meta = doc.Meta
	if doc.Books != nil {
		t.Books = Local{Books: doc.Books}
	} else {
		t.Books = Remote{Ref: doc.Remote}
	}
	return nil
}
