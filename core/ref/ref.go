// Package ref parses human-style scripture references ("Genesis 1:5",
// "2 Samuel 3", "Song of Solomon 2:1-5") against the canonical catalog.
// A parsed Ref narrows a scope: whole book, one chapter, or a verse
// selection within a chapter.
package ref

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/canonlint/canonlint/core/canon"
	"github.com/canonlint/canonlint/core/scripture"
)

// Ref is a parsed reference. Chapter 0 means the whole book; a zero-valued
// verse selection means the whole chapter.
type Ref struct {
	Book    canon.BookID
	Chapter int

	verse    scripture.VerseNumber
	hasVerse bool
}

// refGrammar accepts "<ordinal?> <name words> <chapter?>[:<verse>[-<end>]]".
// Book names never end in a number, so a trailing integer is always the
// chapter.
//
//nolint:govet // participle grammar tags are not standard struct tags
type refGrammar struct {
	Ordinal string       `parser:"@Int?"`
	Words   []string     `parser:"@Word+"`
	Chapter *chapterPart `parser:"@@?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type chapterPart struct {
	Chapter int        `parser:"@Int"`
	Verses  *versePart `parser:"( ( \":\" | \".\" ) @@ )?"`
}

//nolint:govet // participle grammar tags are not standard struct tags
type versePart struct {
	Start int  `parser:"@Int"`
	End   *int `parser:"( \"-\" @Int )?"`
}

var refLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Int", Pattern: `[0-9]+`},
	{Name: "Word", Pattern: `[A-Za-z]+`},
	{Name: "Punct", Pattern: `[:.\-]`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var refParser = participle.MustBuild[refGrammar](
	participle.Lexer(refLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a reference string. The book part accepts every spelling the
// catalog resolves, including ordinal prefixes ("2 Samuel", "II Samuel").
func Parse(s string) (*Ref, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty reference")
	}

	parsed, err := refParser.ParseString("", s)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q: %w", s, err)
	}

	name := strings.Join(parsed.Words, " ")
	if parsed.Ordinal != "" {
		name = parsed.Ordinal + " " + name
	}
	id, err := canon.Resolve(name)
	if err != nil {
		return nil, fmt.Errorf("invalid reference %q: %w", s, err)
	}

	r := &Ref{Book: id}
	if parsed.Chapter == nil {
		return r, nil
	}
	if parsed.Chapter.Chapter <= 0 {
		return nil, fmt.Errorf("invalid reference %q: chapter must be positive", s)
	}
	r.Chapter = parsed.Chapter.Chapter

	if vp := parsed.Chapter.Verses; vp != nil {
		if vp.End != nil {
			vn, err := scripture.NewRange(vp.Start, *vp.End)
			if err != nil {
				return nil, fmt.Errorf("invalid reference %q: %w", s, err)
			}
			r.verse = vn
		} else {
			r.verse = scripture.Single(vp.Start)
		}
		r.hasVerse = true
	}
	return r, nil
}

// Verse returns the verse selection and whether one was given.
func (r *Ref) Verse() (scripture.VerseNumber, bool) {
	return r.verse, r.hasVerse
}

// ContainsChapter reports whether the scope includes the given chapter of
// the given book.
func (r *Ref) ContainsChapter(book canon.BookID, chapter int) bool {
	if book != r.Book {
		return false
	}
	return r.Chapter == 0 || r.Chapter == chapter
}

// ContainsVerse reports whether the scope intersects the given verse of the
// given chapter.
func (r *Ref) ContainsVerse(book canon.BookID, chapter int, verse scripture.VerseNumber) bool {
	if !r.ContainsChapter(book, chapter) {
		return false
	}
	if !r.hasVerse {
		return true
	}
	return r.verse.Overlaps(verse)
}

// String renders the reference with the canonical book name.
func (r *Ref) String() string {
	var sb strings.Builder
	sb.WriteString(r.Book.Name())
	if r.Chapter > 0 {
		sb.WriteString(" ")
		sb.WriteString(strconv.Itoa(r.Chapter))
		if r.hasVerse {
			sb.WriteString(":")
			sb.WriteString(r.verse.String())
		}
	}
	return sb.String()
}
