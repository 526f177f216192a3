package audit

import (
	"errors"
	"fmt"
	"strings"

	"github.com/canonlint/canonlint/core/canon"
	"github.com/canonlint/canonlint/core/scripture"
)

// Kind classifies a structural defect found in a corpus.
type Kind string

// Defect kinds.
const (
	KindEmptyBook         Kind = "empty_book"
	KindEmptyChapter      Kind = "empty_chapter"
	KindMissingChapter    Kind = "missing_chapter"
	KindChapterGap        Kind = "chapter_gap"
	KindMissingVerse      Kind = "missing_verse"
	KindVerseGap          Kind = "verse_gap"
	KindDuplicateVerse    Kind = "duplicate_verse"
	KindInvalidVerseRange Kind = "invalid_verse_range"
	KindOverlappingRanges Kind = "overlapping_ranges"
)

// Defect is one structural problem, carrying its kind and whatever
// book/chapter/verse context applies. Unused fields stay at their zero
// values and are omitted from JSON output.
type Defect struct {
	Kind    Kind         `json:"kind"`
	Book    canon.BookID `json:"book,omitempty"`
	Chapter int          `json:"chapter,omitempty"`

	// Verse is the colliding integer for duplicate_verse.
	Verse int `json:"verse,omitempty"`

	// Missing lists the absent numbers for chapter_gap and verse_gap,
	// sorted ascending.
	Missing []int `json:"missing,omitempty"`

	// Start and End carry the bounds of an invalid_verse_range.
	Start int `json:"start,omitempty"`
	End   int `json:"end,omitempty"`

	// Range1 and Range2 carry the pair for overlapping_ranges, in the
	// order the overlap was discovered.
	Range1 *scripture.VerseNumber `json:"range1,omitempty"`
	Range2 *scripture.VerseNumber `json:"range2,omitempty"`
}

// Error renders the defect as a one-line human-readable message, so a
// Defect can travel as an ordinary error value.
func (d Defect) Error() string {
	switch d.Kind {
	case KindEmptyBook:
		return fmt.Sprintf("book %s has no chapters", d.Book)
	case KindEmptyChapter:
		return fmt.Sprintf("book %s chapter %d has no verses", d.Book, d.Chapter)
	case KindMissingChapter:
		return fmt.Sprintf("book %s is missing chapter %d", d.Book, d.Chapter)
	case KindChapterGap:
		return fmt.Sprintf("book %s has chapter gaps: missing %s", d.Book, joinInts(d.Missing))
	case KindMissingVerse:
		return fmt.Sprintf("book %s chapter %d is missing verse %d", d.Book, d.Chapter, d.Verse)
	case KindVerseGap:
		return fmt.Sprintf("book %s chapter %d has verse gaps: missing %s", d.Book, d.Chapter, joinInts(d.Missing))
	case KindDuplicateVerse:
		return fmt.Sprintf("book %s chapter %d has duplicate verse %d", d.Book, d.Chapter, d.Verse)
	case KindInvalidVerseRange:
		return fmt.Sprintf("book %s chapter %d has invalid verse range %d-%d", d.Book, d.Chapter, d.Start, d.End)
	case KindOverlappingRanges:
		return fmt.Sprintf("book %s chapter %d has overlapping verse ranges %s and %s", d.Book, d.Chapter, d.Range1, d.Range2)
	default:
		return fmt.Sprintf("defect %s in book %s", d.Kind, d.Book)
	}
}

func joinInts(ns []int) string {
	parts := make([]string, len(ns))
	for i, n := range ns {
		parts[i] = fmt.Sprintf("%d", n)
	}
	return strings.Join(parts, ", ")
}

// ErrRemoteStorage indicates a translation whose book collection is only a
// remote reference and therefore cannot be audited.
var ErrRemoteStorage = errors.New("remote storage")

// RemoteStorageError aborts validation before any checks run: there is no
// local data to audit. Materializing the remote reference is the caller's
// responsibility.
type RemoteStorageError struct {
	Ref string
}

func (e *RemoteStorageError) Error() string {
	if e.Ref != "" {
		return fmt.Sprintf("cannot validate remotely stored books (ref %q)", e.Ref)
	}
	return "cannot validate remotely stored books"
}

func (e *RemoteStorageError) Unwrap() error {
	return ErrRemoteStorage
}

// MultipleDefectsError wraps a full defect list for callers that need a
// single error value but still want every defect inspectable.
type MultipleDefectsError struct {
	Count   int
	Defects []Defect
}

func (e *MultipleDefectsError) Error() string {
	return fmt.Sprintf("%d defects found (first: %s)", e.Count, e.Defects[0].Error())
}
