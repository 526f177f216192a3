// Package audit checks a canonical corpus for missing, duplicated, and
// overlapping chapter and verse numbers. Unlike conversion, auditing is
// exhaustive: the input already exists and the goal is a complete defect
// list, so every check runs and every finding is accumulated. Only the
// remote-storage precondition aborts, because then there is nothing local
// to audit.
package audit

import (
	"fmt"
	"slices"

	"github.com/canonlint/canonlint/core/canon"
	"github.com/canonlint/canonlint/core/scripture"
)

// Stats summarizes what an audit visited and how much of it was defective.
type Stats struct {
	Books             int `json:"books"`
	Chapters          int `json:"chapters"`
	Verses            int `json:"verses"`
	DefectiveBooks    int `json:"defective_books"`
	DefectiveChapters int `json:"defective_chapters"`
}

// Result is the aggregate audit output: every defect in discovery order,
// every non-fatal warning, and the visit statistics.
type Result struct {
	Defects  []Defect `json:"defects"`
	Warnings []string `json:"warnings"`
	Stats    Stats    `json:"stats"`
}

// Validate audits a Translation. A remotely stored book collection returns
// a *RemoteStorageError immediately with no statistics; a local one is
// audited exhaustively and never mutated.
func Validate(t *scripture.Translation) (*Result, error) {
	switch s := t.Books.(type) {
	case scripture.Local:
		return ValidateBooks(s.Books), nil
	case scripture.Remote:
		return nil, &RemoteStorageError{Ref: s.Ref}
	default:
		return nil, &RemoteStorageError{}
	}
}

// ValidateBooks audits a locally held book collection. Books are checked
// independently of each other (a host may fan them out and concatenate the
// results); within a chapter, verses are visited in stored order so that
// duplicate and gap reporting is deterministic.
func ValidateBooks(books *scripture.Books) *Result {
	r := &Result{}
	for _, id := range books.IDs() {
		book, _ := books.Get(id)
		auditBook(r, id, book)
	}
	return r
}

// IsValid reports whether the translation audits clean. A remotely stored
// collection is not provably valid and reports false.
func IsValid(t *scripture.Translation) bool {
	r, err := Validate(t)
	if err != nil {
		return false
	}
	return len(r.Defects) == 0
}

// Err collapses the result to a single outcome: nil when clean, the lone
// defect when there is exactly one, and a *MultipleDefectsError carrying
// the full list otherwise.
func (r *Result) Err() error {
	switch len(r.Defects) {
	case 0:
		return nil
	case 1:
		return r.Defects[0]
	default:
		return &MultipleDefectsError{Count: len(r.Defects), Defects: r.Defects}
	}
}

func (r *Result) addDefect(d Defect) {
	r.Defects = append(r.Defects, d)
}

func (r *Result) addWarningf(format string, args ...any) {
	r.Warnings = append(r.Warnings, fmt.Sprintf(format, args...))
}

func auditBook(r *Result, id canon.BookID, book *scripture.Book) {
	r.Stats.Books++
	before := len(r.Defects)
	defer func() {
		if len(r.Defects) > before {
			r.Stats.DefectiveBooks++
		}
	}()

	if book.Chapters == nil || book.Chapters.Len() == 0 {
		r.addDefect(Defect{Kind: KindEmptyBook, Book: id})
		return
	}

	nums := book.Chapters.Numbers()
	lo, hi := nums[0], nums[len(nums)-1]

	if missing := missingInSpan(lo, hi, nums); len(missing) > 0 {
		// Both the aggregate and the itemization are recorded so
		// report consumers can choose their granularity.
		r.addDefect(Defect{Kind: KindChapterGap, Book: id, Missing: missing})
		for _, m := range missing {
			r.addDefect(Defect{Kind: KindMissingChapter, Book: id, Chapter: m})
		}
	}
	if lo != 1 {
		r.addWarningf("book %s starts at chapter %d, not 1", id, lo)
	}

	for _, num := range nums {
		r.Stats.Chapters++
		chBefore := len(r.Defects)
		ch, _ := book.Chapters.Get(num)
		if len(ch.Verses) == 0 {
			r.addDefect(Defect{Kind: KindEmptyChapter, Book: id, Chapter: num})
		} else {
			auditChapter(r, id, num, ch)
		}
		if len(r.Defects) > chBefore {
			r.Stats.DefectiveChapters++
		}
	}
}

func auditChapter(r *Result, id canon.BookID, num int, ch *scripture.Chapter) {
	seen := make(map[int]bool, len(ch.Verses))
	var accepted []scripture.VerseNumber
	lo, hi := 0, 0
	expanded := false

	for _, v := range ch.Verses {
		r.Stats.Verses++
		n := v.Number

		// Excluded upstream by the VerseNumber constructor, but a
		// hand-built value could still carry it.
		if n.IsRange() && n.Start() > n.End() {
			r.addDefect(Defect{
				Kind: KindInvalidVerseRange, Book: id, Chapter: num,
				Start: n.Start(), End: n.End(),
			})
			continue
		}

		if n.IsRange() {
			for _, prev := range accepted {
				if n.Overlaps(prev) {
					p, q := prev, n
					r.addDefect(Defect{
						Kind: KindOverlappingRanges, Book: id, Chapter: num,
						Range1: &p, Range2: &q,
					})
				}
			}
			accepted = append(accepted, n)
		}

		// Ranges and singles share one duplicate-detection path: both
		// expand into the running seen-set, so a range colliding with
		// an earlier single verse surfaces as a duplicate too.
		for i := range n.Expand() {
			if seen[i] {
				r.addDefect(Defect{Kind: KindDuplicateVerse, Book: id, Chapter: num, Verse: i})
			} else {
				seen[i] = true
			}
			if !expanded || i < lo {
				lo = i
			}
			if !expanded || i > hi {
				hi = i
			}
			expanded = true
		}
	}

	if !expanded {
		// Nothing expanded (every entry was an invalid range).
		return
	}
	if lo != 1 {
		r.addWarningf("book %s chapter %d starts at verse %d, not 1", id, num, lo)
	}
	if missing := missingInSet(lo, hi, seen); len(missing) > 0 {
		r.addDefect(Defect{Kind: KindVerseGap, Book: id, Chapter: num, Missing: missing})
	}
}

// missingInSpan returns the integers of [lo, hi] absent from the sorted
// slice present.
func missingInSpan(lo, hi int, present []int) []int {
	set := make(map[int]bool, len(present))
	for _, n := range present {
		set[n] = true
	}
	return missingInSet(lo, hi, set)
}

// missingInSet returns the integers of [lo, hi] absent from set, ascending.
func missingInSet(lo, hi int, set map[int]bool) []int {
	var missing []int
	for n := lo; n <= hi; n++ {
		if !set[n] {
			missing = append(missing, n)
		}
	}
	slices.Sort(missing)
	return missing
}
