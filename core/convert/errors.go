package convert

import (
	"errors"
	"fmt"
)

// Sentinel errors for the conversion failure kinds. Conversion is fail-fast:
// the pipeline stops at the first structural defect, because a malformed
// piece leaves no well-formed partial result to keep building on.
var (
	ErrBookName      = errors.New("unparseable book name")
	ErrDuplicateBook = errors.New("duplicate book")
	ErrEmptyBook     = errors.New("book has no chapters")
	ErrEmptyChapter  = errors.New("chapter has no verses")
	ErrChapterNumber = errors.New("inconsistent chapter number")
)

// BookNameError reports a legacy book name the catalog could not resolve.
type BookNameError struct {
	Name string
	Err  error
}

func (e *BookNameError) Error() string {
	return fmt.Sprintf("cannot resolve book name %q: %v", e.Name, e.Err)
}

func (e *BookNameError) Unwrap() error {
	if e.Err != nil {
		return e.Err
	}
	return ErrBookName
}

// DuplicateBookError reports two legacy books resolving to the same
// canonical identifier. Name is the first duplicate encountered.
type DuplicateBookError struct {
	Name string
}

func (e *DuplicateBookError) Error() string {
	return fmt.Sprintf("duplicate book %q", e.Name)
}

func (e *DuplicateBookError) Unwrap() error {
	return ErrDuplicateBook
}

// EmptyBookError reports a legacy book with an empty chapter list.
type EmptyBookError struct {
	Name string
}

func (e *EmptyBookError) Error() string {
	return fmt.Sprintf("book %q has no chapters", e.Name)
}

func (e *EmptyBookError) Unwrap() error {
	return ErrEmptyBook
}

// EmptyChapterError reports a legacy chapter with an empty verse list.
type EmptyChapterError struct {
	Book    string
	Chapter int
}

func (e *EmptyChapterError) Error() string {
	return fmt.Sprintf("book %q chapter %d has no verses", e.Book, e.Chapter)
}

func (e *EmptyChapterError) Unwrap() error {
	return ErrEmptyChapter
}

// ChapterNumberError reports a verse whose embedded chapter number does not
// match the chapter it is nested under.
type ChapterNumberError struct {
	Book    string
	Chapter int
	Verse   int
	Want    int
	Got     int
}

func (e *ChapterNumberError) Error() string {
	return fmt.Sprintf("book %q chapter %d verse %d: chapter number is %d, want %d",
		e.Book, e.Chapter, e.Verse, e.Got, e.Want)
}

func (e *ChapterNumberError) Unwrap() error {
	return ErrChapterNumber
}
