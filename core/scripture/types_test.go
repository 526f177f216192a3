package scripture

import (
	"slices"
	"testing"

	"github.com/canonlint/canonlint/core/canon"
)

func TestChaptersAddAndGet(t *testing.T) {
	c := NewChapters()
	if err := c.Add(1, &Chapter{}); err != nil {
		t.Fatalf("Add(1) failed: %v", err)
	}
	if err := c.Add(3, &Chapter{}); err != nil {
		t.Fatalf("Add(3) failed: %v", err)
	}
	if c.Len() != 2 {
		t.Errorf("Len() = %d, want 2", c.Len())
	}
	if _, ok := c.Get(1); !ok {
		t.Error("Get(1) should find the chapter")
	}
	if _, ok := c.Get(2); ok {
		t.Error("Get(2) should find nothing")
	}
}

func TestChaptersRejectsBadNumbers(t *testing.T) {
	c := NewChapters()
	if err := c.Add(0, &Chapter{}); err == nil {
		t.Error("Add(0) should fail")
	}
	if err := c.Add(-1, &Chapter{}); err == nil {
		t.Error("Add(-1) should fail")
	}
	if err := c.Add(2, &Chapter{}); err != nil {
		t.Fatalf("Add(2) failed: %v", err)
	}
	if err := c.Add(2, &Chapter{}); err == nil {
		t.Error("duplicate Add(2) should fail")
	}
}

func TestChaptersNumbersSorted(t *testing.T) {
	c := NewChapters()
	for _, n := range []int{3, 1, 2} {
		if err := c.Add(n, &Chapter{}); err != nil {
			t.Fatalf("Add(%d) failed: %v", n, err)
		}
	}
	if got := c.Numbers(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("Numbers() = %v, want [1 2 3]", got)
	}
}

func TestBooksAddAndGet(t *testing.T) {
	b := NewBooks()
	if err := b.Add(canon.Gen, &Book{Name: "Genesis"}); err != nil {
		t.Fatalf("Add(Gen) failed: %v", err)
	}
	book, ok := b.Get(canon.Gen)
	if !ok {
		t.Fatal("Get(Gen) should find the book")
	}
	if book.Name != "Genesis" {
		t.Errorf("Name = %q, want Genesis", book.Name)
	}
	if _, ok := b.Get(canon.Rev); ok {
		t.Error("Get(Rev) should find nothing")
	}
}

func TestBooksRejectsInvalidAndDuplicate(t *testing.T) {
	b := NewBooks()
	if err := b.Add(canon.BookID("Tob"), &Book{}); err == nil {
		t.Error("adding a non-canonical id should fail")
	}
	if err := b.Add(canon.John, &Book{}); err != nil {
		t.Fatalf("Add(John) failed: %v", err)
	}
	if err := b.Add(canon.John, &Book{}); err == nil {
		t.Error("duplicate Add(John) should fail")
	}
}

func TestBooksIDsCanonicalOrder(t *testing.T) {
	b := NewBooks()
	for _, id := range []canon.BookID{canon.Rev, canon.Gen, canon.Matt} {
		if err := b.Add(id, &Book{}); err != nil {
			t.Fatalf("Add(%s) failed: %v", id, err)
		}
	}
	want := []canon.BookID{canon.Gen, canon.Matt, canon.Rev}
	if got := b.IDs(); !slices.Equal(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestBooksComplete(t *testing.T) {
	b := NewBooks()
	for _, id := range canon.Order() {
		if err := b.Add(id, &Book{Name: id.Name()}); err != nil {
			t.Fatalf("Add(%s) failed: %v", id, err)
		}
	}
	if !b.Complete() {
		t.Error("all 66 books should be complete")
	}

	partial := NewBooks()
	if err := partial.Add(canon.Gen, &Book{}); err != nil {
		t.Fatalf("Add failed: %v", err)
	}
	if partial.Complete() {
		t.Error("one book should not be complete")
	}
}

func TestTranslationLocal(t *testing.T) {
	books := NewBooks()
	local := &Translation{Meta: Meta{Name: "Test"}, Books: Local{Books: books}}
	got, ok := local.Local()
	if !ok {
		t.Fatal("Local() should succeed for local storage")
	}
	if got != books {
		t.Error("Local() should return the held collection")
	}

	remote := &Translation{Meta: Meta{Name: "Test"}, Books: Remote{Ref: "s3://bucket/kjv"}}
	if _, ok := remote.Local(); ok {
		t.Error("Local() should fail for remote storage")
	}
}
