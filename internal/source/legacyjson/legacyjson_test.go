package legacyjson

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz"
)

const sampleJSON = `{
	"books": [
		{
			"name": "Genesis",
			"chapters": [
				{
					"chapter": 1,
					"verses": [
						{"verse": 1, "chapter": 1, "text": "In the beginning"},
						{"verse": 2, "chapter": 1, "text": "And the earth"}
					]
				}
			]
		}
	]
}`

func TestReadPlain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "edition.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	legacy, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(legacy.Books) != 1 {
		t.Fatalf("books = %d, want 1", len(legacy.Books))
	}
	book := legacy.Books[0]
	if book.Name != "Genesis" {
		t.Errorf("name = %q, want Genesis", book.Name)
	}
	if len(book.Chapters) != 1 || len(book.Chapters[0].Verses) != 2 {
		t.Fatalf("structure = %d chapters, want 1 with 2 verses", len(book.Chapters))
	}
	v := book.Chapters[0].Verses[0]
	if v.Verse != 1 || v.Chapter != 1 || v.Text != "In the beginning" {
		t.Errorf("verse = %+v", v)
	}
}

func TestReadCompressed(t *testing.T) {
	var buf bytes.Buffer
	w, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz writer: %v", err)
	}
	if _, err := w.Write([]byte(sampleJSON)); err != nil {
		t.Fatalf("compress: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}

	path := filepath.Join(t.TempDir(), "edition.json.xz")
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	legacy, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(legacy.Books) != 1 || legacy.Books[0].Name != "Genesis" {
		t.Errorf("books = %+v, want Genesis", legacy.Books)
	}
}

func TestReadFromDetectsByContent(t *testing.T) {
	// Compression detection ignores the name; a bare reader works too.
	legacy, err := ReadFrom(bytes.NewReader([]byte(sampleJSON)))
	if err != nil {
		t.Fatalf("ReadFrom failed: %v", err)
	}
	if len(legacy.Books) != 1 {
		t.Errorf("books = %d, want 1", len(legacy.Books))
	}
}

func TestReadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Read(path); err == nil {
		t.Error("Read should fail on malformed JSON")
	}
}

func TestReadMissingFile(t *testing.T) {
	if _, err := Read(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("Read should fail for a missing file")
	}
}
