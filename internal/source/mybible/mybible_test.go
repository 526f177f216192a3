package mybible

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/canonlint/canonlint/internal/sqlite"
)

type verseRow struct {
	book, chapter, verse int
	text                 string
}

func buildDB(t *testing.T, info map[string]string, verses []verseRow) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "module.SQLite3")
	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer db.Close()

	mustExec(t, db, `CREATE TABLE info (name TEXT, value TEXT)`)
	mustExec(t, db, `CREATE TABLE verses (
		book_number INTEGER NOT NULL,
		chapter INTEGER NOT NULL,
		verse INTEGER NOT NULL,
		text TEXT)`)

	for name, value := range info {
		mustExecArgs(t, db, `INSERT INTO info (name, value) VALUES (?, ?)`, name, value)
	}
	for _, v := range verses {
		mustExecArgs(t, db, `INSERT INTO verses (book_number, chapter, verse, text) VALUES (?, ?, ?, ?)`,
			v.book, v.chapter, v.verse, v.text)
	}
	return path
}

func mustExec(t *testing.T, db *sql.DB, query string) {
	t.Helper()
	if _, err := db.Exec(query); err != nil {
		t.Fatalf("exec %s: %v", query, err)
	}
}

func mustExecArgs(t *testing.T, db *sql.DB, query string, args ...any) {
	t.Helper()
	if _, err := db.Exec(query, args...); err != nil {
		t.Fatalf("exec %s: %v", query, err)
	}
}

func TestRead(t *testing.T) {
	path := buildDB(t,
		map[string]string{"description": "Test Module", "language": "en"},
		[]verseRow{
			{1, 1, 1, "In the beginning"},
			{1, 1, 2, "And the earth"},
			{1, 2, 1, "Thus the heavens"},
			{2, 1, 1, "Now these are the names"},
		})

	legacy, meta, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if meta.Name != "Test Module" {
		t.Errorf("meta name = %q, want Test Module", meta.Name)
	}
	if len(meta.Languages) != 1 || meta.Languages[0] != "en" {
		t.Errorf("languages = %v, want [en]", meta.Languages)
	}

	if len(legacy.Books) != 2 {
		t.Fatalf("books = %d, want 2", len(legacy.Books))
	}
	gen := legacy.Books[0]
	if gen.Name != "Genesis" {
		t.Errorf("book 1 name = %q, want Genesis", gen.Name)
	}
	if legacy.Books[1].Name != "Exodus" {
		t.Errorf("book 2 name = %q, want Exodus", legacy.Books[1].Name)
	}
	if len(gen.Chapters) != 2 {
		t.Fatalf("Genesis chapters = %d, want 2", len(gen.Chapters))
	}
	if len(gen.Chapters[0].Verses) != 2 {
		t.Errorf("Genesis 1 verses = %d, want 2", len(gen.Chapters[0].Verses))
	}
	v := gen.Chapters[0].Verses[0]
	if v.Verse != 1 || v.Chapter != 1 || v.Text != "In the beginning" {
		t.Errorf("verse = %+v", v)
	}
}

func TestReadStripsMarkup(t *testing.T) {
	path := buildDB(t, nil, []verseRow{
		{1, 1, 1, "In the <i>beginning</i> God"},
	})
	legacy, _, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	got := legacy.Books[0].Chapters[0].Verses[0].Text
	if got != "In the beginning God" {
		t.Errorf("text = %q, want markup stripped", got)
	}
}

func TestReadMissingInfoTolerated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "noinfo.SQLite3")
	db, err := sqlite.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	mustExec(t, db, `CREATE TABLE verses (
		book_number INTEGER NOT NULL,
		chapter INTEGER NOT NULL,
		verse INTEGER NOT NULL,
		text TEXT)`)
	mustExecArgs(t, db, `INSERT INTO verses (book_number, chapter, verse, text) VALUES (1, 1, 1, 'x')`)
	db.Close()

	legacy, meta, err := Read(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(legacy.Books) != 1 {
		t.Errorf("books = %d, want 1", len(legacy.Books))
	}
	if meta.Name == "" {
		t.Error("meta should fall back to a labeled default")
	}
}

func TestReadBookNumberOutOfRange(t *testing.T) {
	path := buildDB(t, nil, []verseRow{{67, 1, 1, "x"}})
	if _, _, err := Read(path); err == nil {
		t.Error("book number 67 should fail")
	}
}
