package zefania

import (
	"os"
	"path/filepath"
	"testing"
)

const sampleXML = `<?xml version="1.0" encoding="utf-8"?>
<XMLBIBLE biblename="Test Bible">
  <INFORMATION>
    <title>Test Bible</title>
    <language>en</language>
  </INFORMATION>
  <BIBLEBOOK bnumber="1" bname="Genesis" bsname="Gen">
    <CHAPTER cnumber="1">
      <VERS vnumber="1">In the beginning</VERS>
      <VERS vnumber="2">And the earth</VERS>
    </CHAPTER>
    <CHAPTER cnumber="2">
      <VERS vnumber="1">Thus the heavens</VERS>
    </CHAPTER>
  </BIBLEBOOK>
  <BIBLEBOOK bnumber="2" bname="Exodus" bsname="Exod">
    <CHAPTER cnumber="1">
      <VERS vnumber="1">Now these are the names</VERS>
    </CHAPTER>
  </BIBLEBOOK>
</XMLBIBLE>`

func writeFixture(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "bible.xml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestRead(t *testing.T) {
	legacy, meta, err := Read(writeFixture(t, sampleXML))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if meta.Name != "Test Bible" {
		t.Errorf("meta name = %q, want Test Bible", meta.Name)
	}
	if len(meta.Languages) != 1 || meta.Languages[0] != "en" {
		t.Errorf("languages = %v, want [en]", meta.Languages)
	}

	if len(legacy.Books) != 2 {
		t.Fatalf("books = %d, want 2", len(legacy.Books))
	}
	gen := legacy.Books[0]
	if gen.Name != "Genesis" {
		t.Errorf("name = %q, want Genesis", gen.Name)
	}
	if len(gen.Chapters) != 2 {
		t.Fatalf("chapters = %d, want 2", len(gen.Chapters))
	}
	if gen.Chapters[0].Chapter != 1 || gen.Chapters[1].Chapter != 2 {
		t.Errorf("chapter numbers = %d, %d", gen.Chapters[0].Chapter, gen.Chapters[1].Chapter)
	}

	v := gen.Chapters[0].Verses[0]
	if v.Verse != 1 || v.Chapter != 1 || v.Text != "In the beginning" {
		t.Errorf("verse = %+v", v)
	}
	// The redundant chapter number is populated from the enclosing CHAPTER.
	if gen.Chapters[1].Verses[0].Chapter != 2 {
		t.Errorf("embedded chapter = %d, want 2", gen.Chapters[1].Verses[0].Chapter)
	}
}

func TestReadShortNameFallback(t *testing.T) {
	const xml = `<XMLBIBLE>
  <BIBLEBOOK bnumber="1" bsname="Gen">
    <CHAPTER cnumber="1"><VERS vnumber="1">text</VERS></CHAPTER>
  </BIBLEBOOK>
</XMLBIBLE>`
	legacy, _, err := Read(writeFixture(t, xml))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if legacy.Books[0].Name != "Gen" {
		t.Errorf("name = %q, want the bsname fallback", legacy.Books[0].Name)
	}
}

func TestReadBadNumbers(t *testing.T) {
	const badChapter = `<XMLBIBLE>
  <BIBLEBOOK bname="Genesis"><CHAPTER cnumber="one"><VERS vnumber="1">x</VERS></CHAPTER></BIBLEBOOK>
</XMLBIBLE>`
	if _, _, err := Read(writeFixture(t, badChapter)); err == nil {
		t.Error("non-numeric cnumber should fail")
	}

	const badVerse = `<XMLBIBLE>
  <BIBLEBOOK bname="Genesis"><CHAPTER cnumber="1"><VERS vnumber="x">x</VERS></CHAPTER></BIBLEBOOK>
</XMLBIBLE>`
	if _, _, err := Read(writeFixture(t, badVerse)); err == nil {
		t.Error("non-numeric vnumber should fail")
	}
}

func TestReadMetaDefaults(t *testing.T) {
	const xml = `<XMLBIBLE>
  <BIBLEBOOK bname="Genesis"><CHAPTER cnumber="1"><VERS vnumber="1">x</VERS></CHAPTER></BIBLEBOOK>
</XMLBIBLE>`
	_, meta, err := Read(writeFixture(t, xml))
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if meta.Name == "" || meta.Code == "" {
		t.Errorf("meta should fall back to labeled defaults, got %+v", meta)
	}
}
