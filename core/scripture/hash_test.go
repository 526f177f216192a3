package scripture

import (
	"errors"
	"testing"

	"github.com/canonlint/canonlint/core/canon"
)

func fingerprintOf(t *testing.T, tr *Translation) string {
	t.Helper()
	fp, err := Fingerprint(tr)
	if err != nil {
		t.Fatalf("Fingerprint failed: %v", err)
	}
	return fp
}

func TestFingerprintDeterministic(t *testing.T) {
	a := fingerprintOf(t, sampleTranslation(t))
	b := fingerprintOf(t, sampleTranslation(t))
	if a != b {
		t.Errorf("same content, different fingerprints: %s vs %s", a, b)
	}
	if len(a) != 64 {
		t.Errorf("fingerprint length = %d, want 64 hex chars", len(a))
	}
}

func TestFingerprintSensitiveToText(t *testing.T) {
	base := fingerprintOf(t, sampleTranslation(t))

	changed := sampleTranslation(t)
	books, _ := changed.Local()
	gen, _ := books.Get(canon.Gen)
	ch, _ := gen.Chapters.Get(1)
	ch.Verses[0].Text = "in the beginning"

	if fingerprintOf(t, changed) == base {
		t.Error("changing verse text should change the fingerprint")
	}
}

func TestFingerprintSensitiveToMeta(t *testing.T) {
	base := fingerprintOf(t, sampleTranslation(t))

	changed := sampleTranslation(t)
	changed.Meta.Year = 2004
	if fingerprintOf(t, changed) == base {
		t.Error("changing the year should change the fingerprint")
	}
}

func TestFingerprintSensitiveToFootnote(t *testing.T) {
	base := fingerprintOf(t, sampleTranslation(t))

	changed := sampleTranslation(t)
	books, _ := changed.Local()
	gen, _ := books.Get(canon.Gen)
	ch, _ := gen.Chapters.Get(1)
	ch.Verses[1].Footnote = ""

	if fingerprintOf(t, changed) == base {
		t.Error("dropping a footnote should change the fingerprint")
	}
}

func TestFingerprintFieldBoundaries(t *testing.T) {
	// "ab" + "c" and "a" + "bc" must not collide.
	mk := func(name, code string) *Translation {
		return &Translation{
			Meta:  Meta{Name: name, Code: code},
			Books: Local{Books: NewBooks()},
		}
	}
	a := fingerprintOf(t, mk("ab", "c"))
	b := fingerprintOf(t, mk("a", "bc"))
	if a == b {
		t.Error("adjacent fields should not concatenate into the same digest")
	}
}

func TestFingerprintRemote(t *testing.T) {
	tr := &Translation{Meta: Meta{Name: "X"}, Books: Remote{Ref: "cas://x"}}
	_, err := Fingerprint(tr)
	if !errors.Is(err, ErrRemoteBooks) {
		t.Errorf("Fingerprint of remote storage should return ErrRemoteBooks, got %v", err)
	}
}
