// Package mybible reads MyBible.zone SQLite modules. The schema uses
// lowercase names: a verses table (book_number, chapter, verse, text) and
// an info table of name/value metadata pairs.
package mybible

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/canonlint/canonlint/core/canon"
	"github.com/canonlint/canonlint/core/convert"
	"github.com/canonlint/canonlint/core/scripture"
	"github.com/canonlint/canonlint/internal/sqlite"
)

// Read parses a MyBible database into the legacy representation plus the
// metadata the info table carries.
func Read(path string) (convert.Legacy, scripture.Meta, error) {
	db, err := sqlite.OpenReadOnly(path)
	if err != nil {
		return convert.Legacy{}, scripture.Meta{}, err
	}
	defer db.Close()

	meta := readMeta(db)
	legacy, err := readVerses(db)
	if err != nil {
		return convert.Legacy{}, scripture.Meta{}, fmt.Errorf("read %s: %w", path, err)
	}
	return legacy, meta, nil
}

// readMeta loads the info table. A missing or malformed table is not
// fatal; the module simply has placeholder metadata.
func readMeta(db *sql.DB) scripture.Meta {
	meta := scripture.Meta{Name: "MyBible import", Code: "MYB"}

	rows, err := db.Query(`SELECT name, value FROM info`)
	if err != nil {
		return meta
	}
	defer rows.Close()

	for rows.Next() {
		var name, value string
		if err := rows.Scan(&name, &value); err != nil {
			continue
		}
		switch name {
		case "description":
			if value != "" {
				meta.Name = value
			}
		case "language":
			if value != "" {
				meta.Languages = []string{value}
			}
		}
	}
	return meta
}

func readVerses(db *sql.DB) (convert.Legacy, error) {
	rows, err := db.Query(
		`SELECT book_number, chapter, verse, text FROM verses ORDER BY book_number, chapter, verse`)
	if err != nil {
		return convert.Legacy{}, fmt.Errorf("query verses: %w", err)
	}
	defer rows.Close()

	order := canon.Order()

	var legacy convert.Legacy
	var book *convert.LegacyBook
	var chapter *convert.LegacyChapter
	lastBook, lastChapter := 0, 0

	for rows.Next() {
		var bookNum, chNum, vNum int
		var text sql.NullString
		if err := rows.Scan(&bookNum, &chNum, &vNum, &text); err != nil {
			return convert.Legacy{}, fmt.Errorf("scan verse: %w", err)
		}
		if bookNum < 1 || bookNum > len(order) {
			return convert.Legacy{}, fmt.Errorf("book number %d out of range", bookNum)
		}

		if book == nil || bookNum != lastBook {
			legacy.Books = append(legacy.Books, convert.LegacyBook{
				Name: order[bookNum-1].Name(),
			})
			book = &legacy.Books[len(legacy.Books)-1]
			lastBook = bookNum
			chapter = nil
		}
		if chapter == nil || chNum != lastChapter {
			book.Chapters = append(book.Chapters, convert.LegacyChapter{Chapter: chNum})
			chapter = &book.Chapters[len(book.Chapters)-1]
			lastChapter = chNum
		}

		chapter.Verses = append(chapter.Verses, convert.LegacyVerse{
			Verse:   vNum,
			Chapter: chNum,
			Text:    stripHTML(text.String),
		})
	}
	if err := rows.Err(); err != nil {
		return convert.Legacy{}, fmt.Errorf("iterate verses: %w", err)
	}
	return legacy, nil
}

// stripHTML removes markup tags but keeps their content.
func stripHTML(text string) string {
	result := text
	for strings.Contains(result, "<") && strings.Contains(result, ">") {
		start := strings.Index(result, "<")
		end := strings.Index(result[start:], ">")
		if end == -1 {
			break
		}
		result = result[:start] + result[start+end+1:]
	}
	return strings.TrimSpace(result)
}
