// Package zefania reads Zefania XML Bible modules: an XMLBIBLE root holding
// BIBLEBOOK, CHAPTER, and VERS elements with embedded numbering.
package zefania

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/canonlint/canonlint/core/convert"
	"github.com/canonlint/canonlint/core/scripture"
)

// Queries are compiled once; parsing cost then scales with document size
// only.
var (
	queryTitle    = xpath.MustCompile("//INFORMATION/title")
	queryLanguage = xpath.MustCompile("//INFORMATION/language")
	queryBooks    = xpath.MustCompile("//BIBLEBOOK")
	queryChapters = xpath.MustCompile("CHAPTER")
	queryVerses   = xpath.MustCompile("VERS")
)

// Read parses a Zefania XML file into the legacy representation plus the
// metadata the file carries.
func Read(path string) (convert.Legacy, scripture.Meta, error) {
	f, err := os.Open(path)
	if err != nil {
		return convert.Legacy{}, scripture.Meta{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	doc, err := xmlquery.Parse(f)
	if err != nil {
		return convert.Legacy{}, scripture.Meta{}, fmt.Errorf("parse %s: %w", path, err)
	}

	meta := scripture.Meta{Name: "Zefania import", Code: "ZEF"}
	if n := xmlquery.QuerySelector(doc, queryTitle); n != nil {
		if title := strings.TrimSpace(n.InnerText()); title != "" {
			meta.Name = title
		}
	}
	if n := xmlquery.QuerySelector(doc, queryLanguage); n != nil {
		if lang := strings.TrimSpace(n.InnerText()); lang != "" {
			meta.Languages = []string{lang}
		}
	}

	var legacy convert.Legacy
	for _, bookNode := range xmlquery.QuerySelectorAll(doc, queryBooks) {
		name := bookNode.SelectAttr("bname")
		if name == "" {
			name = bookNode.SelectAttr("bsname")
		}
		book := convert.LegacyBook{Name: name}

		for _, chNode := range xmlquery.QuerySelectorAll(bookNode, queryChapters) {
			cnum, err := strconv.Atoi(chNode.SelectAttr("cnumber"))
			if err != nil {
				return convert.Legacy{}, scripture.Meta{}, fmt.Errorf(
					"book %q: bad cnumber %q: %w", name, chNode.SelectAttr("cnumber"), err)
			}
			chapter := convert.LegacyChapter{Chapter: cnum}

			for _, vNode := range xmlquery.QuerySelectorAll(chNode, queryVerses) {
				vnum, err := strconv.Atoi(vNode.SelectAttr("vnumber"))
				if err != nil {
					return convert.Legacy{}, scripture.Meta{}, fmt.Errorf(
						"book %q chapter %d: bad vnumber %q: %w", name, cnum, vNode.SelectAttr("vnumber"), err)
				}
				chapter.Verses = append(chapter.Verses, convert.LegacyVerse{
					Verse:   vnum,
					Chapter: cnum,
					Text:    strings.TrimSpace(vNode.InnerText()),
				})
			}
			book.Chapters = append(book.Chapters, chapter)
		}
		legacy.Books = append(legacy.Books, book)
	}

	return legacy, meta, nil
}
