// Package source loads Scripture editions from external formats. Every
// reader produces the legacy representation, so all inputs funnel through
// the same conversion pipeline regardless of where they came from.
package source

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/canonlint/canonlint/core/convert"
	"github.com/canonlint/canonlint/core/scripture"
	"github.com/canonlint/canonlint/internal/source/legacyjson"
	"github.com/canonlint/canonlint/internal/source/mybible"
	"github.com/canonlint/canonlint/internal/source/zefania"
)

// Format identifies a supported input format.
type Format string

// Supported input formats.
const (
	FormatLegacyJSON Format = "legacy-json"
	FormatZefania    Format = "zefania"
	FormatMyBible    Format = "mybible"
	FormatUnknown    Format = ""
)

// Magic prefixes for content sniffing.
var (
	magicSQLite = []byte("SQLite format 3\x00")
	magicXZ     = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}
)

// Detect identifies the format of a file, first by extension, then by
// content sniffing for files with uninformative names.
func Detect(path string) (Format, error) {
	name := strings.ToLower(filepath.Base(path))
	switch {
	case strings.HasSuffix(name, ".json"), strings.HasSuffix(name, ".json.xz"):
		return FormatLegacyJSON, nil
	case strings.HasSuffix(name, ".xml"):
		return FormatZefania, nil
	case strings.HasSuffix(name, ".sqlite3"), strings.HasSuffix(name, ".sqlite"):
		return FormatMyBible, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return FormatUnknown, fmt.Errorf("detect %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, 16)
	n, _ := f.Read(head)
	head = head[:n]

	switch {
	case bytes.HasPrefix(head, magicSQLite):
		return FormatMyBible, nil
	case bytes.HasPrefix(head, magicXZ):
		// Compressed input without a .json.xz name is still assumed to
		// hold legacy JSON; nothing else ships compressed.
		return FormatLegacyJSON, nil
	case len(bytes.TrimLeft(head, " \t\r\n")) > 0 && bytes.TrimLeft(head, " \t\r\n")[0] == '<':
		return FormatZefania, nil
	case len(bytes.TrimLeft(head, " \t\r\n")) > 0 && bytes.TrimLeft(head, " \t\r\n")[0] == '{':
		return FormatLegacyJSON, nil
	}
	return FormatUnknown, fmt.Errorf("detect %s: unrecognized format", path)
}

// Load reads an edition in any supported format. Metadata comes from the
// file when the format carries it; legacy JSON does not, so it gets the
// placeholder.
func Load(path string) (convert.Legacy, scripture.Meta, error) {
	format, err := Detect(path)
	if err != nil {
		return convert.Legacy{}, scripture.Meta{}, err
	}
	return LoadAs(path, format)
}

// LoadAs reads an edition with the format fixed by the caller.
func LoadAs(path string, format Format) (convert.Legacy, scripture.Meta, error) {
	switch format {
	case FormatLegacyJSON:
		legacy, err := legacyjson.Read(path)
		return legacy, convert.PlaceholderMeta(), err
	case FormatZefania:
		return zefania.Read(path)
	case FormatMyBible:
		return mybible.Read(path)
	default:
		return convert.Legacy{}, scripture.Meta{}, fmt.Errorf("load %s: unsupported format %q", path, format)
	}
}
