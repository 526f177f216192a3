// Package legacyjson reads the legacy JSON wire format, transparently
// decompressing xz-compressed files.
package legacyjson

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz"

	"github.com/canonlint/canonlint/core/convert"
)

var magicXZ = []byte{0xfd, '7', 'z', 'X', 'Z', 0x00}

// Read parses a legacy JSON file. Compression is detected from the stream
// itself, not the file name.
func Read(path string) (convert.Legacy, error) {
	f, err := os.Open(path)
	if err != nil {
		return convert.Legacy{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadFrom(f)
}

// ReadFrom parses legacy JSON from a stream, decompressing if the xz magic
// is present.
func ReadFrom(r io.Reader) (convert.Legacy, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(magicXZ))
	if err != nil && err != io.EOF {
		return convert.Legacy{}, fmt.Errorf("read input: %w", err)
	}

	var src io.Reader = br
	if bytes.HasPrefix(head, magicXZ) {
		xzr, err := xz.NewReader(br)
		if err != nil {
			return convert.Legacy{}, fmt.Errorf("xz reader: %w", err)
		}
		src = xzr
	}

	var legacy convert.Legacy
	if err := json.NewDecoder(src).Decode(&legacy); err != nil {
		return convert.Legacy{}, fmt.Errorf("decode legacy json: %w", err)
	}
	return legacy, nil
}
