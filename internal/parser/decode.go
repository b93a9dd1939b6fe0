package parser

import (
	"bytes"
	"io"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// newUTF8Reader wraps content in a decoder that honours a leading BOM and
// replaces invalid UTF-8 sequences with U+FFFD instead of failing.
func newUTF8Reader(content []byte) io.Reader {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	return transform.NewReader(bytes.NewReader(content), decoder)
}
