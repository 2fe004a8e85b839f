package server

import (
	"net/url"
	"path/filepath"
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"notedown/internal/token"
)

// URIToPath converts a file URI to a filesystem path.
func URIToPath(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", err
	}
	return filepath.FromSlash(parsed.Path), nil
}

// PathToURI converts an absolute filesystem path to a file URI.
func PathToURI(path string) string {
	u := url.URL{
		Scheme: "file",
		Path:   filepath.ToSlash(filepath.Clean(path)),
	}
	return u.String()
}

// offsetAt converts an LSP position to a byte offset in doc. Positions past
// the end of a line or of the document clamp to the nearest valid offset.
func offsetAt(doc string, pos protocol.Position) int {
	offset := 0
	for line := uint32(0); line < pos.Line; line++ {
		next := strings.IndexByte(doc[offset:], '\n')
		if next < 0 {
			return len(doc)
		}
		offset += next + 1
	}

	lineEnd := strings.IndexByte(doc[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(doc) - offset
	}
	col := int(pos.Character)
	if col > lineEnd {
		col = lineEnd
	}
	return offset + col
}

// positionAt converts a byte offset in doc to an LSP position.
func positionAt(doc string, offset int) protocol.Position {
	if offset > len(doc) {
		offset = len(doc)
	}
	before := doc[:offset]
	line := strings.Count(before, "\n")
	col := offset - (strings.LastIndexByte(before, '\n') + 1)
	return protocol.Position{
		Line:      protocol.UInteger(line),
		Character: protocol.UInteger(col),
	}
}

// rangeFromSpan converts a byte-offset span to an LSP range.
func rangeFromSpan(doc string, span token.Span) protocol.Range {
	return protocol.Range{
		Start: positionAt(doc, span.Start),
		End:   positionAt(doc, span.End),
	}
}

func firstLineRange() protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: 0, Character: 0},
		End:   protocol.Position{Line: 0, Character: 0},
	}
}
