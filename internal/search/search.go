// search scans the corpus for literal occurrences of a reference token.
// Unlike resolution, this is an exact scan: the query string must appear
// verbatim as a whitespace-delimited word.
package search

import (
	"context"
	"path/filepath"
	"strings"
	"unicode"

	"notedown/internal/corpus"
	"notedown/internal/token"
)

// Occurrence is one exact match. Line and columns are zero-based byte
// offsets; the column span excludes surrounding whitespace.
type Occurrence struct {
	Path     string
	Line     int
	StartCol int
	EndCol   int
}

type Searcher struct {
	Corpus corpus.Provider
}

// Search reports every literal occurrence of the token across the corpus,
// in enumeration order then top-to-bottom line order. Unreadable files are
// excluded from the result rather than failing the scan.
func (s *Searcher) Search(ctx context.Context, tok token.Token) ([]Occurrence, error) {
	query := Query(tok)
	if query == "" {
		return nil, nil
	}

	files, err := s.Corpus.Files()
	if err != nil {
		return nil, err
	}

	order := make(map[string]int, len(files))
	for i, path := range files {
		order[path] = i
	}
	perFile := make([][]Occurrence, len(files))

	err = corpus.ReadAll(ctx, s.Corpus, files, func(path string, data []byte) {
		perFile[order[path]] = scanFile(path, string(data), query)
	})
	if err != nil {
		return nil, err
	}

	var occurrences []Occurrence
	for _, occ := range perFile {
		occurrences = append(occurrences, occ...)
	}
	return occurrences, nil
}

// Query builds the literal search string: "#text" for tags and
// "[[basename]]" for links. Links are searched by basename only, folding
// files that share a basename into one query.
func Query(tok token.Token) string {
	switch tok.Kind {
	case token.Tag:
		return "#" + tok.Text
	case token.Link:
		return "[[" + filepath.Base(filepath.ToSlash(tok.Text)) + "]]"
	default:
		return ""
	}
}

func scanFile(path, content, query string) []Occurrence {
	var occurrences []Occurrence
	for lineNo, line := range strings.Split(content, "\n") {
		for _, span := range wordSpans(line) {
			if line[span.Start:span.End] == query {
				occurrences = append(occurrences, Occurrence{
					Path:     path,
					Line:     lineNo,
					StartCol: span.Start,
					EndCol:   span.End,
				})
			}
		}
	}
	return occurrences
}

// wordSpans splits a line on whitespace while accounting for the consumed
// whitespace, so every span carries its exact column offsets.
func wordSpans(line string) []token.Span {
	var spans []token.Span
	i := 0
	for i < len(line) {
		for i < len(line) && unicode.IsSpace(rune(line[i])) {
			i++
		}
		start := i
		for i < len(line) && !unicode.IsSpace(rune(line[i])) {
			i++
		}
		if i > start {
			spans = append(spans, token.Span{Start: start, End: i})
		}
	}
	return spans
}
