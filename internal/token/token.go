// token classifies the reference under a cursor: a #tag, a [[wiki-link]],
// or nothing. The two rules use disjoint leading sentinels, so at most one
// ever matches a given position.
package token

import (
	"regexp"
	"strings"
)

type Kind int

const (
	None Kind = iota
	Tag
	Link
)

func (k Kind) String() string {
	switch k {
	case Tag:
		return "tag"
	case Link:
		return "link"
	default:
		return "none"
	}
}

// Span is a half-open byte-offset range [Start, End) over the document.
type Span struct {
	Start int
	End   int
}

// Token is the classification result. Text carries the captured word
// without its leading markers; Span covers the full matched run including
// the markers, so replacing the span on completion keeps them intact.
type Token struct {
	Kind         Kind
	Text         string
	HasExtension bool
	Span         Span
}

var (
	tagPattern = regexp.MustCompile(`#[\w-]+`)
	// A link run opens with [[ and stops at the first ] or end of line.
	// Spaces are allowed so titles like [[Project Plan]] classify whole.
	linkPattern = regexp.MustCompile(`\[\[[\w./\\ -]+`)
)

// BoundaryFinder locates the pattern match containing offset, the word
// boundary lookup an editor host would provide. It reports false when no
// match covers the offset.
type BoundaryFinder func(doc string, offset int, pattern *regexp.Regexp) (Span, bool)

// Classify runs the grammar with the default line-based boundary finder.
// exts is the set of recognized note extensions used for HasExtension.
func Classify(doc string, offset int, exts []string) Token {
	return ClassifyWith(LineBoundaryFinder, doc, offset, exts)
}

// ClassifyWith runs the grammar with an injected boundary finder, checking
// the tag rule before the link rule.
func ClassifyWith(find BoundaryFinder, doc string, offset int, exts []string) Token {
	if offset < 0 || offset > len(doc) {
		return Token{}
	}

	if span, ok := find(doc, offset, tagPattern); ok {
		text := strings.TrimLeft(doc[span.Start:span.End], "#")
		return Token{Kind: Tag, Text: text, Span: span}
	}

	if span, ok := find(doc, offset, linkPattern); ok {
		text := doc[span.Start+2 : span.End]
		return Token{
			Kind:         Link,
			Text:         text,
			HasExtension: hasNoteExtension(text, exts),
			Span:         span,
		}
	}

	return Token{}
}

// LineBoundaryFinder is the default BoundaryFinder: it scans the line
// containing offset and returns the first pattern match whose range covers
// the offset (the end boundary counts as inside, as editors treat a cursor
// sitting right after a word).
func LineBoundaryFinder(doc string, offset int, pattern *regexp.Regexp) (Span, bool) {
	lineStart := strings.LastIndexByte(doc[:offset], '\n') + 1
	lineEnd := strings.IndexByte(doc[offset:], '\n')
	if lineEnd < 0 {
		lineEnd = len(doc)
	} else {
		lineEnd += offset
	}
	line := doc[lineStart:lineEnd]

	for _, m := range pattern.FindAllStringIndex(line, -1) {
		start, end := lineStart+m[0], lineStart+m[1]
		if start <= offset && offset <= end {
			return Span{Start: start, End: end}, true
		}
	}
	return Span{}, false
}

func hasNoteExtension(text string, exts []string) bool {
	for _, ext := range exts {
		if len(text) > len(ext) && strings.EqualFold(text[len(text)-len(ext):], ext) {
			return true
		}
	}
	return false
}

// TagsIn returns the text of every tag token in the document, markers
// stripped, in source order. Used by the corpus-wide tag census.
func TagsIn(doc string) []string {
	var tags []string
	for _, m := range tagPattern.FindAllString(doc, -1) {
		tags = append(tags, strings.TrimLeft(m, "#"))
	}
	return tags
}
