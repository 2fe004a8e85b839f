// naming reconciles the filename conventions a note corpus accumulates:
// My-Note.md, my_note and [[My Note]] all canonicalize to the same key.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
	"unicode"
)

// NoSeparator requests that non-word runs be deleted instead of replaced.
const NoSeparator = "none"

var nonWordRun = regexp.MustCompile(`[^a-zA-Z0-9]+`)

// Normalizer derives canonical keys from filenames and link text.
type Normalizer struct {
	Extensions       []string // recognized note extensions, e.g. [".md"]
	Separator        string   // replacement for non-word runs, or NoSeparator
	DefaultExtension string   // appended by Slug when the title has none
}

// Key canonicalizes name: recognized extension stripped, directories
// stripped, non-word runs collapsed to the separator, lowercased.
// Key is idempotent.
func (n Normalizer) Key(name string) string {
	name = n.StripExtension(name)
	name = filepath.Base(filepath.ToSlash(name))
	name = nonWordRun.ReplaceAllString(name, n.separator())
	return strings.ToLower(name)
}

// FuzzyEqual reports whether two names canonicalize to the same key.
func (n Normalizer) FuzzyEqual(a, b string) bool {
	return n.Key(a) == n.Key(b)
}

// Slug turns a free-text title into a filename: non-word runs collapsed,
// lowercased, trailing separators trimmed, default extension appended
// unless the title already carries a recognized one.
func (n Normalizer) Slug(title string) string {
	ext := n.extensionOf(title)
	if ext != "" {
		title = title[:len(title)-len(ext)]
	}

	slug := nonWordRun.ReplaceAllString(title, n.separator())
	slug = strings.ToLower(slug)
	if sep := n.separator(); sep != "" {
		slug = strings.TrimRight(slug, sep)
	}
	if slug == "" {
		return ""
	}

	if ext != "" {
		return slug + strings.ToLower(ext)
	}
	return slug + n.DefaultExtension
}

// HasExtension reports whether name ends in a recognized note extension,
// matched case-insensitively.
func (n Normalizer) HasExtension(name string) bool {
	return n.extensionOf(name) != ""
}

// StripExtension removes one recognized extension suffix if present.
func (n Normalizer) StripExtension(name string) string {
	if ext := n.extensionOf(name); ext != "" {
		return name[:len(name)-len(ext)]
	}
	return name
}

func (n Normalizer) extensionOf(name string) string {
	for _, ext := range n.Extensions {
		if len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
			return name[len(name)-len(ext):]
		}
	}
	return ""
}

func (n Normalizer) separator() string {
	if n.Separator == NoSeparator {
		return ""
	}
	if n.Separator == "" {
		return "-"
	}
	return n.Separator
}

// Chicago-style words kept lowercase inside a heading.
var lowercaseWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {},
	"and": {}, "but": {}, "or": {}, "nor": {}, "for": {}, "so": {}, "yet": {},
	"as": {}, "at": {}, "by": {}, "in": {}, "of": {}, "off": {}, "on": {},
	"per": {}, "to": {}, "up": {}, "via": {},
}

// TitleCase renders a heading from free text: first and last words are
// always capitalized, every other word unless it is an article,
// preposition or conjunction.
func TitleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		_, lower := lowercaseWords[strings.ToLower(w)]
		if lower && i != 0 && i != len(words)-1 {
			words[i] = strings.ToLower(w)
			continue
		}
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}

func capitalize(w string) string {
	runes := []rune(w)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
