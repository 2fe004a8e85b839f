// complete enumerates completion candidates for a partial reference token.
package complete

import (
	"path/filepath"
	"strings"

	"notedown/internal/config"
	"notedown/internal/corpus"
	"notedown/internal/naming"
	"notedown/internal/tags"
	"notedown/internal/token"
)

// Candidate is one completion entry. Insert carries the token's leading
// markers so that replacing Span with Insert leaves valid reference syntax.
type Candidate struct {
	Label  string
	Insert string
	Span   token.Span
}

type Completer struct {
	Corpus corpus.Provider
	Names  naming.Normalizer
	Tags   *tags.Index
	Config config.Config
}

// Complete produces the candidate set for a classified token: every known
// tag for Tag tokens, every corpus file for Link tokens, nothing otherwise.
// fromPath is the absolute path of the document being completed in.
func (c *Completer) Complete(tok token.Token, fromPath string) ([]Candidate, error) {
	switch tok.Kind {
	case token.Tag:
		return c.tagCandidates(tok), nil
	case token.Link:
		return c.linkCandidates(tok, fromPath)
	default:
		return nil, nil
	}
}

func (c *Completer) tagCandidates(tok token.Token) []Candidate {
	var candidates []Candidate
	for _, tag := range c.Tags.Candidates() {
		candidates = append(candidates, Candidate{
			Label:  tag,
			Insert: "#" + tag,
			Span:   tok.Span,
		})
	}
	return candidates
}

func (c *Completer) linkCandidates(tok token.Token, fromPath string) ([]Candidate, error) {
	files, err := c.Corpus.Files()
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	for _, path := range files {
		label := c.label(path, fromPath)
		if label == "" {
			continue
		}
		candidates = append(candidates, Candidate{
			Label:  label,
			Insert: "[[" + label,
			Span:   tok.Span,
		})
	}
	return candidates, nil
}

// label renders a corpus file per the active naming convention: a basename
// form under uniqueFilenames, a path relative to the referencing document
// under relativePaths.
func (c *Completer) label(path, fromPath string) string {
	if c.Config.NamingConvention == config.RelativePaths && fromPath != "" {
		rel, err := filepath.Rel(filepath.Dir(fromPath), path)
		if err != nil {
			return ""
		}
		return filepath.ToSlash(rel)
	}

	base := filepath.Base(path)
	switch c.Config.CompletionStyle {
	case config.StyleNoExtension:
		return c.Names.StripExtension(base)
	case config.StyleSpaces:
		name := c.Names.StripExtension(base)
		return strings.NewReplacer("-", " ", "_", " ").Replace(name)
	default:
		return base
	}
}
