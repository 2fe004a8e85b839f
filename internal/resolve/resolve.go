// resolve maps a classified link token to the note files it refers to.
package resolve

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"notedown/internal/config"
	"notedown/internal/corpus"
	"notedown/internal/naming"
	"notedown/internal/token"
)

// ErrAmbiguousConvention is returned when note synthesis is requested under
// the relativePaths convention, which has no fixed creation root.
var ErrAmbiguousConvention = errors.New("cannot create notes under the relativePaths convention")

// Location points at a resolved note. Resolution targets the note as a
// whole, so Line is always the first line.
type Location struct {
	Path string
	Line int
}

type Resolver struct {
	Corpus corpus.Provider
	Names  naming.Normalizer
	Config config.Config
}

// Resolve turns a link token into zero or more note locations. fromPath is
// the absolute path of the referencing document. Tokens of any other kind
// resolve to nothing.
//
// The steps run in order and the first non-empty one wins: fuzzy basename
// lookup (uniqueFilenames only), then a path relative to the referencing
// document, then optional synthesis of the missing note.
func (r *Resolver) Resolve(tok token.Token, fromPath string) ([]Location, error) {
	if tok.Kind != token.Link || tok.Text == "" {
		return nil, nil
	}

	if r.Config.NamingConvention == config.UniqueFilenames {
		matches, err := r.byBasename(tok.Text)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			return matches, nil
		}
	}

	if loc, ok := r.relativeTo(tok, fromPath); ok {
		return []Location{loc}, nil
	}

	if r.Config.CreateMissingNote {
		path, err := r.CreateNote(tok.Text)
		if err != nil {
			return nil, err
		}
		return []Location{{Path: path}}, nil
	}

	return nil, nil
}

// byBasename collects every corpus file whose basename fuzzy-matches the
// token text. Basename uniqueness is a convention, not an invariant:
// multiple matches are all returned and the caller disambiguates.
func (r *Resolver) byBasename(text string) ([]Location, error) {
	files, err := r.Corpus.Files()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate corpus: %w", err)
	}

	var matches []Location
	for _, path := range files {
		if r.Names.FuzzyEqual(filepath.Base(path), text) {
			matches = append(matches, Location{Path: path})
		}
	}
	return matches, nil
}

// relativeTo resolves the token text against the referencing document's
// directory. An extensionless token is also probed with the default
// extension appended.
func (r *Resolver) relativeTo(tok token.Token, fromPath string) (Location, bool) {
	if fromPath == "" {
		return Location{}, false
	}
	base := filepath.Dir(fromPath)

	candidate := filepath.Clean(filepath.Join(base, filepath.FromSlash(tok.Text)))
	if r.Corpus.Exists(candidate) {
		return Location{Path: candidate}, true
	}

	if !tok.HasExtension {
		candidate += r.Config.DefaultExtension
		if r.Corpus.Exists(candidate) {
			return Location{Path: candidate}, true
		}
	}

	return Location{}, false
}

// CreateNote synthesizes a new note at the corpus root: the title is
// slugified into a filename and the file starts with a title-cased heading.
// Creation is refused under relativePaths, where there is no fixed root to
// create against. The write is synchronous and is not rolled back if a
// later step fails.
func (r *Resolver) CreateNote(title string) (string, error) {
	if r.Config.NamingConvention != config.UniqueFilenames {
		return "", ErrAmbiguousConvention
	}

	slug := r.Names.Slug(title)
	heading := naming.TitleCase(r.Names.StripExtension(title))
	if slug == "" || heading == "" {
		return "", fmt.Errorf("cannot create a note from title %q", title)
	}

	path := filepath.Join(r.Config.Root, slug)
	if !r.Corpus.Exists(path) {
		content := []byte("# " + heading + "\n\n")
		if err := r.Corpus.Write(path, content); err != nil {
			return "", fmt.Errorf("failed to create note %s: %w", path, err)
		}
		log.Printf("resolve: created note %s", path)
	}
	return path, nil
}
