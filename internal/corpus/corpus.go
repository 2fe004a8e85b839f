// corpus provides the file index capability the resolution engine runs
// against. There is deliberately no cache: every enumeration walks the
// directory again, so results can never go stale.
package corpus

import (
	"context"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"
)

// Provider enumerates note files and mediates all engine I/O.
type Provider interface {
	// Files returns the absolute paths of every note in the corpus, in a
	// stable enumeration order.
	Files() ([]string, error)
	Read(path string) ([]byte, error)
	Exists(path string) bool
	Write(path string, data []byte) error
}

// Dir is a Provider over a directory tree. Entries whose name begins with
// "." are skipped entirely; the remaining files are matched against Pattern
// and filtered to the recognized extensions.
type Dir struct {
	Root       string
	Pattern    string   // doublestar glob, relative to Root
	Extensions []string // recognized note extensions, e.g. [".md"]
}

func NewDir(root, pattern string, extensions []string) *Dir {
	if pattern == "" {
		pattern = "**/*"
	}
	return &Dir{Root: root, Pattern: pattern, Extensions: extensions}
}

func (d *Dir) Files() ([]string, error) {
	var files []string

	err := filepath.WalkDir(d.Root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			log.Println("corpus: walk error:", err)
			return nil
		}
		if entry.IsDir() {
			if hidden(entry.Name()) && path != d.Root {
				return fs.SkipDir
			}
			return nil
		}
		if hidden(entry.Name()) || !d.recognized(entry.Name()) {
			return nil
		}

		rel, err := filepath.Rel(d.Root, path)
		if err != nil {
			return nil
		}
		ok, err := doublestar.Match(d.Pattern, filepath.ToSlash(rel))
		if err != nil {
			return err
		}
		if ok {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(files)
	return files, nil
}

func (d *Dir) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func (d *Dir) Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func (d *Dir) Write(path string, data []byte) error {
	return os.WriteFile(path, data, 0644)
}

func (d *Dir) recognized(name string) bool {
	for _, ext := range d.Extensions {
		if len(name) > len(ext) && strings.EqualFold(name[len(name)-len(ext):], ext) {
			return true
		}
	}
	return false
}

func hidden(name string) bool {
	return strings.HasPrefix(name, ".")
}

// ReadAll reads every file concurrently and hands the contents to fn.
// A file that fails to read is logged and excluded; the batch never aborts
// on a single unreadable file. fn may be called from multiple goroutines.
func ReadAll(ctx context.Context, p Provider, files []string, fn func(path string, data []byte)) error {
	group, ctx := errgroup.WithContext(ctx)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for _, path := range files {
		path := path
		group.Go(func() error {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			data, err := p.Read(path)
			if err != nil {
				log.Println("corpus: read error:", path, err)
				return nil
			}
			fn(path, data)
			return nil
		})
	}

	return group.Wait()
}
