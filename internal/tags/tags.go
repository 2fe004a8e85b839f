// tags maintains the corpus-wide tag candidate set. The set is filled once
// by a background scan kicked off on first use and only ever grows;
// consumers get a best-effort snapshot whatever the scan's progress.
package tags

import (
	"context"
	"log"
	"sort"
	"sync"

	"notedown/internal/corpus"
	"notedown/internal/token"
)

type State int

const (
	Empty State = iota
	Populating
	Ready
)

// Index is the one piece of process-wide engine state. It is owned by
// whoever composes the engine; there is no package-level instance.
type Index struct {
	mu     sync.Mutex
	state  State
	seen   map[string]struct{}
	corpus corpus.Provider
}

func NewIndex(c corpus.Provider) *Index {
	return &Index{
		seen:   make(map[string]struct{}),
		corpus: c,
	}
}

// Candidates returns a sorted snapshot of every tag observed so far. The
// first call starts the corpus scan without waiting for it, so early calls
// may observe a partially-populated set.
func (ix *Index) Candidates() []string {
	ix.mu.Lock()
	if ix.state == Empty {
		ix.state = Populating
		go ix.populate()
	}
	snapshot := make([]string, 0, len(ix.seen))
	for tag := range ix.seen {
		snapshot = append(snapshot, tag)
	}
	ix.mu.Unlock()

	sort.Strings(snapshot)
	return snapshot
}

// Add records tags observed outside the background scan, e.g. from open
// documents. The set never shrinks.
func (ix *Index) Add(tags ...string) {
	ix.mu.Lock()
	for _, tag := range tags {
		if tag != "" {
			ix.seen[tag] = struct{}{}
		}
	}
	ix.mu.Unlock()
}

func (ix *Index) State() State {
	ix.mu.Lock()
	defer ix.mu.Unlock()
	return ix.state
}

func (ix *Index) populate() {
	files, err := ix.corpus.Files()
	if err != nil {
		log.Println("tags: enumeration failed:", err)
		ix.setState(Empty) // allow a later call to retry
		return
	}

	err = corpus.ReadAll(context.Background(), ix.corpus, files, func(path string, data []byte) {
		ix.Add(token.TagsIn(string(data))...)
	})
	if err != nil {
		log.Println("tags: scan failed:", err)
	}

	ix.setState(Ready)
}

func (ix *Index) setState(s State) {
	ix.mu.Lock()
	ix.state = s
	ix.mu.Unlock()
}
