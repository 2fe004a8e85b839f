package tags_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"notedown/internal/corpus"
	"notedown/internal/tags"
)

func newTestIndex(t *testing.T, files map[string]string) *tags.Index {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	return tags.NewIndex(corpus.NewDir(root, "**/*", []string{".md"}))
}

func waitReady(t *testing.T, ix *tags.Index) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for ix.State() != tags.Ready {
		if time.Now().After(deadline) {
			t.Fatal("tag scan never finished")
		}
		time.Sleep(time.Millisecond)
	}
}

func TestCandidatesPopulatesLazily(t *testing.T) {
	ix := newTestIndex(t, map[string]string{
		"a.md": "#urgent and #todo\n",
		"b.md": "more #urgent, plus #someday\n",
	})

	if ix.State() != tags.Empty {
		t.Fatalf("fresh index state = %v, want Empty", ix.State())
	}

	// First query starts the scan; it is allowed to return a partial set.
	ix.Candidates()
	if ix.State() == tags.Empty {
		t.Fatal("first query did not start population")
	}

	waitReady(t, ix)

	got := ix.Candidates()
	want := []string{"someday", "todo", "urgent"}
	if len(got) != len(want) {
		t.Fatalf("Candidates() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Candidates()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestCandidatesEmptyCorpus(t *testing.T) {
	ix := newTestIndex(t, nil)
	ix.Candidates()
	waitReady(t, ix)
	if got := ix.Candidates(); len(got) != 0 {
		t.Errorf("Candidates() = %v, want empty", got)
	}
}

// The set only grows: additions from open documents stick, duplicates fold.
func TestAdd(t *testing.T) {
	ix := newTestIndex(t, nil)
	ix.Add("beta", "alpha", "beta", "")
	ix.Candidates()
	waitReady(t, ix)

	got := ix.Candidates()
	if len(got) != 2 || got[0] != "alpha" || got[1] != "beta" {
		t.Errorf("Candidates() = %v, want [alpha beta]", got)
	}
}
