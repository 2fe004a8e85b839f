package corpus_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"notedown/internal/corpus"
)

// newTestCorpus lays out a small note tree and returns a Dir over it.
func newTestCorpus(t *testing.T, files map[string]string) *corpus.Dir {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir failed: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("write failed: %v", err)
		}
	}
	return corpus.NewDir(root, "**/*", []string{".md", ".markdown"})
}

func relPaths(t *testing.T, d *corpus.Dir, files []string) []string {
	t.Helper()
	rels := make([]string, len(files))
	for i, f := range files {
		rel, err := filepath.Rel(d.Root, f)
		if err != nil {
			t.Fatalf("rel failed: %v", err)
		}
		rels[i] = filepath.ToSlash(rel)
	}
	return rels
}

func TestFiles(t *testing.T) {
	d := newTestCorpus(t, map[string]string{
		"project-plan.md":     "# Project Plan\n",
		"My Notes/other.md":   "# Other\n",
		"deep/nested/n.md":    "",
		"notes.markdown":      "",
		"ignored.txt":         "not a note",
		".hidden/secret.md":   "skipped",
		".hidden-file.md":     "skipped",
		"sub/.also-hidden.md": "skipped",
	})

	files, err := d.Files()
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}

	got := relPaths(t, d, files)
	want := []string{
		"My Notes/other.md",
		"deep/nested/n.md",
		"notes.markdown",
		"project-plan.md",
	}
	if len(got) != len(want) {
		t.Fatalf("Files() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Files()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestFilesGlobPattern(t *testing.T) {
	d := newTestCorpus(t, map[string]string{
		"journal/day1.md": "",
		"journal/day2.md": "",
		"inbox/todo.md":   "",
	})
	d.Pattern = "journal/**/*"

	files, err := d.Files()
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	got := relPaths(t, d, files)
	if len(got) != 2 || got[0] != "journal/day1.md" || got[1] != "journal/day2.md" {
		t.Errorf("Files() with pattern = %v", got)
	}
}

func TestFilesEmptyCorpus(t *testing.T) {
	d := corpus.NewDir(t.TempDir(), "**/*", []string{".md"})
	files, err := d.Files()
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	if len(files) != 0 {
		t.Errorf("expected empty corpus, got %v", files)
	}
}

func TestExistsAndWrite(t *testing.T) {
	d := newTestCorpus(t, map[string]string{"a.md": "x"})

	existing := filepath.Join(d.Root, "a.md")
	if !d.Exists(existing) {
		t.Errorf("Exists(%q) = false, want true", existing)
	}
	if d.Exists(filepath.Join(d.Root, "missing.md")) {
		t.Error("Exists reported a missing file")
	}
	if d.Exists(d.Root) {
		t.Error("Exists reported a directory as a file")
	}

	created := filepath.Join(d.Root, "new.md")
	if err := d.Write(created, []byte("# New\n")); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	data, err := d.Read(created)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(data) != "# New\n" {
		t.Errorf("Read() = %q", data)
	}
}

func TestReadAll(t *testing.T) {
	d := newTestCorpus(t, map[string]string{
		"a.md": "alpha",
		"b.md": "beta",
		"c.md": "gamma",
	})
	files, err := d.Files()
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}

	var mu sync.Mutex
	seen := map[string]string{}
	err = corpus.ReadAll(context.Background(), d, files, func(path string, data []byte) {
		mu.Lock()
		seen[filepath.Base(path)] = string(data)
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	want := map[string]string{"a.md": "alpha", "b.md": "beta", "c.md": "gamma"}
	for name, content := range want {
		if seen[name] != content {
			t.Errorf("seen[%q] = %q, want %q", name, seen[name], content)
		}
	}
}

// A single unreadable file is excluded, never fatal to the batch.
func TestReadAllSkipsUnreadable(t *testing.T) {
	d := newTestCorpus(t, map[string]string{"a.md": "alpha"})
	files, err := d.Files()
	if err != nil {
		t.Fatalf("Files failed: %v", err)
	}
	files = append(files, filepath.Join(d.Root, "vanished.md"))

	var mu sync.Mutex
	var seen []string
	err = corpus.ReadAll(context.Background(), d, files, func(path string, data []byte) {
		mu.Lock()
		seen = append(seen, filepath.Base(path))
		mu.Unlock()
	})
	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}
	if len(seen) != 1 || seen[0] != "a.md" {
		t.Errorf("seen = %v, want [a.md]", seen)
	}
}
