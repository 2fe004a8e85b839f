package main

import (
	"fmt"
	"os"
	"time"

	"notedown/internal/config"
	"notedown/internal/corpus"
	"notedown/internal/tags"
)

// runDump enumerates the corpus described by a config file and prints each
// note path plus the tag census, without an editor attached.
func runDump(configPath string) error {
	f, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer f.Close()
	cfg, err := config.LoadFromJSON(f)
	if err != nil {
		return err
	}

	c := corpus.NewDir(cfg.Root, cfg.GlobPattern, cfg.FileExtensions)
	files, err := c.Files()
	if err != nil {
		return err
	}

	fmt.Printf("corpus root %s: %d notes\n", cfg.Root, len(files))
	for _, path := range files {
		fmt.Println("  ", path)
	}

	ix := tags.NewIndex(c)
	ix.Candidates() // kick off the scan
	deadline := time.Now().Add(10 * time.Second)
	for ix.State() != tags.Ready && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	for _, tag := range ix.Candidates() {
		fmt.Println("  #" + tag)
	}

	return nil
}
