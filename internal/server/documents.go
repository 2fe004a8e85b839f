package server

import (
	"fmt"
	"sync"
)

// DocumentStore holds the text of every open document, so classification
// and completion see unsaved edits instead of the on-disk corpus.
type DocumentStore struct {
	mu   sync.Mutex
	docs map[string]string
}

func NewDocumentStore() *DocumentStore {
	return &DocumentStore{docs: make(map[string]string)}
}

// Get returns the current text for a URI.
func (ds *DocumentStore) Get(uri string) (string, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	doc, ok := ds.docs[uri]
	if !ok {
		return "", fmt.Errorf("document not loaded for %s", uri)
	}
	return doc, nil
}

// Set replaces the text for a URI.
func (ds *DocumentStore) Set(uri, content string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.docs[uri] = content
}

// Release forgets a closed document.
func (ds *DocumentStore) Release(uri string) {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	delete(ds.docs, uri)
}
