package server

import (
	"fmt"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"notedown/internal/token"
)

func (s *Server) textDocumentDidOpen(
	context *glsp.Context,
	params *protocol.DidOpenTextDocumentParams,
) error {
	text := params.TextDocument.Text
	s.docs.Set(params.TextDocument.URI, text)
	// Tags in open documents join the candidate set immediately.
	s.tags.Add(token.TagsIn(text)...)
	return nil
}

func (s *Server) textDocumentDidChange(
	context *glsp.Context,
	params *protocol.DidChangeTextDocumentParams,
) error {
	uri := params.TextDocument.URI
	for _, raw := range params.ContentChanges {
		switch change := raw.(type) {
		case protocol.TextDocumentContentChangeEventWhole:
			s.docs.Set(uri, change.Text)
		case protocol.TextDocumentContentChangeEvent:
			doc, err := s.docs.Get(uri)
			if err != nil {
				return err
			}
			if change.Range == nil {
				s.docs.Set(uri, change.Text)
				continue
			}
			start := offsetAt(doc, change.Range.Start)
			end := offsetAt(doc, change.Range.End)
			s.docs.Set(uri, doc[:start]+change.Text+doc[end:])
		default:
			return fmt.Errorf("unexpected change event type %T", raw)
		}
	}

	if doc, err := s.docs.Get(uri); err == nil {
		s.tags.Add(token.TagsIn(doc)...)
	}
	return nil
}

func (s *Server) textDocumentDidClose(
	context *glsp.Context,
	params *protocol.DidCloseTextDocumentParams,
) error {
	s.docs.Release(params.TextDocument.URI)
	return nil
}

// documentAt returns the open-document text and classified token at the
// given position, falling back to the on-disk content when the document is
// not open.
func (s *Server) documentAt(
	uri string,
	position protocol.Position,
) (doc string, tok token.Token, fromPath string, err error) {
	fromPath, err = URIToPath(uri)
	if err != nil {
		return "", token.Token{}, "", err
	}

	doc, err = s.docs.Get(uri)
	if err != nil {
		data, readErr := s.corpus.Read(fromPath)
		if readErr != nil {
			return "", token.Token{}, "", readErr
		}
		doc = string(data)
	}

	tok = token.Classify(doc, offsetAt(doc, position), s.config.FileExtensions)
	return doc, tok, fromPath, nil
}
