package server

import (
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"notedown/internal/tags"
	"notedown/internal/token"
)

func (s *Server) textDocumentCompletion(
	glspContext *glsp.Context,
	params *protocol.CompletionParams,
) (any, error) {
	doc, tok, fromPath, err := s.documentAt(params.TextDocument.URI, params.Position)
	if err != nil {
		return nil, err
	}
	if tok.Kind == token.None {
		return nil, nil
	}

	candidates, err := s.completer.Complete(tok, fromPath)
	if err != nil {
		return nil, err
	}

	kind := protocol.CompletionItemKindFile
	if tok.Kind == token.Tag {
		kind = protocol.CompletionItemKindKeyword
	}
	replace := rangeFromSpan(doc, tok.Span)

	items := make([]protocol.CompletionItem, 0, len(candidates))
	for _, candidate := range candidates {
		items = append(items, protocol.CompletionItem{
			Label: candidate.Label,
			Kind:  &kind,
			TextEdit: &protocol.TextEdit{
				Range:   replace,
				NewText: candidate.Insert,
			},
		})
	}

	return &protocol.CompletionList{
		IsIncomplete: tok.Kind == token.Tag && s.tags.State() != tags.Ready,
		Items:        items,
	}, nil
}
