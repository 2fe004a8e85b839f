package server

import (
	"context"
	"errors"
	"log"
	"path/filepath"

	"github.com/hbollon/go-edlib"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"notedown/internal/resolve"
)

func (s *Server) textDocumentDefinition(
	glspContext *glsp.Context,
	params *protocol.DefinitionParams,
) (any, error) {
	_, tok, fromPath, err := s.documentAt(params.TextDocument.URI, params.Position)
	if err != nil {
		return nil, err
	}

	matches, err := s.resolver.Resolve(tok, fromPath)
	if errors.Is(err, resolve.ErrAmbiguousConvention) {
		showWarning(glspContext, err.Error())
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var locations []protocol.Location
	for _, match := range matches {
		locations = append(locations, protocol.Location{
			URI:   PathToURI(match.Path),
			Range: firstLineRange(),
		})
	}
	if locations == nil {
		return nil, nil
	}
	return locations, nil
}

func (s *Server) textDocumentReferences(
	glspContext *glsp.Context,
	params *protocol.ReferenceParams,
) ([]protocol.Location, error) {
	_, tok, _, err := s.documentAt(params.TextDocument.URI, params.Position)
	if err != nil {
		return nil, err
	}

	occurrences, err := s.searcher.Search(context.Background(), tok)
	if err != nil {
		return nil, err
	}

	var locations []protocol.Location
	for _, occ := range occurrences {
		locations = append(locations, protocol.Location{
			URI: PathToURI(occ.Path),
			Range: protocol.Range{
				Start: protocol.Position{
					Line:      protocol.UInteger(occ.Line),
					Character: protocol.UInteger(occ.StartCol),
				},
				End: protocol.Position{
					Line:      protocol.UInteger(occ.Line),
					Character: protocol.UInteger(occ.EndCol),
				},
			},
		})
	}

	return locations, nil
}

func (s *Server) workspaceSymbol(
	glspContext *glsp.Context,
	params *protocol.WorkspaceSymbolParams,
) ([]protocol.SymbolInformation, error) {
	const maxResults = 128

	files, err := s.corpus.Files()
	if err != nil {
		return nil, err
	}

	titles := make([]string, 0, len(files))
	paths := make(map[string]string, len(files))
	for _, path := range files {
		title := s.names.StripExtension(filepath.Base(path))
		if _, ok := paths[title]; !ok {
			paths[title] = path
			titles = append(titles, title)
		}
	}

	hits := titles
	if params.Query != "" {
		hits, err = edlib.FuzzySearchSetThreshold(params.Query, titles, maxResults, 0.5, edlib.JaroWinkler)
		if err != nil {
			log.Println("workspaceSymbol: fuzzy search failed:", err)
			return nil, nil
		}
	}
	if len(hits) > maxResults {
		hits = hits[:maxResults]
	}

	var symbols []protocol.SymbolInformation
	for _, hit := range hits {
		path, ok := paths[hit]
		if !ok {
			continue
		}
		symbols = append(symbols, protocol.SymbolInformation{
			Name: hit,
			Kind: protocol.SymbolKindFile,
			Location: protocol.Location{
				URI:   PathToURI(path),
				Range: firstLineRange(),
			},
		})
	}
	return symbols, nil
}

func showWarning(context *glsp.Context, message string) {
	warning := protocol.MessageTypeWarning
	context.Notify(
		"window/showMessage",
		protocol.ShowMessageParams{Type: warning, Message: message},
	)
}
