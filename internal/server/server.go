package server

import (
	"notedown/internal/complete"
	"notedown/internal/config"
	"notedown/internal/corpus"
	"notedown/internal/naming"
	"notedown/internal/resolve"
	"notedown/internal/search"
	"notedown/internal/tags"

	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"
)

const lsName = "notedown"

// Server wires the resolution engine to the LSP surface. The engine pieces
// are composed during initialize, once the workspace root and the client's
// configuration are known.
type Server struct {
	root    string
	handler *protocol.Handler
	config  config.Config
	docs    *DocumentStore

	corpus    corpus.Provider
	names     naming.Normalizer
	resolver  *resolve.Resolver
	searcher  *search.Searcher
	completer *complete.Completer
	tags      *tags.Index
}

func NewServer() (*server.Server, error) {
	ls := &Server{}
	ls.docs = NewDocumentStore()
	ls.handler = &protocol.Handler{
		Initialize:              ls.initialize,
		Initialized:             ls.initialized,
		TextDocumentDidOpen:     ls.textDocumentDidOpen,
		TextDocumentDidChange:   ls.textDocumentDidChange,
		TextDocumentDidClose:    ls.textDocumentDidClose,
		TextDocumentCompletion:  ls.textDocumentCompletion,
		TextDocumentDefinition:  ls.textDocumentDefinition,
		TextDocumentReferences:  ls.textDocumentReferences,
		WorkspaceSymbol:         ls.workspaceSymbol,
		WorkspaceExecuteCommand: ls.workspaceExecuteCommand,
		Shutdown:                ls.shutdown,
	}

	return server.NewServer(ls.handler, lsName, false), nil
}
