package server

import (
	"fmt"
	"log"
	"net/url"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"notedown/internal/complete"
	"notedown/internal/config"
	"notedown/internal/corpus"
	"notedown/internal/naming"
	"notedown/internal/resolve"
	"notedown/internal/search"
	"notedown/internal/tags"
)

func (s *Server) initialize(
	context *glsp.Context,
	params *protocol.InitializeParams,
) (any, error) {
	cfg, err := config.Load(params.InitializationOptions)
	if err != nil {
		return nil, err
	}
	log.Printf("Config: %+v", cfg)

	if params.RootURI == nil {
		return nil, fmt.Errorf("client sent no root URI")
	}
	rootURI, err := url.Parse(*params.RootURI)
	if err != nil {
		return nil, fmt.Errorf("failed to parse root uri: %w", err)
	}
	s.root = rootURI.Path
	cfg.Root = s.root
	s.config = cfg

	s.names = naming.Normalizer{
		Extensions:       cfg.FileExtensions,
		Separator:        cfg.SlugCharacter,
		DefaultExtension: cfg.DefaultExtension,
	}
	s.corpus = corpus.NewDir(s.root, cfg.GlobPattern, cfg.FileExtensions)
	s.tags = tags.NewIndex(s.corpus)
	s.resolver = &resolve.Resolver{Corpus: s.corpus, Names: s.names, Config: cfg}
	s.searcher = &search.Searcher{Corpus: s.corpus}
	s.completer = &complete.Completer{
		Corpus: s.corpus,
		Names:  s.names,
		Tags:   s.tags,
		Config: cfg,
	}

	syncKind := protocol.TextDocumentSyncKindFull

	capabilities := s.handler.CreateServerCapabilities()
	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: &protocol.True,
		Change:    &syncKind,
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"#", "["},
	}
	capabilities.ExecuteCommandProvider = &protocol.ExecuteCommandOptions{
		Commands: []string{newNoteCommand},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
	}, nil
}

func (s *Server) initialized(
	context *glsp.Context,
	params *protocol.InitializedParams,
) error {
	log.Println("Client initialized.")
	// Warm the tag candidate set; the scan is not awaited.
	s.tags.Candidates()
	return nil
}

func (s *Server) shutdown(context *glsp.Context) error {
	return nil
}
