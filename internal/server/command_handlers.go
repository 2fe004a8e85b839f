package server

import (
	"errors"
	"fmt"
	"log"

	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"notedown/internal/resolve"
)

const newNoteCommand = "notedown.newNote"

func (s *Server) workspaceExecuteCommand(
	glspContext *glsp.Context,
	params *protocol.ExecuteCommandParams,
) (any, error) {
	if params.Command == newNoteCommand {
		return s.newNote(glspContext, params.Arguments)
	}
	return nil, nil
}

// newNote creates a note from a free-text title and opens it in the client.
func (s *Server) newNote(glspContext *glsp.Context, arguments []any) (any, error) {
	if len(arguments) == 0 {
		return nil, fmt.Errorf("%s requires a title argument", newNoteCommand)
	}
	title, ok := arguments[0].(string)
	if !ok {
		return nil, fmt.Errorf("%s title must be a string, got %T", newNoteCommand, arguments[0])
	}

	path, err := s.resolver.CreateNote(title)
	if errors.Is(err, resolve.ErrAmbiguousConvention) {
		showWarning(glspContext, err.Error())
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	log.Printf("created note %q at %s", title, path)

	uri := PathToURI(path)
	glspContext.Notify(
		"window/showDocument",
		protocol.ShowDocumentParams{
			URI:      protocol.URI(uri),
			External: &protocol.False,
		},
	)
	return uri, nil
}
