package mcp

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

// allNamesURI identifies the text rendering of the full registry.
const allNamesURI = "names://all"

// registerResources registers all resource handlers with the MCP server.
func (s *Server) registerResources() {
	s.server.AddResource(&mcp.Resource{
		URI:         allNamesURI,
		Name:        "all-names",
		Description: "Every registered name, rendered as a list",
		MIMEType:    "text/plain",
	}, s.handleAllNamesResource)
}

func (s *Server) handleAllNamesResource(
	ctx context.Context,
	req *mcp.ReadResourceRequest,
) (*mcp.ReadResourceResult, error) {
	names, err := s.ports.Names.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing names: %w", err)
	}

	return &mcp.ReadResourceResult{
		Contents: []*mcp.ResourceContents{{
			URI:      req.Params.URI,
			MIMEType: "text/plain",
			Text:     domain.FormatStoredNames(names),
		}},
	}, nil
}
