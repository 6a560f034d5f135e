package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/custodia-labs/namereg/internal/core/domain"
)

// NameInput is the input schema for the greet and add_name tools.
type NameInput struct {
	Name string `json:"name" jsonschema:"the name to greet or register"`
}

// GreetOutput is the output schema for the greet tool.
type GreetOutput struct {
	Greeting string `json:"greeting"`
}

// AddNameOutput is the output schema for the add_name tool.
type AddNameOutput struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Message string `json:"message"`
}

// ListNamesInput is the (empty) input schema for the list_names tool.
type ListNamesInput struct{}

// ListNamesOutput is the output schema for the list_names tool.
type ListNamesOutput struct {
	Names []StoredNameOutput `json:"names"`
	Count int                `json:"count"`
	Text  string             `json:"text"`
}

// StoredNameOutput represents a single stored record.
type StoredNameOutput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// registerTools registers all tool handlers with the MCP server.
func (s *Server) registerTools() {
	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "greet",
		Description: "Return a greeting for the given name",
	}, s.handleGreet)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "add_name",
		Description: "Register a name in the registry",
	}, s.handleAddName)

	mcp.AddTool(s.server, &mcp.Tool{
		Name:        "list_names",
		Description: "List every registered name",
	}, s.handleListNames)
}

func (s *Server) handleGreet(
	_ context.Context,
	_ *mcp.CallToolRequest,
	input NameInput,
) (*mcp.CallToolResult, GreetOutput, error) {
	if err := domain.ValidateName(input.Name, true); err != nil {
		return nil, GreetOutput{}, err
	}
	return nil, GreetOutput{Greeting: s.ports.Greeter.Greet(input.Name)}, nil
}

func (s *Server) handleAddName(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	input NameInput,
) (*mcp.CallToolResult, AddNameOutput, error) {
	if err := domain.ValidateName(input.Name, true); err != nil {
		return nil, AddNameOutput{}, err
	}

	stored, err := s.ports.Names.Add(ctx, input.Name)
	if err != nil {
		return nil, AddNameOutput{}, err
	}

	return nil, AddNameOutput{
		ID:      stored.ID(),
		Name:    stored.Name(),
		Message: input.Name + " added",
	}, nil
}

func (s *Server) handleListNames(
	ctx context.Context,
	_ *mcp.CallToolRequest,
	_ ListNamesInput,
) (*mcp.CallToolResult, ListNamesOutput, error) {
	names, err := s.ports.Names.List(ctx)
	if err != nil {
		return nil, ListNamesOutput{}, err
	}

	output := ListNamesOutput{
		Names: make([]StoredNameOutput, len(names)),
		Count: len(names),
		Text:  domain.FormatStoredNames(names),
	}
	for i := range names {
		output.Names[i] = StoredNameOutput{ID: names[i].ID(), Name: names[i].Name()}
	}

	return nil, output, nil
}
