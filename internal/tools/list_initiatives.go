package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListInitiativesTool handles the list_initiatives MCP tool.
// include_archived is accepted but has no effect on initiatives.
type ListInitiativesTool struct {
	reader Reader
}

// NewListInitiativesTool creates a ListInitiativesTool.
func NewListInitiativesTool(reader Reader) *ListInitiativesTool {
	return &ListInitiativesTool{reader: reader}
}

// Definition returns the MCP tool definition for registration.
func (t *ListInitiativesTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List initiatives from Linear workspace"),
	}
	opts = append(opts, listOptions("initiatives", "name")...)
	return mcp.NewTool("list_initiatives", opts...)
}

// Handle processes the list_initiatives tool call.
func (t *ListInitiativesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.reader.ListInitiatives(ctx, listParams(req))
	return respond(list, err), nil
}
