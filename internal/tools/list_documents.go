package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListDocumentsTool handles the list_documents MCP tool.
type ListDocumentsTool struct {
	reader Reader
}

// NewListDocumentsTool creates a ListDocumentsTool.
func NewListDocumentsTool(reader Reader) *ListDocumentsTool {
	return &ListDocumentsTool{reader: reader}
}

// Definition returns the MCP tool definition for registration.
func (t *ListDocumentsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List documents from Linear workspace"),
		mcp.WithString(paramProjectID,
			mcp.Description("Filter by project ID"),
		),
		mcp.WithString(paramInitiativeID,
			mcp.Description("Filter by initiative ID"),
		),
	}
	opts = append(opts, listOptions("documents", "title")...)
	return mcp.NewTool("list_documents", opts...)
}

// Handle processes the list_documents tool call.
func (t *ListDocumentsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.reader.ListDocuments(ctx, listParams(req))
	return respond(list, err), nil
}
