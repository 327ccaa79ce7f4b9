package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetDocumentTool handles the get_document MCP tool.
type GetDocumentTool struct {
	reader Reader
}

// NewGetDocumentTool creates a GetDocumentTool.
func NewGetDocumentTool(reader Reader) *GetDocumentTool {
	return &GetDocumentTool{reader: reader}
}

// Definition returns the MCP tool definition for registration.
func (t *GetDocumentTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get detailed information about a specific document, including its content"),
	}
	opts = append(opts, idOptions("document")...)
	return mcp.NewTool("get_document", opts...)
}

// Handle processes the get_document tool call.
func (t *GetDocumentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, bad := requireID(req)
	if bad != nil {
		return bad, nil
	}
	detail, err := t.reader.GetDocument(ctx, id)
	return respond(detail, err), nil
}
