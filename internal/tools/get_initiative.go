package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetInitiativeTool handles the get_initiative MCP tool.
type GetInitiativeTool struct {
	reader Reader
}

// NewGetInitiativeTool creates a GetInitiativeTool.
func NewGetInitiativeTool(reader Reader) *GetInitiativeTool {
	return &GetInitiativeTool{reader: reader}
}

// Definition returns the MCP tool definition for registration.
func (t *GetInitiativeTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Get detailed information about a specific initiative, including its projects and documents"),
	}
	opts = append(opts, idOptions("initiative")...)
	return mcp.NewTool("get_initiative", opts...)
}

// Handle processes the get_initiative tool call.
func (t *GetInitiativeTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, bad := requireID(req)
	if bad != nil {
		return bad, nil
	}
	detail, err := t.reader.GetInitiative(ctx, id)
	return respond(detail, err), nil
}
