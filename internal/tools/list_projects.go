package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// ListProjectsTool handles the list_projects MCP tool.
type ListProjectsTool struct {
	reader Reader
}

// NewListProjectsTool creates a ListProjectsTool.
func NewListProjectsTool(reader Reader) *ListProjectsTool {
	return &ListProjectsTool{reader: reader}
}

// Definition returns the MCP tool definition for registration.
func (t *ListProjectsTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("List projects from Linear workspace"),
		mcp.WithString(paramTeamID,
			mcp.Description("Filter by team ID"),
		),
		mcp.WithString(paramInitiativeID,
			mcp.Description("Filter by initiative ID"),
		),
	}
	opts = append(opts, listOptions("projects", "name")...)
	return mcp.NewTool("list_projects", opts...)
}

// Handle processes the list_projects tool call.
func (t *ListProjectsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	list, err := t.reader.ListProjects(ctx, listParams(req))
	return respond(list, err), nil
}
