package tools

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// GetProjectTool handles the get_project_with_milestones_and_associated_issues
// MCP tool. Besides the project itself it returns every milestone with
// its issues, plus the issues assigned to no known milestone.
type GetProjectTool struct {
	reader Reader
}

// NewGetProjectTool creates a GetProjectTool.
func NewGetProjectTool(reader Reader) *GetProjectTool {
	return &GetProjectTool{reader: reader}
}

// Definition returns the MCP tool definition for registration.
func (t *GetProjectTool) Definition() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(
			"Get detailed information about a specific project, including its milestones, " +
				"the issues grouped under each milestone, issues without a milestone, and documents",
		),
	}
	opts = append(opts, idOptions("project")...)
	return mcp.NewTool("get_project_with_milestones_and_associated_issues", opts...)
}

// Handle processes the tool call.
func (t *GetProjectTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, bad := requireID(req)
	if bad != nil {
		return bad, nil
	}
	detail, err := t.reader.GetProject(ctx, id)
	return respond(detail, err), nil
}
