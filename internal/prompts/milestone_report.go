// Package prompts implements MCP prompt handlers that steer the host
// toward the Linear tools.
package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// MilestoneReportPrompt handles the project-milestone-report MCP prompt.
// It asks the AI to fetch one project and report on its milestones.
type MilestoneReportPrompt struct{}

// NewMilestoneReportPrompt creates a MilestoneReportPrompt.
func NewMilestoneReportPrompt() *MilestoneReportPrompt {
	return &MilestoneReportPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *MilestoneReportPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("project-milestone-report",
		mcp.WithPromptDescription(
			"Summarize a Linear project's milestones: progress, target dates, "+
				"the issues under each milestone and the issues not assigned to any.",
		),
		mcp.WithArgument("project_id",
			mcp.ArgumentDescription("The ID of the project to report on"),
			mcp.RequiredArgument(),
		),
	)
}

// Handle processes the project-milestone-report prompt request.
func (p *MilestoneReportPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	projectID := strings.TrimSpace(req.Params.Arguments["project_id"])
	if projectID == "" {
		return nil, fmt.Errorf("project_id is required")
	}

	return &mcp.GetPromptResult{
		Description: "Project milestone report",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Please run `get_project_with_milestones_and_associated_issues` with id %q.\n\n"+
						"Then:\n"+
						"1. List each milestone in order with its status, target date and progress as a percentage\n"+
						"2. Under each milestone, list its issues by identifier and title\n"+
						"3. List the issues without a milestone separately and suggest where they might belong\n"+
						"4. Call out milestones whose target date has passed but whose progress is below 100%%\n\n"+
						"If the result contains an \"error\" field, report it and stop.",
					projectID,
				)),
			},
		},
	}, nil
}
