package prompts

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
)

// InitiativeOverviewPrompt handles the initiative-overview MCP prompt.
// Without an initiative_id it asks for a workspace-wide overview.
type InitiativeOverviewPrompt struct{}

// NewInitiativeOverviewPrompt creates an InitiativeOverviewPrompt.
func NewInitiativeOverviewPrompt() *InitiativeOverviewPrompt {
	return &InitiativeOverviewPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *InitiativeOverviewPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("initiative-overview",
		mcp.WithPromptDescription(
			"Give an overview of Linear initiatives and the projects and documents behind them.",
		),
		mcp.WithArgument("initiative_id",
			mcp.ArgumentDescription("Focus on a single initiative (optional)"),
		),
	)
}

// Handle processes the initiative-overview prompt request.
func (p *InitiativeOverviewPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	var text string
	if id := strings.TrimSpace(req.Params.Arguments["initiative_id"]); id != "" {
		text = fmt.Sprintf(
			"Please run `get_initiative` with id %q.\n\n"+
				"Then:\n"+
				"1. Summarize the initiative: owner, status and target date\n"+
				"2. Show its projects in a table with state and progress\n"+
				"3. List the related documents with their last update",
			id,
		)
	} else {
		text = "Please run `list_initiatives` to see the active initiatives.\n\n" +
			"Then:\n" +
			"1. Group the initiatives by status\n" +
			"2. Highlight initiatives without an owner or target date\n" +
			"3. Offer to drill into one with `get_initiative`\n\n" +
			"If the result has a next page, mention it rather than fetching everything."
	}

	return &mcp.GetPromptResult{
		Description: "Initiative overview",
		Messages: []mcp.PromptMessage{
			{
				Role:    mcp.RoleUser,
				Content: mcp.NewTextContent(text),
			},
		},
	}, nil
}
