package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func promptText(t *testing.T, result *mcp.GetPromptResult) string {
	t.Helper()
	if len(result.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(result.Messages))
	}
	tc, ok := result.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatalf("content is %T, want TextContent", result.Messages[0].Content)
	}
	return tc.Text
}

func TestMilestoneReportPrompt(t *testing.T) {
	p := NewMilestoneReportPrompt()

	def := p.Definition()
	if def.Name != "project-milestone-report" {
		t.Errorf("name = %q", def.Name)
	}
	if len(def.Arguments) != 1 || !def.Arguments[0].Required {
		t.Errorf("project_id should be the single required argument: %+v", def.Arguments)
	}

	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"project_id": "proj-1"}
	result, err := p.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	text := promptText(t, result)
	if !strings.Contains(text, "get_project_with_milestones_and_associated_issues") {
		t.Error("prompt should name the project tool")
	}
	if !strings.Contains(text, `"proj-1"`) {
		t.Error("prompt should carry the project id")
	}
	if strings.Contains(text, "%!") {
		t.Errorf("bad format verb in prompt: %s", text)
	}
}

func TestMilestoneReportPrompt_MissingProject(t *testing.T) {
	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"project_id": "  "}
	if _, err := NewMilestoneReportPrompt().Handle(context.Background(), req); err == nil {
		t.Fatal("expected error for blank project_id")
	}
}

func TestInitiativeOverviewPrompt(t *testing.T) {
	p := NewInitiativeOverviewPrompt()

	tests := []struct {
		name string
		args map[string]string
		want string
	}{
		{"workspace", nil, "list_initiatives"},
		{"single", map[string]string{"initiative_id": "init-1"}, `get_initiative` + "` with id \"init-1\""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := mcp.GetPromptRequest{}
			req.Params.Arguments = tt.args
			result, err := p.Handle(context.Background(), req)
			if err != nil {
				t.Fatalf("Handle failed: %v", err)
			}
			if text := promptText(t, result); !strings.Contains(text, tt.want) {
				t.Errorf("prompt should contain %q, got:\n%s", tt.want, text)
			}
		})
	}
}
