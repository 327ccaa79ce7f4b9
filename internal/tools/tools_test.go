package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jonathanykh/linear-api/internal/linear"
	"github.com/jonathanykh/linear-api/internal/workspace"
	"github.com/mark3labs/mcp-go/mcp"
)

// --- Test helpers ---

// stubReader records the arguments it was called with and answers with
// canned values.
type stubReader struct {
	params workspace.ListParams
	id     string
	calls  int
	err    error
}

func (s *stubReader) ListInitiatives(_ context.Context, p workspace.ListParams) (*workspace.InitiativeList, error) {
	s.calls++
	s.params = p
	if s.err != nil {
		return nil, s.err
	}
	return &workspace.InitiativeList{
		Initiatives: []workspace.InitiativeSummary{{ID: "init-1", Name: "Q1 Launch"}},
		TotalCount:  1,
	}, nil
}

func (s *stubReader) GetInitiative(_ context.Context, id string) (*workspace.InitiativeDetail, error) {
	s.calls++
	s.id = id
	if s.err != nil {
		return nil, s.err
	}
	return &workspace.InitiativeDetail{ID: id, Name: "Q1 Launch", Projects: []workspace.InitiativeProject{}, Documents: []workspace.DocumentRef{}}, nil
}

func (s *stubReader) ListProjects(_ context.Context, p workspace.ListParams) (*workspace.ProjectList, error) {
	s.calls++
	s.params = p
	if s.err != nil {
		return nil, s.err
	}
	return &workspace.ProjectList{Projects: []workspace.ProjectSummary{}}, nil
}

func (s *stubReader) GetProject(_ context.Context, id string) (*workspace.ProjectDetail, error) {
	s.calls++
	s.id = id
	if s.err != nil {
		return nil, s.err
	}
	return &workspace.ProjectDetail{ID: id, Name: "API Platform"}, nil
}

func (s *stubReader) ListDocuments(_ context.Context, p workspace.ListParams) (*workspace.DocumentList, error) {
	s.calls++
	s.params = p
	if s.err != nil {
		return nil, s.err
	}
	return &workspace.DocumentList{Documents: []workspace.DocumentSummary{}}, nil
}

func (s *stubReader) GetDocument(_ context.Context, id string) (*workspace.DocumentDetail, error) {
	s.calls++
	s.id = id
	if s.err != nil {
		return nil, s.err
	}
	return &workspace.DocumentDetail{ID: id, Title: "RFC"}, nil
}

// isErrorResult checks if a CallToolResult is an error result.
func isErrorResult(result *mcp.CallToolResult) bool {
	return result != nil && result.IsError
}

// getResultText extracts the text content from a CallToolResult.
func getResultText(result *mcp.CallToolResult) string {
	if result == nil || len(result.Content) == 0 {
		return ""
	}
	for _, c := range result.Content {
		if tc, ok := c.(mcp.TextContent); ok {
			return tc.Text
		}
	}
	return ""
}

// resultError decodes the "error" field of an error result.
func resultError(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	var payload workspace.ErrorResult
	if err := json.Unmarshal([]byte(getResultText(result)), &payload); err != nil {
		t.Fatalf("error result is not JSON: %v (%q)", err, getResultText(result))
	}
	return payload.Error
}

func callRequest(args map[string]any) mcp.CallToolRequest {
	req := mcp.CallToolRequest{}
	req.Params.Arguments = args
	return req
}

type handler interface {
	Definition() mcp.Tool
	Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error)
}

func allTools(r Reader) []handler {
	return []handler{
		NewListInitiativesTool(r),
		NewGetInitiativeTool(r),
		NewListProjectsTool(r),
		NewGetProjectTool(r),
		NewListDocumentsTool(r),
		NewGetDocumentTool(r),
	}
}

// --- Definitions ---

func TestDefinitions(t *testing.T) {
	tests := []struct {
		tool     handler
		name     string
		required []string
		params   []string
	}{
		{NewListInitiativesTool(nil), "list_initiatives", nil,
			[]string{"limit", "search", "include_archived", "cursor_after", "cursor_before"}},
		{NewGetInitiativeTool(nil), "get_initiative", []string{"id"}, []string{"id"}},
		{NewListProjectsTool(nil), "list_projects", nil,
			[]string{"limit", "search", "include_archived", "team_id", "initiative_id", "cursor_after", "cursor_before"}},
		{NewGetProjectTool(nil), "get_project_with_milestones_and_associated_issues", []string{"id"}, []string{"id"}},
		{NewListDocumentsTool(nil), "list_documents", nil,
			[]string{"limit", "search", "include_archived", "project_id", "initiative_id", "cursor_after", "cursor_before"}},
		{NewGetDocumentTool(nil), "get_document", []string{"id"}, []string{"id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := tt.tool.Definition()
			if def.Name != tt.name {
				t.Errorf("name = %q, want %q", def.Name, tt.name)
			}
			if def.Description == "" {
				t.Error("description should not be empty")
			}
			for _, p := range tt.params {
				if _, ok := def.InputSchema.Properties[p]; !ok {
					t.Errorf("missing parameter %q", p)
				}
			}
			if len(def.InputSchema.Properties) != len(tt.params) {
				t.Errorf("got %d parameters, want %d", len(def.InputSchema.Properties), len(tt.params))
			}
			if strings.Join(def.InputSchema.Required, ",") != strings.Join(tt.required, ",") {
				t.Errorf("required = %v, want %v", def.InputSchema.Required, tt.required)
			}
		})
	}
}

// --- List tools ---

func TestListInitiativesTool_Defaults(t *testing.T) {
	reader := &stubReader{}
	tool := NewListInitiativesTool(reader)

	result, err := tool.Handle(context.Background(), callRequest(nil))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}

	want := workspace.ListParams{Limit: workspace.DefaultLimit}
	if reader.params != want {
		t.Errorf("params = %+v, want %+v", reader.params, want)
	}
	if !strings.Contains(getResultText(result), `"total_count":1`) {
		t.Errorf("result should carry total_count, got %s", getResultText(result))
	}
	if result.StructuredContent == nil {
		t.Error("result should carry structured content")
	}
}

func TestListProjectsTool_PassesArguments(t *testing.T) {
	reader := &stubReader{}
	tool := NewListProjectsTool(reader)

	_, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"limit":            float64(5),
		"search":           "API",
		"include_archived": true,
		"team_id":          "team-1",
		"initiative_id":    "init-1",
		"cursor_after":     "c-after",
		"cursor_before":    "c-before",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}

	want := workspace.ListParams{
		Limit:           5,
		Search:          "API",
		IncludeArchived: true,
		TeamID:          "team-1",
		InitiativeID:    "init-1",
		After:           "c-after",
		Before:          "c-before",
	}
	if reader.params != want {
		t.Errorf("params = %+v, want %+v", reader.params, want)
	}
}

func TestListDocumentsTool_PassesArguments(t *testing.T) {
	reader := &stubReader{}
	tool := NewListDocumentsTool(reader)

	_, err := tool.Handle(context.Background(), callRequest(map[string]any{
		"project_id": "proj-1",
		"search":     "RFC",
	}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if reader.params.ProjectID != "proj-1" || reader.params.Search != "RFC" {
		t.Errorf("params = %+v", reader.params)
	}
	if reader.params.Limit != workspace.DefaultLimit {
		t.Errorf("limit = %d, want default %d", reader.params.Limit, workspace.DefaultLimit)
	}
}

// --- Get tools ---

func TestGetTools_MissingID(t *testing.T) {
	reader := &stubReader{}
	getters := []handler{NewGetInitiativeTool(reader), NewGetProjectTool(reader), NewGetDocumentTool(reader)}

	for _, tool := range getters {
		name := tool.Definition().Name
		for _, args := range []map[string]any{nil, {"id": ""}, {"id": 42}} {
			result, err := tool.Handle(context.Background(), callRequest(args))
			if err != nil {
				t.Fatalf("%s: Handle failed: %v", name, err)
			}
			if !isErrorResult(result) {
				t.Errorf("%s: expected error result for args %v", name, args)
			}
			if got := resultError(t, result); got != workspace.ErrMissingID.Error() {
				t.Errorf("%s: error = %q", name, got)
			}
		}
	}
	if reader.calls != 0 {
		t.Errorf("reader called %d times, want 0", reader.calls)
	}
}

func TestGetDocumentTool_Success(t *testing.T) {
	reader := &stubReader{}
	tool := NewGetDocumentTool(reader)

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{"id": "d1"}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if isErrorResult(result) {
		t.Fatalf("expected success, got error: %s", getResultText(result))
	}
	if reader.id != "d1" {
		t.Errorf("id = %q, want d1", reader.id)
	}
	if !strings.Contains(getResultText(result), `"title":"RFC"`) {
		t.Errorf("unexpected result: %s", getResultText(result))
	}
}

func TestGetTools_NotFoundIsErrorPayload(t *testing.T) {
	reader := &stubReader{err: &workspace.NotFoundError{Entity: "Document", ID: "missing-id"}}
	tool := NewGetDocumentTool(reader)

	result, err := tool.Handle(context.Background(), callRequest(map[string]any{"id": "missing-id"}))
	if err != nil {
		t.Fatalf("Handle failed: %v", err)
	}
	if !isErrorResult(result) {
		t.Fatal("expected error result")
	}
	if got := getResultText(result); got != `{"error":"Document with ID 'missing-id' not found"}` {
		t.Errorf("text = %s", got)
	}
}

// --- Failures through the real transport ---

// TestTools_Unauthorized drives every tool through a workspace.Service
// and linear.Client against a server that rejects the key.
func TestTools_Unauthorized(t *testing.T) {
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusUnauthorized)
		fmt.Fprint(w, `{"errors":[{"message":"Authentication required"}]}`)
	}))
	defer srv.Close()

	client := linear.NewClient("lin_api_bad", linear.WithEndpoint(srv.URL))
	svc := workspace.NewService(client)

	args := map[string]any{"id": "some-id"}
	for _, tool := range allTools(svc) {
		name := tool.Definition().Name
		result, err := tool.Handle(context.Background(), callRequest(args))
		if err != nil {
			t.Fatalf("%s: Handle returned protocol error: %v", name, err)
		}
		if !isErrorResult(result) {
			t.Errorf("%s: expected error result", name)
			continue
		}
		msg := resultError(t, result)
		if !strings.HasPrefix(msg, "Authentication failed") {
			t.Errorf("%s: error = %q", name, msg)
		}
	}
	if hits != 6 {
		t.Errorf("server saw %d requests, want 6", hits)
	}
}

func TestFailure_WrapsError(t *testing.T) {
	result := failure(errors.New("boom"))
	if !isErrorResult(result) {
		t.Fatal("expected IsError")
	}
	if got := getResultText(result); got != `{"error":"boom"}` {
		t.Errorf("text = %s", got)
	}
}
