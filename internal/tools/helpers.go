// Package tools implements the MCP tool handlers for the Linear adapter.
//
// Each tool receives its dependencies via its struct and exposes a
// Definition for registration plus a Handle method compatible with
// mcp-go's CallToolRequest signature.
//
// Design principles:
// - SRP: each file = one tool
// - DIP: tools depend on the Reader interface, not on *workspace.Service
// - Failures never escape as protocol errors: they come back as a
//   structured {"error": "..."} result flagged IsError
package tools

import (
	"context"

	"github.com/jonathanykh/linear-api/internal/workspace"
	"github.com/mark3labs/mcp-go/mcp"
)

// Reader is the read surface the tools need. *workspace.Service
// implements it.
type Reader interface {
	ListInitiatives(ctx context.Context, p workspace.ListParams) (*workspace.InitiativeList, error)
	GetInitiative(ctx context.Context, id string) (*workspace.InitiativeDetail, error)
	ListProjects(ctx context.Context, p workspace.ListParams) (*workspace.ProjectList, error)
	GetProject(ctx context.Context, id string) (*workspace.ProjectDetail, error)
	ListDocuments(ctx context.Context, p workspace.ListParams) (*workspace.DocumentList, error)
	GetDocument(ctx context.Context, id string) (*workspace.DocumentDetail, error)
}

// Parameter names shared by the list tools.
const (
	paramLimit           = "limit"
	paramSearch          = "search"
	paramIncludeArchived = "include_archived"
	paramTeamID          = "team_id"
	paramInitiativeID    = "initiative_id"
	paramProjectID       = "project_id"
	paramCursorAfter     = "cursor_after"
	paramCursorBefore    = "cursor_before"
	paramID              = "id"
)

// listOptions returns the parameters every list tool accepts. noun is
// the plural entity name used in descriptions, field the attribute
// search matches against.
func listOptions(noun, field string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithNumber(paramLimit,
			mcp.Description("Number of "+noun+" to return (max 250)"),
			mcp.DefaultNumber(workspace.DefaultLimit),
		),
		mcp.WithString(paramSearch,
			mcp.Description("Search term to filter "+noun+" by "+field),
		),
		mcp.WithBoolean(paramIncludeArchived,
			mcp.Description("Whether to include archived "+noun),
			mcp.DefaultBool(false),
		),
		mcp.WithString(paramCursorAfter,
			mcp.Description("Cursor for pagination (from previous results)"),
		),
		mcp.WithString(paramCursorBefore,
			mcp.Description("Cursor for backward pagination"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	}
}

// idOptions returns the single required id parameter of the get tools.
func idOptions(noun string) []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString(paramID,
			mcp.Required(),
			mcp.Description("The ID of the "+noun+" to retrieve"),
		),
		mcp.WithReadOnlyHintAnnotation(true),
	}
}

// listParams reads the shared list parameters. Parameters a given tool
// does not declare are simply absent and stay empty.
func listParams(req mcp.CallToolRequest) workspace.ListParams {
	return workspace.ListParams{
		Limit:           req.GetInt(paramLimit, workspace.DefaultLimit),
		Search:          req.GetString(paramSearch, ""),
		IncludeArchived: req.GetBool(paramIncludeArchived, false),
		TeamID:          req.GetString(paramTeamID, ""),
		InitiativeID:    req.GetString(paramInitiativeID, ""),
		ProjectID:       req.GetString(paramProjectID, ""),
		After:           req.GetString(paramCursorAfter, ""),
		Before:          req.GetString(paramCursorBefore, ""),
	}
}

// requireID returns the id argument or an error result when it is
// missing or empty.
func requireID(req mcp.CallToolRequest) (string, *mcp.CallToolResult) {
	id, err := req.RequireString(paramID)
	if err != nil || id == "" {
		return "", failure(workspace.ErrMissingID)
	}
	return id, nil
}

// respond turns an operation's outcome into a tool result.
func respond[T any](v *T, err error) *mcp.CallToolResult {
	if err != nil {
		return failure(err)
	}
	return mcp.NewToolResultStructuredOnly(v)
}

// failure wraps err as a structured {"error": ...} result.
func failure(err error) *mcp.CallToolResult {
	result := mcp.NewToolResultStructuredOnly(workspace.Failure(err))
	result.IsError = true
	return result
}
