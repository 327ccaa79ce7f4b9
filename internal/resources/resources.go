// Package resources implements MCP resource handlers for the Linear
// adapter.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (linear://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jonathanykh/linear-api/internal/workspace"
	"github.com/mark3labs/mcp-go/mcp"
)

// ViewerURI addresses the authenticated user.
const ViewerURI = "linear://viewer"

// ViewerSource looks up the user the API key belongs to.
type ViewerSource interface {
	Viewer(ctx context.Context) (*workspace.Viewer, error)
}

// Handler manages Linear resource endpoints.
type Handler struct {
	source ViewerSource
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(source ViewerSource) *Handler {
	return &Handler{source: source}
}

// ViewerResource returns the MCP resource definition for the viewer.
func (h *Handler) ViewerResource() mcp.Resource {
	return mcp.NewResource(
		ViewerURI,
		"Linear Viewer",
		mcp.WithResourceDescription("The Linear user the configured API key authenticates as"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleViewer returns the viewer as JSON. Lookup failures become a
// text resource rather than a protocol error.
func (h *Handler) HandleViewer(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	viewer, err := h.source.Viewer(ctx)
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(viewer, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling viewer: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
