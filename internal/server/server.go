// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it creates the Linear client and
// workspace service and injects them into the tools, prompts and
// resources that depend on abstractions. No business logic lives here,
// only wiring and call logging.
package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jonathanykh/linear-api/internal/config"
	"github.com/jonathanykh/linear-api/internal/linear"
	"github.com/jonathanykh/linear-api/internal/prompts"
	"github.com/jonathanykh/linear-api/internal/resources"
	"github.com/jonathanykh/linear-api/internal/tools"
	"github.com/jonathanykh/linear-api/internal/workspace"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	log "github.com/sirupsen/logrus"
)

// Name is the server name advertised to MCP clients.
const Name = "linear-initiatives-mcp"

// Version is set at build time via ldflags.
var Version = "dev"

// NewService builds the workspace service for cfg. The CLI uses it
// directly; New wraps it in an MCP server.
func NewService(cfg *config.Config) *workspace.Service {
	client := linear.NewClient(cfg.APIKey,
		linear.WithEndpoint(cfg.Endpoint),
		linear.WithUserAgent(Name+"/"+Version),
	)
	return workspace.NewService(client)
}

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
func New(cfg *config.Config) *server.MCPServer {
	// --- Create shared dependencies ---

	svc := NewService(cfg)

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		Name,
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithHooks(newHooks()),
		server.WithToolHandlerMiddleware(logToolCalls),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register initiative tools ---

	listInitiatives := tools.NewListInitiativesTool(svc)
	s.AddTool(listInitiatives.Definition(), listInitiatives.Handle)

	getInitiative := tools.NewGetInitiativeTool(svc)
	s.AddTool(getInitiative.Definition(), getInitiative.Handle)

	// --- Register project tools ---

	listProjects := tools.NewListProjectsTool(svc)
	s.AddTool(listProjects.Definition(), listProjects.Handle)

	getProject := tools.NewGetProjectTool(svc)
	s.AddTool(getProject.Definition(), getProject.Handle)

	// --- Register document tools ---

	listDocuments := tools.NewListDocumentsTool(svc)
	s.AddTool(listDocuments.Definition(), listDocuments.Handle)

	getDocument := tools.NewGetDocumentTool(svc)
	s.AddTool(getDocument.Definition(), getDocument.Handle)

	// --- Register prompts ---

	milestoneReport := prompts.NewMilestoneReportPrompt()
	s.AddPrompt(milestoneReport.Definition(), milestoneReport.Handle)

	initiativeOverview := prompts.NewInitiativeOverviewPrompt()
	s.AddPrompt(initiativeOverview.Definition(), initiativeOverview.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(svc)
	s.AddResource(resourceHandler.ViewerResource(), resourceHandler.HandleViewer)

	return s
}

// logToolCalls tags every tool call with a request id and logs its
// outcome. Error results are logged at warn level; the result itself is
// passed through untouched.
func logToolCalls(next server.ToolHandlerFunc) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		entry := log.WithFields(log.Fields{
			"tool":       req.Params.Name,
			"request_id": uuid.NewString(),
		})
		start := time.Now()

		result, err := next(ctx, req)

		entry = entry.WithField("duration", time.Since(start).Round(time.Millisecond).String())
		switch {
		case err != nil:
			entry.WithError(err).Error("tool call failed")
		case result != nil && result.IsError:
			entry.Warn("tool call returned an error result")
		default:
			entry.Debug("tool call")
		}
		return result, err
	}
}

func newHooks() *server.Hooks {
	hooks := &server.Hooks{}
	hooks.AddAfterInitialize(func(ctx context.Context, id any, msg *mcp.InitializeRequest, _ *mcp.InitializeResult) {
		log.WithFields(log.Fields{
			"client":         msg.Params.ClientInfo.Name,
			"client_version": msg.Params.ClientInfo.Version,
			"protocol":       msg.Params.ProtocolVersion,
		}).Info("client initialized")
	})
	hooks.AddOnError(func(ctx context.Context, id any, method mcp.MCPMethod, _ any, err error) {
		log.WithFields(log.Fields{
			"method": method,
			"id":     id,
		}).WithError(err).Warn("request failed")
	})
	return hooks
}

// serverInstructions returns the system instructions advertised to the
// host on initialize.
func serverInstructions() string {
	return "Extended Linear MCP server for querying initiatives, projects, and documents with full GraphQL support.\n" +
		"Provides comprehensive access to Linear workspace data including initiative hierarchies, " +
		"project details, and associated documentation."
}
