package main

import (
	"context"
	"fmt"

	mcpserver "github.com/jonathanykh/linear-api/internal/server"
	"github.com/jonathanykh/linear-api/internal/workspace"
	"github.com/spf13/cobra"
)

// queryFlags mirrors the list tool parameters.
type queryFlags struct {
	limit           int
	search          string
	includeArchived bool
	teamID          string
	initiativeID    string
	projectID       string
	after           string
	before          string
	output          string
}

func (f *queryFlags) params() workspace.ListParams {
	return workspace.ListParams{
		Limit:           f.limit,
		Search:          f.search,
		IncludeArchived: f.includeArchived,
		TeamID:          f.teamID,
		InitiativeID:    f.initiativeID,
		ProjectID:       f.projectID,
		After:           f.after,
		Before:          f.before,
	}
}

func queryCmd() *cobra.Command {
	f := &queryFlags{}
	cmd := &cobra.Command{
		Use:   "query",
		Short: "Run a tool operation directly and print the result",
	}
	cmd.PersistentFlags().StringVarP(&f.output, "output", "o", formatJSON, "output format: json, yaml or table")

	cmd.AddCommand(listCmd(f, "initiatives", "List initiatives", func(ctx context.Context, svc *workspace.Service) (any, error) {
		return svc.ListInitiatives(ctx, f.params())
	}))
	cmd.AddCommand(getCmd(f, "initiative", "Show one initiative", func(ctx context.Context, svc *workspace.Service, id string) (any, error) {
		return svc.GetInitiative(ctx, id)
	}))

	projects := listCmd(f, "projects", "List projects", func(ctx context.Context, svc *workspace.Service) (any, error) {
		return svc.ListProjects(ctx, f.params())
	})
	projects.Flags().StringVar(&f.teamID, "team-id", "", "filter by team ID")
	projects.Flags().StringVar(&f.initiativeID, "initiative-id", "", "filter by initiative ID")
	cmd.AddCommand(projects)
	cmd.AddCommand(getCmd(f, "project", "Show one project with milestones and issues", func(ctx context.Context, svc *workspace.Service, id string) (any, error) {
		return svc.GetProject(ctx, id)
	}))

	documents := listCmd(f, "documents", "List documents", func(ctx context.Context, svc *workspace.Service) (any, error) {
		return svc.ListDocuments(ctx, f.params())
	})
	documents.Flags().StringVar(&f.projectID, "project-id", "", "filter by project ID")
	documents.Flags().StringVar(&f.initiativeID, "initiative-id", "", "filter by initiative ID")
	cmd.AddCommand(documents)
	cmd.AddCommand(getCmd(f, "document", "Show one document", func(ctx context.Context, svc *workspace.Service, id string) (any, error) {
		return svc.GetDocument(ctx, id)
	}))

	return cmd
}

func listCmd(f *queryFlags, use, short string, run func(context.Context, *workspace.Service) (any, error)) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, f.output, func(ctx context.Context, svc *workspace.Service) (any, error) {
				return run(ctx, svc)
			})
		},
	}
	cmd.Flags().IntVar(&f.limit, "limit", workspace.DefaultLimit, fmt.Sprintf("number of results (max %d)", workspace.MaxLimit))
	cmd.Flags().StringVar(&f.search, "search", "", "search term")
	cmd.Flags().BoolVar(&f.includeArchived, "include-archived", false, "include archived items")
	cmd.Flags().StringVar(&f.after, "after", "", "cursor for the next page")
	cmd.Flags().StringVar(&f.before, "before", "", "cursor for the previous page")
	return cmd
}

func getCmd(f *queryFlags, use, short string, run func(context.Context, *workspace.Service, string) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, f.output, func(ctx context.Context, svc *workspace.Service) (any, error) {
				return run(ctx, svc, args[0])
			})
		},
	}
}

// runQuery executes one operation and prints it. Operation failures are
// printed as the same {"error": ...} document the tools return, and the
// command exits non-zero.
func runQuery(cmd *cobra.Command, format string, run func(context.Context, *workspace.Service) (any, error)) error {
	if err := validateFormat(format); err != nil {
		return err
	}
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	result, err := run(cmd.Context(), mcpserver.NewService(cfg))
	out := cmd.OutOrStdout()
	if err != nil {
		if perr := printJSON(out, workspace.Failure(err)); perr != nil {
			return perr
		}
		return err
	}
	return render(out, format, result)
}
