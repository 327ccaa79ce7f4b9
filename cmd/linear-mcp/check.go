package main

import (
	"fmt"

	mcpserver "github.com/jonathanykh/linear-api/internal/server"
	"github.com/spf13/cobra"
)

// checkCmd verifies the configured key by asking Linear who it belongs to.
func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Test the connection to Linear",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "API key:  %s\n", cfg.MaskedKey())
			fmt.Fprintf(out, "Endpoint: %s\n", cfg.Endpoint)
			if warning := cfg.KeyFormatWarning(); warning != "" {
				fmt.Fprintf(out, "Warning:  %s\n", warning)
			}

			viewer, err := mcpserver.NewService(cfg).Viewer(cmd.Context())
			if err != nil {
				return fmt.Errorf("connection failed: %w", err)
			}
			fmt.Fprintf(out, "Connected as %s <%s> (%s)\n", deref(viewer.Name), deref(viewer.Email), viewer.ID)
			return nil
		},
	}
}
