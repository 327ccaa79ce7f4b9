// linear-mcp: an MCP server for Linear initiatives, projects and documents.
//
// It exposes six read-only tools over stdio (or streamable HTTP) and a
// few CLI commands that run the same operations directly.
//
// Usage:
//
//	linear-mcp serve            # Start MCP server (stdio transport)
//	linear-mcp serve --http :8080
//	linear-mcp check            # Verify the API key against Linear
//	linear-mcp query projects --search API -o table
//	linear-mcp version
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/jonathanykh/linear-api/internal/config"
	mcpserver "github.com/jonathanykh/linear-api/internal/server"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "linear-mcp",
	Short: "Linear initiatives, projects and documents over MCP",
	Long: `linear-mcp serves Linear workspace data to MCP hosts.

Tools: list_initiatives, get_initiative, list_projects,
get_project_with_milestones_and_associated_issues, list_documents, get_document.

Configuration comes from flags, the environment and an optional .env file:
  LINEAR_API_KEY         personal API key (required)
  LINEAR_API_URL         GraphQL endpoint override
  LINEAR_MCP_DEBUG       debug logging
  LINEAR_MCP_LOG_FORMAT  text or json`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := config.LoadDotEnv(); err != nil {
			return err
		}
		config.Bind(viper.GetViper())
		return setupLogging(viper.GetBool(config.KeyDebug), viper.GetString(config.KeyLogFormat))
	},
}

func main() {
	addPersistentFlags()
	registerCommands()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func addPersistentFlags() {
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("log-format", "text", "log format: text or json")
	rootCmd.PersistentFlags().String("api-url", config.DefaultEndpoint, "Linear GraphQL endpoint")
	_ = viper.BindPFlag(config.KeyDebug, rootCmd.PersistentFlags().Lookup("debug"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyAPIURL, rootCmd.PersistentFlags().Lookup("api-url"))
}

func registerCommands() {
	rootCmd.AddCommand(serveCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(queryCmd())
	rootCmd.AddCommand(versionCmd())
}

// setupLogging routes logrus to stderr. stdout belongs to the stdio
// transport and to command output.
func setupLogging(debug bool, format string) error {
	log.SetOutput(os.Stderr)
	switch strings.ToLower(format) {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "", "text":
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	default:
		return fmt.Errorf("invalid log format %q: want text or json", format)
	}
	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
	return nil
}

// loadConfig resolves the full configuration. It fails when the API key
// is missing and warns when it looks malformed.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return nil, err
	}
	if warning := cfg.KeyFormatWarning(); warning != "" {
		log.Warn(warning)
	}
	return cfg, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s v%s\n", mcpserver.Name, mcpserver.Version)
		},
	}
}
