// mcp-booster: durable conclusion store for AI-assisted reasoning tools.
//
// An MCP server (stdio transport) that records why/what conclusions into a
// per-project markdown log and answers keyword searches over everything
// recorded in the current session.
//
// Usage:
//
//	mcp-booster serve     # Start the MCP server (stdio transport)
//	mcp-booster version   # Show version information
package main

import (
	"fmt"
	"os"

	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	"github.com/LLM-Booster/mcp-booster/internal/config"
	"github.com/LLM-Booster/mcp-booster/internal/logging"
	"github.com/LLM-Booster/mcp-booster/internal/server"
)

var configPath string

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mcp-booster",
	Short: "MCP server recording durable conclusions about completed work",
	Long: `mcp-booster is an MCP server that keeps a durable, searchable record of
AI-assisted work: each recorded conclusion captures why a change was made,
what was changed, and structured context, appended to the project's
conclusion.md.`,
	Version:       server.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (default ~/.config/mcp-booster/config.yaml)")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "mcp-booster %s\n", server.Version)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server on stdio",
	Long: `Start the MCP server on the stdio transport. Logs go to stderr so they
never interfere with protocol frames on stdout.

Add to your AI tool's MCP configuration:

  {
    "mcpServers": {
      "booster": {
        "command": "mcp-booster",
        "args": ["serve"]
      }
    }
  }`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s := server.New(cfg, logger)
	return mcpserver.ServeStdio(s)
}
