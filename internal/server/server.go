// Package server wires all MCP components and creates the server instance.
//
// This is the composition root: it builds the conclusion store from config
// with an injected logger and registers the tool handlers that depend on
// it. No business logic lives here — only wiring.
package server

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/LLM-Booster/mcp-booster/internal/conclusion"
	"github.com/LLM-Booster/mcp-booster/internal/config"
	"github.com/LLM-Booster/mcp-booster/internal/prompts"
	"github.com/LLM-Booster/mcp-booster/internal/resources"
	"github.com/LLM-Booster/mcp-booster/internal/tools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools registered.
// This is the single place where dependencies are resolved: the store
// receives its configuration and logger here and owns them for the
// process lifetime.
func New(cfg config.Config, logger *zap.Logger) *server.MCPServer {
	store := conclusion.NewStore(conclusion.Config{
		DataDir:          cfg.Store.DataDir,
		DefaultCategory:  cfg.Store.DefaultCategory,
		MaxSearchResults: cfg.Store.MaxSearchResults,
	}, logger)

	s := server.NewMCPServer(
		"mcp-booster",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	recordTool := tools.NewRecordTool(store)
	s.AddTool(recordTool.Definition(), recordTool.Handle)

	appendTool := tools.NewAppendTool(store)
	s.AddTool(appendTool.Definition(), appendTool.Handle)

	searchTool := tools.NewSearchTool(store)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	concludePrompt := prompts.NewConcludePrompt()
	s.AddPrompt(concludePrompt.Definition(), concludePrompt.Handle)

	resourceHandler := resources.NewHandler(store, Version)
	s.AddResource(resourceHandler.StatusResource(), resourceHandler.HandleStatus)

	logger.Info("server configured",
		zap.String("version", Version),
		zap.String("data_dir", cfg.Store.DataDir))

	return s
}

// serverInstructions returns the usage guidance sent to MCP clients.
func serverInstructions() string {
	return `mcp-booster keeps a durable, searchable record of completed work.

After finishing a unit of work, call booster_conclusion with why the change
was made, what was changed, and any structured context (category, tags,
impact level, affected files, code snippets). Records are appended to
<project>/booster-data/conclusion.md and never overwrite earlier entries.

Use booster_append for lightweight interaction summaries that don't warrant
full metadata. Use booster_search to find past conclusions by keyword; it
returns conclusion ids ranked by relevance for the current session.`
}
