package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/LLM-Booster/mcp-booster/internal/conclusion"
)

// RecordTool handles the booster_conclusion MCP tool: it records why a
// change was made and what was changed, with structured context, into the
// project's conclusion log.
type RecordTool struct {
	store *conclusion.Store
}

// NewRecordTool creates a RecordTool with the given store.
func NewRecordTool(store *conclusion.Store) *RecordTool {
	return &RecordTool{store: store}
}

// Definition returns the MCP tool definition for booster_conclusion.
func (t *RecordTool) Definition() mcp.Tool {
	return mcp.NewTool("booster_conclusion",
		mcp.WithDescription(
			"Record a durable conclusion after finishing a unit of work: why the change was made, "+
				"what was changed, and structured context (category, tags, affected files, snippets). "+
				"The record is appended to the project's conclusion.md and becomes searchable.",
		),
		mcp.WithString("projectPath",
			mcp.Required(),
			mcp.Description("Absolute path of the project root the conclusion belongs to"),
		),
		mcp.WithString("whyChange",
			mcp.Required(),
			mcp.Description("Why the change was made"),
		),
		mcp.WithString("whatChange",
			mcp.Required(),
			mcp.Description("What was changed"),
		),
		mcp.WithString("category",
			mcp.Description("Category: feature, bugfix, refactoring, performance, security, documentation, test, config, architecture (default: feature)"),
		),
		mcp.WithArray("subCategories",
			mcp.Description("Free-form sub-categories"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("tags",
			mcp.Description("Free-form classification tags"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("impactLevel",
			mcp.Description("Impact level: low, medium or high (default: medium)"),
		),
		mcp.WithArray("affectedFiles",
			mcp.Description("Files touched by the change"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithArray("codeSnippets",
			mcp.Description("Before/after code pairs per file"),
			mcp.Items(map[string]any{
				"type": "object",
				"properties": map[string]any{
					"file":   map[string]any{"type": "string"},
					"before": map[string]any{"type": "string"},
					"after":  map[string]any{"type": "string"},
				},
			}),
		),
		mcp.WithArray("relatedConclusions",
			mcp.Description("Ids of related conclusions"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("ticketReference",
			mcp.Description("Ticket or issue reference"),
		),
		mcp.WithString("businessContext",
			mcp.Description("Business context around the change"),
		),
		mcp.WithString("technicalContext",
			mcp.Description("Technical context around the change"),
		),
		mcp.WithArray("alternativesConsidered",
			mcp.Description("Alternatives that were considered and rejected"),
			mcp.Items(map[string]any{"type": "string"}),
		),
		mcp.WithString("testingPerformed",
			mcp.Description("How the change was verified"),
		),
		mcp.WithArray("thoughtNumbers",
			mcp.Description("Reasoning step numbers the conclusion derives from"),
			mcp.Items(map[string]any{"type": "integer"}),
		),
		mcp.WithArray("thoughts",
			mcp.Description("Raw reasoning step texts saved alongside the conclusion"),
			mcp.Items(map[string]any{"type": "string"}),
		),
	)
}

// Handle processes the booster_conclusion tool call.
func (t *RecordTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectPath := req.GetString("projectPath", "")
	whyChange := req.GetString("whyChange", "")
	whatChange := req.GetString("whatChange", "")

	if projectPath == "" {
		return mcp.NewToolResultError("'projectPath' is required"), nil
	}
	if whyChange == "" {
		return mcp.NewToolResultError("'whyChange' is required"), nil
	}
	if whatChange == "" {
		return mcp.NewToolResultError("'whatChange' is required"), nil
	}

	opts := conclusion.Options{
		Category:           req.GetString("category", ""),
		SubCategories:      stringListArg(req, "subCategories"),
		Tags:               stringListArg(req, "tags"),
		ImpactLevel:        req.GetString("impactLevel", ""),
		AffectedFiles:      stringListArg(req, "affectedFiles"),
		CodeSnippets:       snippetListArg(req, "codeSnippets"),
		RelatedConclusions: stringListArg(req, "relatedConclusions"),
		TicketReference:    req.GetString("ticketReference", ""),
		BusinessContext:    req.GetString("businessContext", ""),
		TechnicalContext:   req.GetString("technicalContext", ""),
		Alternatives:       stringListArg(req, "alternativesConsidered"),
		TestingPerformed:   req.GetString("testingPerformed", ""),
		ThoughtNumbers:     intListArg(req, "thoughtNumbers"),
		Thoughts:           stringListArg(req, "thoughts"),
	}

	results, err := t.store.Record(projectPath, whyChange, whatChange, opts)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to record conclusion: %v", err)), nil
	}

	payload, err := json.MarshalIndent(results, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(payload)), nil
}
