package tools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/LLM-Booster/mcp-booster/internal/conclusion"
)

// AppendTool handles the booster_append MCP tool: lightweight interaction
// summaries written straight to the conclusion log, skipping metadata,
// templating and indexing.
type AppendTool struct {
	store *conclusion.Store
}

// NewAppendTool creates an AppendTool with the given store.
func NewAppendTool(store *conclusion.Store) *AppendTool {
	return &AppendTool{store: store}
}

// Definition returns the MCP tool definition for booster_append.
func (t *AppendTool) Definition() mcp.Tool {
	return mcp.NewTool("booster_append",
		mcp.WithDescription(
			"Append a lightweight interaction summary to the project's conclusion log. "+
				"Use booster_conclusion instead when recording a finished unit of work.",
		),
		mcp.WithString("projectPath",
			mcp.Required(),
			mcp.Description("Absolute path of the project root"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("The summary text to append"),
		),
	)
}

// Handle processes the booster_append tool call.
func (t *AppendTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projectPath := req.GetString("projectPath", "")
	content := req.GetString("content", "")

	if projectPath == "" {
		return mcp.NewToolResultError("'projectPath' is required"), nil
	}
	if content == "" {
		return mcp.NewToolResultError("'content' is required"), nil
	}

	res, err := t.store.AppendRaw(projectPath, content)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to append entry: %v", err)), nil
	}

	return mcp.NewToolResultText(fmt.Sprintf("Entry saved to %s", res.FilePath)), nil
}
