package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/LLM-Booster/mcp-booster/internal/conclusion"
)

// SearchTool handles the booster_search MCP tool.
type SearchTool struct {
	store *conclusion.Store
}

// NewSearchTool creates a SearchTool with the given store.
func NewSearchTool(store *conclusion.Store) *SearchTool {
	return &SearchTool{store: store}
}

// Definition returns the MCP tool definition for booster_search.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("booster_search",
		mcp.WithDescription(
			"Search conclusions recorded in this session by keyword. "+
				"Returns conclusion ids, most relevant first; use them to locate records in conclusion.md.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search query — keywords or natural language"),
		),
	)
}

// Handle processes the booster_search tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}

	ids := t.store.Search(query)
	if len(ids) == 0 {
		return mcp.NewToolResultText("No conclusions found matching your query."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d conclusions:\n", len(ids))
	for i, id := range ids {
		fmt.Fprintf(&b, "[%d] %s\n", i+1, id)
	}
	return mcp.NewToolResultText(b.String()), nil
}
