// Package prompts implements MCP prompt handlers for the conclusion store.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ConcludePrompt handles the booster-conclude MCP prompt. It guides the
// AI through recording a well-formed conclusion for the work just done.
type ConcludePrompt struct{}

// NewConcludePrompt creates a ConcludePrompt.
func NewConcludePrompt() *ConcludePrompt {
	return &ConcludePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ConcludePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("booster-conclude",
		mcp.WithPromptDescription(
			"Record a conclusion for the work just completed: why the change "+
				"was made, what was changed, and structured context.",
		),
		mcp.WithArgument("summary",
			mcp.ArgumentDescription("One-line summary of the completed work"),
		),
	)
}

// Handle processes the booster-conclude prompt request.
func (p *ConcludePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	summary := "the work we just completed"
	if args := req.Params.Arguments; args != nil {
		if s, ok := args["summary"]; ok && s != "" {
			summary = s
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Record conclusion: %s", summary),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"Record a durable conclusion for %s.\n\n"+
						"Please:\n"+
						"1. Summarize why the change was made and what was changed\n"+
						"2. Pick a category (feature, bugfix, refactoring, performance, security, ...) and an impact level\n"+
						"3. List the affected files and any tags worth searching for later\n"+
						"4. Call `booster_conclusion` with projectPath set to this project's root and the fields above\n"+
						"5. Confirm where the record was saved",
					summary,
				)),
			},
		},
	}, nil
}
