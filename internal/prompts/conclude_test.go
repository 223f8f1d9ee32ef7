package prompts

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
)

func TestConcludePrompt_Definition(t *testing.T) {
	def := NewConcludePrompt().Definition()
	if def.Name != "booster-conclude" {
		t.Errorf("name = %s, want booster-conclude", def.Name)
	}
}

func TestConcludePrompt_Handle(t *testing.T) {
	p := NewConcludePrompt()

	req := mcp.GetPromptRequest{}
	req.Params.Arguments = map[string]string{"summary": "JWT auth rollout"}

	res, err := p.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(res.Description, "JWT auth rollout") {
		t.Errorf("description = %q", res.Description)
	}
	if len(res.Messages) != 1 {
		t.Fatalf("messages = %d, want 1", len(res.Messages))
	}

	text, ok := res.Messages[0].Content.(mcp.TextContent)
	if !ok {
		t.Fatal("message content is not text")
	}
	if !strings.Contains(text.Text, "booster_conclusion") {
		t.Errorf("prompt text missing tool reference: %s", text.Text)
	}
}

func TestConcludePrompt_DefaultSummary(t *testing.T) {
	res, err := NewConcludePrompt().Handle(context.Background(), mcp.GetPromptRequest{})
	if err != nil {
		t.Fatalf("Handle: %v", err)
	}
	if !strings.Contains(res.Description, "the work we just completed") {
		t.Errorf("description = %q", res.Description)
	}
}
