// Package tools implements the MCP tool handlers for the conclusion store.
//
// Each tool follows the same pattern:
// - A struct with dependencies (*conclusion.Store) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() validates the request and delegates to the store
//
// Handlers validate structural shape only (required fields present, lists
// hold strings); the business meaning of stored text is never validated.
package tools

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/LLM-Booster/mcp-booster/internal/conclusion"
)

// stringListArg extracts a list-of-strings argument, skipping non-string
// elements. Missing or malformed arguments yield nil.
func stringListArg(req mcp.CallToolRequest, key string) []string {
	raw, ok := req.GetArguments()[key].([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

// intListArg extracts a list-of-integers argument (JSON numbers arrive as
// float64). Missing or malformed arguments yield nil.
func intListArg(req mcp.CallToolRequest, key string) []int {
	raw, ok := req.GetArguments()[key].([]any)
	if !ok {
		return nil
	}
	var out []int
	for _, item := range raw {
		if n, ok := item.(float64); ok {
			out = append(out, int(n))
		}
	}
	return out
}

// snippetListArg extracts the codeSnippets argument: a list of objects
// with before/after/file string fields.
func snippetListArg(req mcp.CallToolRequest, key string) []conclusion.CodeSnippet {
	raw, ok := req.GetArguments()[key].([]any)
	if !ok {
		return nil
	}
	var out []conclusion.CodeSnippet
	for _, item := range raw {
		obj, ok := item.(map[string]any)
		if !ok {
			continue
		}
		snippet := conclusion.CodeSnippet{}
		if s, ok := obj["file"].(string); ok {
			snippet.File = s
		}
		if s, ok := obj["before"].(string); ok {
			snippet.Before = s
		}
		if s, ok := obj["after"].(string); ok {
			snippet.After = s
		}
		out = append(out, snippet)
	}
	return out
}
