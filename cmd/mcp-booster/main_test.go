package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/LLM-Booster/mcp-booster/internal/server"
)

func TestVersionCommand(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{"version"})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if !strings.Contains(out.String(), server.Version) {
		t.Errorf("version output = %q, want it to contain %q", out.String(), server.Version)
	}
}
