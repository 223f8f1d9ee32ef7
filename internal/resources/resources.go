// Package resources implements MCP resource handlers for the conclusion
// store.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (booster://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/LLM-Booster/mcp-booster/internal/conclusion"
)

// Handler manages booster resource endpoints.
type Handler struct {
	store   *conclusion.Store
	version string
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(store *conclusion.Store, version string) *Handler {
	return &Handler{store: store, version: version}
}

// storeStatus is the JSON shape of the status resource.
type storeStatus struct {
	Version             string `json:"version"`
	DataDir             string `json:"data_dir"`
	IndexedConclusions  int    `json:"indexed_conclusions"`
	SearchableThisRun   bool   `json:"searchable_this_run"`
	PersistentLogLayout string `json:"persistent_log_layout"`
}

// StatusResource returns the MCP resource definition for store status.
func (h *Handler) StatusResource() mcp.Resource {
	return mcp.NewResource(
		"booster://store/status",
		"Conclusion Store Status",
		mcp.WithResourceDescription("Store version, data directory and session index size"),
		mcp.WithMIMEType("application/json"),
	)
}

// HandleStatus returns the current store status as JSON.
func (h *Handler) HandleStatus(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	status := storeStatus{
		Version:             h.version,
		DataDir:             h.store.DataDir(),
		IndexedConclusions:  h.store.IndexedCount(),
		SearchableThisRun:   h.store.IndexedCount() > 0,
		PersistentLogLayout: fmt.Sprintf("<project>/%s/%s", h.store.DataDir(), conclusion.LogFileName),
	}

	data, err := json.MarshalIndent(status, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling status: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
