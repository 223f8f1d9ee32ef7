// Package conclusion implements the durable record-keeper for completed
// units of work: it normalizes caller-supplied fields into canonical
// metadata, renders each record into a markdown block through the template
// engine, merges blocks into a single append-only per-project log file, and
// feeds the in-memory search index.
package conclusion

import (
	"fmt"
	"sync"
	"time"
)

// Impact levels for a recorded conclusion.
const (
	ImpactLow    = "low"
	ImpactMedium = "medium"
	ImpactHigh   = "high"
)

// idPrefix is the fixed prefix of every conclusion id.
const idPrefix = "conclusion-"

// CodeSnippet captures a before/after pair for one file.
type CodeSnippet struct {
	File   string `json:"file"`
	Before string `json:"before"`
	After  string `json:"after"`
}

// Options is the explicit bag of optional caller fields for a conclusion.
// Every field is optional; the zero value yields a fully-defaulted record.
type Options struct {
	Category           string        `json:"category,omitempty"`
	SubCategories      []string      `json:"sub_categories,omitempty"`
	Tags               []string      `json:"tags,omitempty"`
	ImpactLevel        string        `json:"impact_level,omitempty"`
	AffectedFiles      []string      `json:"affected_files,omitempty"`
	CodeSnippets       []CodeSnippet `json:"code_snippets,omitempty"`
	RelatedConclusions []string      `json:"related_conclusions,omitempty"`
	TicketReference    string        `json:"ticket_reference,omitempty"`
	BusinessContext    string        `json:"business_context,omitempty"`
	TechnicalContext   string        `json:"technical_context,omitempty"`
	Alternatives       []string      `json:"alternatives_considered,omitempty"`
	TestingPerformed   string        `json:"testing_performed,omitempty"`

	// ThoughtNumbers links the conclusion to the reasoning steps it was
	// derived from, when the caller supplies them.
	ThoughtNumbers []int `json:"thought_numbers,omitempty"`

	// Thoughts are raw reasoning-step texts saved alongside the rendered
	// conclusion as separate log entries.
	Thoughts []string `json:"thoughts,omitempty"`
}

// Metadata is the canonical, fully-populated record for one conclusion.
// List fields are never nil and string fields with defaults are never
// empty once built.
type Metadata struct {
	ID                 string   `json:"id"`
	Timestamp          string   `json:"timestamp"`
	Category           string   `json:"category"`
	SubCategories      []string `json:"sub_categories"`
	Tags               []string `json:"tags"`
	ImpactLevel        string   `json:"impact_level"`
	AffectedFiles      []string `json:"affected_files"`
	RelatedConclusions []string `json:"related_conclusions"`
	TicketReference    string   `json:"ticket_reference,omitempty"`
	BusinessContext    string   `json:"business_context,omitempty"`
	TechnicalContext   string   `json:"technical_context,omitempty"`
	ThoughtNumbers     []int    `json:"thought_numbers,omitempty"`
}

// Builder turns Options into Metadata, assigning each record a unique id
// and a fresh ISO-8601 timestamp. Ids derive from the creation instant in
// unix milliseconds; a monotonic guard keeps them strictly increasing even
// when two records are built within the same millisecond, so an id is
// never reused for the lifetime of the builder.
type Builder struct {
	defaultCategory string

	mu     sync.Mutex
	lastID int64
	now    func() time.Time
}

// NewBuilder creates a Builder. An empty defaultCategory falls back to
// "feature".
func NewBuilder(defaultCategory string) *Builder {
	if defaultCategory == "" {
		defaultCategory = DefaultCategory
	}
	return &Builder{
		defaultCategory: defaultCategory,
		now:             time.Now,
	}
}

// Build fills every metadata field from opts when present and applies
// defaults otherwise. Build never fails.
func (b *Builder) Build(opts Options) Metadata {
	now := b.now()

	category := opts.Category
	if category == "" {
		category = b.defaultCategory
	}
	impact := normalizeImpact(opts.ImpactLevel)

	return Metadata{
		ID:                 b.nextID(now),
		Timestamp:          now.UTC().Format(time.RFC3339),
		Category:           category,
		SubCategories:      orEmpty(opts.SubCategories),
		Tags:               orEmpty(opts.Tags),
		ImpactLevel:        impact,
		AffectedFiles:      orEmpty(opts.AffectedFiles),
		RelatedConclusions: orEmpty(opts.RelatedConclusions),
		TicketReference:    opts.TicketReference,
		BusinessContext:    opts.BusinessContext,
		TechnicalContext:   opts.TechnicalContext,
		ThoughtNumbers:     opts.ThoughtNumbers,
	}
}

// nextID returns "conclusion-<millis>", bumping the instant forward when a
// previous id already claimed it.
func (b *Builder) nextID(now time.Time) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	millis := now.UnixMilli()
	if millis <= b.lastID {
		millis = b.lastID + 1
	}
	b.lastID = millis
	return fmt.Sprintf("%s%d", idPrefix, millis)
}

// normalizeImpact maps unknown or empty impact levels to medium.
func normalizeImpact(level string) string {
	switch level {
	case ImpactLow, ImpactMedium, ImpactHigh:
		return level
	default:
		return ImpactMedium
	}
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
