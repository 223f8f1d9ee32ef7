package conclusion

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/LLM-Booster/mcp-booster/internal/templates"
)

// markerPlaceholder is the literal token in the template body that the
// renderer replaces with the generated conclusion id, producing the
// machine-extractable marker comment.
const markerPlaceholder = "CONCLUSION_ID"

// conclusionTemplate is the single semantic template covering all
// categories: the category changes the emoji and label shown, not the
// structure. Every section is always present; list fields supplied as
// empty sequences render as empty section bodies, never as null.
const conclusionTemplate = `## {emoji} {category}: {whyChange}

<!-- conclusion-id: CONCLUSION_ID -->

**Date:** {timestamp}
**Impact:** {impactLevel}
**Ticket:** {ticketReference}

### Why was this change made?

{whyChange}

### What was changed?

{whatChange}

### Business context

{businessContext}

### Technical context

{technicalContext}

### Affected files

{affectedFiles}

Files: {affectedFilesInline}

### Alternatives considered

{alternativesConsidered}

### Testing performed

{testingPerformed}

### Tags

{tags}

### Sub-categories

{subCategories}

### Related conclusions

{relatedConclusions}

### Code snippets

{codeSnippets}
`

// categoryEmojis maps known categories to the emoji shown in the record
// header. Categories outside the table get defaultEmoji.
var categoryEmojis = map[string]string{
	"feature":       "✨",
	"bugfix":        "🐛",
	"refactoring":   "♻️",
	"performance":   "⚡",
	"security":      "🔒",
	"documentation": "📝",
	"test":          "🧪",
	"config":        "🔧",
	"architecture":  "🏗️",
}

const defaultEmoji = "📌"

// Renderer composes the metadata builder with the template engine to
// produce one markdown block per recorded conclusion.
type Renderer struct {
	builder *Builder
	engine  *templates.Engine
	logger  *zap.Logger
}

// NewRenderer creates a Renderer and registers the conclusion template as
// the engine's default. A nil logger is replaced by a no-op logger.
func NewRenderer(builder *Builder, engine *templates.Engine, logger *zap.Logger) *Renderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	engine.Register(templates.DefaultName, conclusionTemplate)
	return &Renderer{builder: builder, engine: engine, logger: logger}
}

// Render builds metadata for the conclusion and renders it to markdown.
// Any internal formatting failure is caught and replaced by a minimal
// two-line block so that a formatting bug never blocks the write.
func (r *Renderer) Render(whyChange, whatChange string, opts Options) (markdown string, meta Metadata) {
	meta = r.builder.Build(opts)

	defer func() {
		if rec := recover(); rec != nil {
			r.logger.Error("conclusion render failed, using fallback block",
				zap.String("id", meta.ID),
				zap.Any("panic", rec))
			markdown = fallbackBlock(whyChange, whatChange, meta.ID)
		}
	}()

	data := templateData(whyChange, whatChange, meta, opts)
	rendered := r.engine.Render(templates.DefaultName, data)
	markdown = strings.ReplaceAll(rendered, markerPlaceholder, meta.ID)
	return markdown, meta
}

// templateData assembles the data bag: metadata fields plus the why/what
// pair and the formatted list fields.
func templateData(whyChange, whatChange string, meta Metadata, opts Options) map[string]any {
	return map[string]any{
		"emoji":                  emojiFor(meta.Category),
		"category":               meta.Category,
		"timestamp":              meta.Timestamp,
		"impactLevel":            meta.ImpactLevel,
		"ticketReference":        meta.TicketReference,
		"whyChange":              whyChange,
		"whatChange":             whatChange,
		"businessContext":        meta.BusinessContext,
		"technicalContext":       meta.TechnicalContext,
		"affectedFiles":          meta.AffectedFiles,
		"affectedFilesInline":    strings.Join(meta.AffectedFiles, ", "),
		"alternativesConsidered": orEmpty(opts.Alternatives),
		"testingPerformed":       opts.TestingPerformed,
		"tags":                   meta.Tags,
		"subCategories":          meta.SubCategories,
		"relatedConclusions":     meta.RelatedConclusions,
		"codeSnippets":           formatSnippets(opts.CodeSnippets),
	}
}

// emojiFor resolves the header emoji for a category.
func emojiFor(category string) string {
	if emoji, ok := categoryEmojis[strings.ToLower(category)]; ok {
		return emoji
	}
	return defaultEmoji
}

// formatSnippets renders before/after code pairs as fenced blocks per file.
func formatSnippets(snippets []CodeSnippet) string {
	if len(snippets) == 0 {
		return ""
	}
	var b strings.Builder
	for i, s := range snippets {
		if i > 0 {
			b.WriteString("\n")
		}
		fmt.Fprintf(&b, "**%s** (before):\n```\n%s\n```\n", s.File, s.Before)
		fmt.Fprintf(&b, "**%s** (after):\n```\n%s\n```\n", s.File, s.After)
	}
	return strings.TrimRight(b.String(), "\n")
}

// fallbackBlock is the minimal record written when rendering fails: the
// why/what pair plus the id marker, nothing else.
func fallbackBlock(whyChange, whatChange, id string) string {
	return fmt.Sprintf("## Conclusion\n\n<!-- conclusion-id: %s -->\n\n**Why:** %s\n**What:** %s\n",
		id, whyChange, whatChange)
}
