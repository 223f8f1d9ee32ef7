// Package templates implements the named-template registry used to render
// conclusion records into markdown.
//
// Templates are plain strings containing {placeholder} tokens. Rendering
// substitutes placeholders from a data bag, expands list values into
// bulleted lines, and leaves unknown placeholders verbatim so a template
// can be rendered progressively. A template named "default" always exists
// and is used whenever a requested name is unknown, so rendering never
// fails.
package templates

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.uber.org/zap"
)

// DefaultName is the template every engine carries from construction and
// falls back to when asked for an unknown name.
const DefaultName = "default"

// defaultBody is the built-in fallback body. Callers with richer needs
// overwrite it via Register(DefaultName, ...).
const defaultBody = "## {whyChange}\n\n{whatChange}"

var placeholderPattern = regexp.MustCompile(`\{([a-zA-Z][a-zA-Z0-9_]*)\}`)

// Engine is a registry of named templates. Safe for concurrent use.
type Engine struct {
	mu        sync.RWMutex
	templates map[string]string
	logger    *zap.Logger
}

// NewEngine creates an engine with the built-in default template registered.
// The logger records fallbacks to the default template; nil is replaced by
// a no-op logger.
func NewEngine(logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		templates: map[string]string{DefaultName: defaultBody},
		logger:    logger,
	}
}

// Register stores body under name, overwriting any previous registration.
func (e *Engine) Register(name, body string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.templates[name] = body
}

// Render substitutes every {key} placeholder in the named template with the
// corresponding value from data. Sequence values render as one "- element"
// line per element (empty sequences render as an empty string); scalar
// values render with their natural formatting; placeholders whose key is
// absent from data are left verbatim.
//
// An unknown template name falls back to the default template. Render
// always succeeds.
func (e *Engine) Render(name string, data map[string]any) string {
	e.mu.RLock()
	body, ok := e.templates[name]
	if !ok {
		body = e.templates[DefaultName]
	}
	e.mu.RUnlock()

	if !ok {
		e.logger.Warn("unknown template, falling back to default",
			zap.String("template", name))
	}

	return placeholderPattern.ReplaceAllStringFunc(body, func(match string) string {
		key := match[1 : len(match)-1]
		value, present := data[key]
		if !present {
			return match
		}
		return formatValue(value)
	})
}

// formatValue renders a single data-bag value. Sequences become bulleted
// lines; everything else goes through fmt.
func formatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case []string:
		return bulleted(v)
	case []int:
		items := make([]string, len(v))
		for i, n := range v {
			items[i] = fmt.Sprintf("%d", n)
		}
		return bulleted(items)
	case []any:
		items := make([]string, len(v))
		for i, item := range v {
			items[i] = fmt.Sprint(item)
		}
		return bulleted(items)
	default:
		return fmt.Sprint(v)
	}
}

func bulleted(items []string) string {
	if len(items) == 0 {
		return ""
	}
	var b strings.Builder
	for i, item := range items {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(item)
	}
	return b.String()
}
