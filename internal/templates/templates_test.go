package templates

import (
	"strings"
	"testing"
)

// --- NewEngine ---

func TestNewEngine_HasDefaultTemplate(t *testing.T) {
	e := NewEngine(nil)
	if e == nil {
		t.Fatal("NewEngine returned nil")
	}

	got := e.Render(DefaultName, map[string]any{
		"whyChange":  "needed auth",
		"whatChange": "added JWT middleware",
	})
	for _, check := range []string{"needed auth", "added JWT middleware"} {
		if !strings.Contains(got, check) {
			t.Errorf("default render missing %q in %q", check, got)
		}
	}
}

// --- Render: substitution ---

func TestRender_SubstitutesScalars(t *testing.T) {
	e := NewEngine(nil)
	e.Register("greeting", "Hello {name}, impact is {impact}")

	got := e.Render("greeting", map[string]any{"name": "world", "impact": "high"})
	want := "Hello world, impact is high"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_ExpandsListsAsBullets(t *testing.T) {
	e := NewEngine(nil)
	e.Register("files", "Affected:\n{files}")

	got := e.Render("files", map[string]any{"files": []string{"a.go", "b.go"}})
	want := "Affected:\n- a.go\n- b.go"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_EmptyListRendersEmpty(t *testing.T) {
	e := NewEngine(nil)
	e.Register("files", "[{files}]")

	got := e.Render("files", map[string]any{"files": []string{}})
	if got != "[]" {
		t.Errorf("Render = %q, want %q", got, "[]")
	}
}

func TestRender_IntListRendersBullets(t *testing.T) {
	e := NewEngine(nil)
	e.Register("thoughts", "{thoughts}")

	got := e.Render("thoughts", map[string]any{"thoughts": []int{1, 2, 3}})
	want := "- 1\n- 2\n- 3"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

func TestRender_UnknownPlaceholderLeftVerbatim(t *testing.T) {
	e := NewEngine(nil)
	e.Register("partial", "{known} and {unknown}")

	got := e.Render("partial", map[string]any{"known": "value"})
	want := "value and {unknown}"
	if got != want {
		t.Errorf("Render = %q, want %q", got, want)
	}
}

// --- Render: fallback ---

func TestRender_UnknownTemplateFallsBackToDefault(t *testing.T) {
	e := NewEngine(nil)
	data := map[string]any{
		"whyChange":  "needed auth",
		"whatChange": "added JWT middleware",
	}

	fromMissing := e.Render("nonexistent-template", data)
	fromDefault := e.Render(DefaultName, data)
	if fromMissing != fromDefault {
		t.Errorf("fallback render %q != default render %q", fromMissing, fromDefault)
	}
}

func TestRender_OverwritingDefaultChangesFallback(t *testing.T) {
	e := NewEngine(nil)
	e.Register(DefaultName, "custom: {whyChange}")

	got := e.Render("still-missing", map[string]any{"whyChange": "reason"})
	if got != "custom: reason" {
		t.Errorf("Render = %q, want %q", got, "custom: reason")
	}
}

// --- Register ---

func TestRegister_Overwrites(t *testing.T) {
	e := NewEngine(nil)
	e.Register("x", "one")
	e.Register("x", "two")

	if got := e.Render("x", nil); got != "two" {
		t.Errorf("Render = %q, want %q", got, "two")
	}
}
