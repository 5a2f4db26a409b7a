package classic_test

import (
	"context"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-portfolio/pkg/model"
	"github.com/goliatone/go-portfolio/pkg/render"
	"github.com/goliatone/go-portfolio/pkg/renderers/classic"
)

func indexPage() model.Page {
	return model.Page{Name: model.PageIndex, Template: "index_template.html", Output: "index.html"}
}

func sampleData() map[string]any {
	return map[string]any{
		"name":         "Ada Lovelace",
		"tagline":      "Analyst & Engineer",
		"current_year": 2026,
		"social_links": []any{
			map[string]any{
				"name":     "github",
				"url":      "https://github.com/ada",
				"svg_data": "<svg>A</svg>",
			},
		},
	}
}

func TestRender_EmbeddedIndexTemplate(t *testing.T) {
	renderer, err := classic.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), indexPage(), sampleData(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	if !strings.Contains(html, "Ada Lovelace") {
		t.Fatalf("name missing from output:\n%s", html)
	}
	// The tagline goes through autoescaping.
	if !strings.Contains(html, "Analyst &amp; Engineer") {
		t.Fatalf("tagline not escaped:\n%s", html)
	}
	// Inlined SVG is marked safe by the template.
	if !strings.Contains(html, "<svg>A</svg>") {
		t.Fatalf("svg markup missing or escaped:\n%s", html)
	}
	if !strings.Contains(html, "&copy; 2026 Ada Lovelace") {
		t.Fatalf("footer year malformed or missing:\n%s", html)
	}
}

func TestRender_EmbeddedResumeTemplate(t *testing.T) {
	renderer, err := classic.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	data := map[string]any{
		"name":         "Ada Lovelace",
		"email":        "ada@example.com",
		"current_year": 2026,
		"experience": []any{
			map[string]any{
				"role":       "Engineer",
				"company":    "Analytical Engines Ltd",
				"start":      "1842",
				"highlights": []any{"Wrote the first program"},
			},
		},
		"skills": []any{"mathematics", "notes"},
	}

	page := model.Page{Name: model.PageResume, Template: "resume_template.html", Output: "resume.html"}
	out, err := renderer.Render(context.Background(), page, data, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	html := string(out)
	for _, want := range []string{"Analytical Engines Ltd", "Wrote the first program", "mailto:ada@example.com", "mathematics"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q:\n%s", want, html)
		}
	}
}

func TestRender_CustomTemplatesFS(t *testing.T) {
	renderer, err := classic.New(classic.WithTemplatesFS(fstest.MapFS{
		"index_template.html": &fstest.MapFile{Data: []byte(`<p>{{ name }}</p>`)},
	}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), indexPage(), map[string]any{"name": "Ada"}, render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "<p>Ada</p>" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRender_ThemeContext(t *testing.T) {
	renderer, err := classic.New(classic.WithTemplatesFS(fstest.MapFS{
		"index_template.html": &fstest.MapFile{
			Data: []byte(`{{ theme.name }}/{{ theme.variant }}:{{ theme.css_vars|safe }}`),
		},
	}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	options := render.RenderOptions{
		Theme: &render.ThemeConfig{
			Theme:   "acme",
			Variant: "dark",
			CSSVars: map[string]string{"--brand": "#123456"},
			AssetURL: func(string) string {
				return ""
			},
		},
	}
	out, err := renderer.Render(context.Background(), indexPage(), map[string]any{"name": "Ada"}, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	html := string(out)
	if !strings.Contains(html, "acme/dark") {
		t.Fatalf("theme identity missing: %s", html)
	}
	if !strings.Contains(html, "#123456") {
		t.Fatalf("css vars missing: %s", html)
	}
}

func TestRender_GlobalsDoNotShadowDocument(t *testing.T) {
	renderer, err := classic.New(classic.WithTemplatesFS(fstest.MapFS{
		"index_template.html": &fstest.MapFile{Data: []byte(`{{ name }}/{{ build }}`)},
	}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	options := render.RenderOptions{Globals: map[string]any{"name": "ignored", "build": "v1"}}
	out, err := renderer.Render(context.Background(), indexPage(), map[string]any{"name": "Ada"}, options)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if string(out) != "Ada/v1" {
		t.Fatalf("unexpected output: %s", out)
	}
}

func TestRender_MissingTemplateName(t *testing.T) {
	renderer, err := classic.New()
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	page := model.Page{Name: "broken"}
	if _, err := renderer.Render(context.Background(), page, nil, render.RenderOptions{}); err == nil {
		t.Fatal("expected error for page without template")
	}
}
