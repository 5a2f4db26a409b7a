package site_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-portfolio/pkg/augment"
	"github.com/goliatone/go-portfolio/pkg/model"
	"github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/render"
	"github.com/goliatone/go-portfolio/pkg/renderers/classic"
	"github.com/goliatone/go-portfolio/pkg/site"
	"github.com/goliatone/go-portfolio/pkg/testsupport"
)

func fixedAugmenter(dir string) *augment.Augmenter {
	return augment.New(
		augment.WithClock(func() time.Time {
			return time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
		}),
		augment.WithIconFS(os.DirFS(dir)),
	)
}

func fixtureTemplates() map[string]string {
	return map[string]string{
		"index_template.html":  `<h1>{{ name }}</h1>{% for link in social_links %}{{ link.svg_data|safe }}{% endfor %}<p>{{ current_year }}</p>`,
		"resume_template.html": `<h1>{{ name }} resume</h1><p>{{ current_year }}</p>`,
	}
}

func fixtureDocument() map[string]any {
	return map[string]any{
		"name": "Ada",
		"social_links": []any{
			map[string]any{"name": "github", "url": "https://github.com/ada", "svg_path": "icon.svg"},
			map[string]any{"name": "no-icon"},
		},
	}
}

func newFixtureGenerator(t *testing.T, dir string) *site.Generator {
	t.Helper()

	renderer, err := classic.New(classic.WithTemplatesDir(dir))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	return site.New(
		site.WithAugmenter(fixedAugmenter(dir)),
		site.WithRegistry(registry),
	)
}

func TestRun_EndToEnd(t *testing.T) {
	dir := testsupport.WriteSiteFixture(t, testsupport.SiteFixture{
		Document:  fixtureDocument(),
		Icons:     map[string]string{"icon.svg": "<svg>A</svg>"},
		Templates: fixtureTemplates(),
	})
	outDir := t.TempDir()

	gen := newFixtureGenerator(t, dir)
	req := site.Request{
		Source:    portfolio.SourceFromFile(filepath.Join(dir, "portfolio.json")),
		OutputDir: outDir,
	}

	result, err := gen.Run(context.Background(), req)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if len(result.Paths) != 2 {
		t.Fatalf("expected two written pages, got %v", result.Paths)
	}

	index, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("read index.html: %v", err)
	}
	for _, want := range []string{"<h1>Ada</h1>", "<svg>A</svg>", "<p>2026</p>"} {
		if !bytes.Contains(index, []byte(want)) {
			t.Fatalf("index.html missing %q:\n%s", want, index)
		}
	}
	if _, err := os.Stat(filepath.Join(outDir, "resume.html")); err != nil {
		t.Fatalf("resume.html not written: %v", err)
	}
}

func TestRun_GoldenOutput(t *testing.T) {
	dir := testsupport.WriteSiteFixture(t, testsupport.SiteFixture{
		Document: map[string]any{
			"name":    "Ada Lovelace",
			"tagline": "Analyst & Engineer",
			"founded": 1832,
			"social_links": []any{
				map[string]any{"name": "github", "url": "https://github.com/ada", "svg_path": "icon.svg"},
			},
		},
		Icons: map[string]string{"icon.svg": "<svg>A</svg>"},
		Templates: map[string]string{
			"index_template.html":  `<h1>{{ name }}</h1><p>{{ tagline }}</p>{% for link in social_links %}{{ link.svg_data|safe }}{% endfor %}<footer>© {{ current_year }} ({{ founded }})</footer>`,
			"resume_template.html": `<h1>{{ name }} resume</h1><footer>© {{ current_year }}</footer>`,
		},
	})
	outDir := t.TempDir()

	gen := newFixtureGenerator(t, dir)
	doc := testsupport.LoadDocument(t, filepath.Join(dir, "portfolio.json"))
	if _, err := gen.Run(testsupport.Context(), site.Request{Document: &doc, OutputDir: outDir}); err != nil {
		t.Fatalf("run: %v", err)
	}

	pages := map[string]string{
		"index.html":  "testdata/index_golden.html",
		"resume.html": "testdata/resume_golden.html",
	}
	for page, golden := range pages {
		got, err := os.ReadFile(filepath.Join(outDir, page))
		if err != nil {
			t.Fatalf("read %s: %v", page, err)
		}
		if testsupport.WriteMaybeGolden(t, golden, got) {
			continue
		}
		want := testsupport.MustReadGolden(t, golden)
		if diff := testsupport.CompareGolden(string(want), string(got)); diff != "" {
			t.Fatalf("%s mismatch (-want +got):\n%s", page, diff)
		}
	}
}

func TestRun_Deterministic(t *testing.T) {
	dir := testsupport.WriteSiteFixture(t, testsupport.SiteFixture{
		Document:  fixtureDocument(),
		Icons:     map[string]string{"icon.svg": "<svg>A</svg>"},
		Templates: fixtureTemplates(),
	})
	outDir := t.TempDir()

	gen := newFixtureGenerator(t, dir)
	req := site.Request{
		Source:    portfolio.SourceFromFile(filepath.Join(dir, "portfolio.json")),
		OutputDir: outDir,
	}

	if _, err := gen.Run(context.Background(), req); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("read first index: %v", err)
	}

	if _, err := gen.Run(context.Background(), req); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second, err := os.ReadFile(filepath.Join(outDir, "index.html"))
	if err != nil {
		t.Fatalf("read second index: %v", err)
	}

	if !bytes.Equal(first, second) {
		t.Fatal("successive runs produced different output")
	}
}

func TestRun_MissingIconWritesNothing(t *testing.T) {
	doc := fixtureDocument()
	dir := testsupport.WriteSiteFixture(t, testsupport.SiteFixture{
		Document:  doc,
		Templates: fixtureTemplates(),
		// icon.svg deliberately absent
	})
	outDir := t.TempDir()

	gen := newFixtureGenerator(t, dir)
	_, err := gen.Run(context.Background(), site.Request{
		Source:    portfolio.SourceFromFile(filepath.Join(dir, "portfolio.json")),
		OutputDir: outDir,
	})
	if !errors.Is(err, portfolio.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if _, statErr := os.Stat(filepath.Join(outDir, "index.html")); !os.IsNotExist(statErr) {
		t.Fatal("index.html written despite augmentation failure")
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "resume.html")); !os.IsNotExist(statErr) {
		t.Fatal("resume.html written despite augmentation failure")
	}
}

func TestRun_MissingTemplateWritesNothing(t *testing.T) {
	dir := testsupport.WriteSiteFixture(t, testsupport.SiteFixture{
		Document: map[string]any{"name": "Ada"},
		Templates: map[string]string{
			"index_template.html": `<h1>{{ name }}</h1>`,
			// resume_template.html deliberately absent
		},
	})
	outDir := t.TempDir()

	gen := newFixtureGenerator(t, dir)
	_, err := gen.Run(context.Background(), site.Request{
		Source:    portfolio.SourceFromFile(filepath.Join(dir, "portfolio.json")),
		OutputDir: outDir,
	})
	if !errors.Is(err, render.ErrTemplateNotFound) {
		t.Fatalf("expected ErrTemplateNotFound, got %v", err)
	}

	// Index rendered fine, but nothing may be written when any page fails.
	if _, statErr := os.Stat(filepath.Join(outDir, "index.html")); !os.IsNotExist(statErr) {
		t.Fatal("index.html written despite resume failure")
	}
}

func TestGenerate_MissingDocument(t *testing.T) {
	gen := site.New()
	_, err := gen.Generate(context.Background(), site.Request{
		Source: portfolio.SourceFromFile(filepath.Join(t.TempDir(), "absent.json")),
	})
	if !errors.Is(err, portfolio.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGenerate_MalformedDocument(t *testing.T) {
	doc := portfolio.MustNewDocument(portfolio.SourceFromFile("portfolio.json"), []byte("{broken"))

	gen := site.New()
	_, err := gen.Generate(context.Background(), site.Request{Document: &doc})
	if !errors.Is(err, portfolio.ErrMalformedInput) {
		t.Fatalf("expected ErrMalformedInput, got %v", err)
	}
}

func TestGenerate_RequiresSourceOrDocument(t *testing.T) {
	if _, err := site.New().Generate(context.Background(), site.Request{}); err == nil {
		t.Fatal("expected error without source or document")
	}
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     int
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls++
	return s.selection, s.err
}

func TestGenerate_ResolvesTheme(t *testing.T) {
	manifest := &theme.Manifest{
		Name:   "acme",
		Tokens: map[string]string{"brand": "#123456"},
		Variants: map[string]theme.Variant{
			"dark": {Tokens: map[string]string{"brand": "#654321"}},
		},
	}
	selector := &stubThemeSelector{
		selection: &theme.Selection{Theme: "acme", Variant: "dark", Manifest: manifest},
	}

	renderer, err := classic.New(classic.WithTemplatesFS(fstest.MapFS{
		"index_template.html": &fstest.MapFile{Data: []byte(`{{ theme.name }}:{{ theme.css_vars|safe }}`)},
	}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	doc := portfolio.MustNewDocument(portfolio.SourceFromFile("portfolio.json"), []byte(`{"name":"Ada"}`))
	gen := site.New(
		site.WithRegistry(registry),
		site.WithThemeSelector(selector),
	)

	rendered, err := gen.Generate(context.Background(), site.Request{
		Document:     &doc,
		Pages:        []model.Page{{Name: "index", Template: "index_template.html", Output: "index.html"}},
		ThemeName:    "acme",
		ThemeVariant: "dark",
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if selector.calls != 1 {
		t.Fatalf("expected selector called once, got %d", selector.calls)
	}
	if len(rendered) != 1 {
		t.Fatalf("expected one page, got %d", len(rendered))
	}

	html := string(rendered[0].Output)
	if !strings.Contains(html, "acme:") {
		t.Fatalf("theme name missing: %s", html)
	}
	// Variant token overrides the base manifest token.
	if !strings.Contains(html, "#654321") {
		t.Fatalf("variant token not applied: %s", html)
	}
}

func TestGenerate_NoThemeWithoutName(t *testing.T) {
	selector := &stubThemeSelector{}
	doc := portfolio.MustNewDocument(portfolio.SourceFromFile("portfolio.json"), []byte(`{"name":"Ada"}`))

	renderer, err := classic.New(classic.WithTemplatesFS(fstest.MapFS{
		"index_template.html": &fstest.MapFile{Data: []byte(`{% if theme %}themed{% else %}plain{% endif %}`)},
	}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	registry := render.NewRegistry()
	registry.MustRegister(renderer)

	gen := site.New(site.WithRegistry(registry), site.WithThemeSelector(selector))
	rendered, err := gen.Generate(context.Background(), site.Request{
		Document: &doc,
		Pages:    []model.Page{{Name: "index", Template: "index_template.html", Output: "index.html"}},
	})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if selector.calls != 0 {
		t.Fatalf("selector called without theme name: %d", selector.calls)
	}
	if string(rendered[0].Output) != "plain" {
		t.Fatalf("unexpected output: %s", rendered[0].Output)
	}
}
