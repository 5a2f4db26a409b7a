// Package classic renders portfolio pages as standalone HTML documents
// using the bundled template set (or a caller-supplied one).
package classic

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/goliatone/go-portfolio/pkg/model"
	"github.com/goliatone/go-portfolio/pkg/render"
	rendertemplate "github.com/goliatone/go-portfolio/pkg/render/template"
	gotemplate "github.com/goliatone/go-portfolio/pkg/render/template/gotemplate"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

type Renderer struct {
	templates rendertemplate.TemplateRenderer
}

// New constructs the classic renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := gotemplate.New(
			gotemplate.WithFS(cfg.templateFS),
			gotemplate.WithExtension(".html"),
		)
		if err != nil {
			return nil, fmt.Errorf("classic renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{templates: renderer}, nil
}

func (r *Renderer) Name() string {
	return "classic"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render executes the page template against the augmented document. The
// document's keys surface directly as template variables; theme context, when
// present, is exposed under "theme" alongside an "asset_url" resolver.
func (r *Renderer) Render(_ context.Context, page model.Page, data map[string]any, options render.RenderOptions) ([]byte, error) {
	if r.templates == nil {
		return nil, fmt.Errorf("classic renderer: template renderer is nil")
	}
	if page.Template == "" {
		return nil, fmt.Errorf("classic renderer: page %q has no template", page.Name)
	}

	viewContext := make(map[string]any, len(data)+3)
	for key, value := range data {
		viewContext[key] = value
	}
	for key, value := range options.Globals {
		if _, exists := viewContext[key]; exists {
			continue
		}
		viewContext[key] = value
	}
	if options.Theme != nil {
		viewContext["theme"] = themeContext(options.Theme)
		viewContext["asset_url"] = options.Theme.AssetURL
	}

	result, err := r.templates.RenderTemplate(page.Template, viewContext)
	if err != nil {
		return nil, fmt.Errorf("classic renderer: render page %q: %w", page.Name, err)
	}
	return []byte(result), nil
}

func themeContext(cfg *render.ThemeConfig) map[string]any {
	return map[string]any{
		"name":     cfg.Theme,
		"variant":  cfg.Variant,
		"tokens":   cfg.Tokens,
		"css_vars": cfg.CSSVars,
		"partials": cfg.Partials,
	}
}
