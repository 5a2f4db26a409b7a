// Package site coordinates the full pipeline from portfolio document to
// written HTML pages: load, augment, render every page, then write every
// page. All rendering completes before the first write, so a failing
// template never clobbers existing output.
package site

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	theme "github.com/goliatone/go-theme"

	internalloader "github.com/goliatone/go-portfolio/internal/portfolio/loader"
	"github.com/goliatone/go-portfolio/internal/writer"
	"github.com/goliatone/go-portfolio/pkg/augment"
	"github.com/goliatone/go-portfolio/pkg/model"
	"github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/render"
	"github.com/goliatone/go-portfolio/pkg/renderers/classic"
)

const defaultRendererName = "classic"

// Generator coordinates loading, augmentation, rendering, and output
// writing. It applies sensible defaults (classic renderer, embedded
// templates) while remaining open to dependency injection.
type Generator struct {
	loader          portfolio.Loader
	augmenter       *augment.Augmenter
	registry        *render.Registry
	defaultRenderer string
	pages           []model.Page
	themeSelector   theme.ThemeSelector
	themeFallbacks  map[string]string
	writeFile       func(path string, content []byte) error
	initialiseErr   error
	defaultsApplied bool
}

// New constructs a Generator applying any provided options. Missing
// dependencies are initialised with the built-in implementations so callers
// can start with a single constructor call.
func New(options ...Option) *Generator {
	g := &Generator{
		defaultRenderer: defaultRendererName,
		writeFile:       writer.WriteFile,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(g)
	}
	g.applyDefaults()
	return g
}

// Request describes the inputs required to generate a portfolio site.
type Request struct {
	// Source identifies where the portfolio document lives. Optional when
	// Document is supplied.
	Source portfolio.Source

	// Document allows callers to bypass the loader when they already have a
	// raw payload.
	Document *portfolio.Document

	// Pages overrides the default index/resume pair.
	Pages []model.Page

	// Renderer names the renderer to use. If empty, the generator falls
	// back to the configured default renderer.
	Renderer string

	// OutputDir is where Run writes the rendered pages. Empty means the
	// working directory.
	OutputDir string

	// ThemeName and ThemeVariant select a theme when a selector is
	// configured. Both empty means no theme context.
	ThemeName    string
	ThemeVariant string

	// RenderOptions carries per-request renderer instructions. The resolved
	// theme config is attached on top of whatever the caller supplies.
	RenderOptions render.RenderOptions
}

// RenderedPage pairs a page with its rendered bytes.
type RenderedPage struct {
	Page   model.Page
	Output []byte
}

// Result reports what a Run produced.
type Result struct {
	Pages []RenderedPage
	// Paths lists the written files in page order.
	Paths []string
}

// Generate executes load → augment → render for every requested page and
// returns the rendered bytes without writing anything.
func (g *Generator) Generate(ctx context.Context, req Request) ([]RenderedPage, error) {
	if ctx == nil {
		return nil, errors.New("site: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := g.initialiseErr; err != nil {
		return nil, err
	}
	if !g.defaultsApplied {
		g.applyDefaults()
		if err := g.initialiseErr; err != nil {
			return nil, err
		}
	}

	doc, err := g.resolveDocument(ctx, req)
	if err != nil {
		return nil, err
	}

	data, err := doc.Decode()
	if err != nil {
		return nil, err
	}

	if err := g.augmenter.Augment(ctx, data); err != nil {
		return nil, fmt.Errorf("site: augment document: %w", err)
	}

	renderer, err := g.rendererFor(req.Renderer)
	if err != nil {
		return nil, err
	}

	options := req.RenderOptions
	if options.Theme == nil {
		cfg, err := g.resolveTheme(req.ThemeName, req.ThemeVariant)
		if err != nil {
			return nil, err
		}
		options.Theme = cfg
	}

	pages := req.Pages
	if len(pages) == 0 {
		pages = g.pagesOrDefault()
	}

	out := make([]RenderedPage, 0, len(pages))
	for _, page := range pages {
		output, err := renderer.Render(ctx, page, data, options)
		if err != nil {
			return nil, fmt.Errorf("site: render page %q: %w", page.Name, err)
		}
		out = append(out, RenderedPage{Page: page, Output: output})
	}
	return out, nil
}

// Run renders every page, then writes each one to the request's output
// directory. No file is touched unless every page rendered successfully.
func (g *Generator) Run(ctx context.Context, req Request) (Result, error) {
	rendered, err := g.Generate(ctx, req)
	if err != nil {
		return Result{}, err
	}

	result := Result{Pages: rendered}
	for _, page := range rendered {
		path := filepath.Join(req.OutputDir, page.Page.Output)
		if err := g.writeFile(path, page.Output); err != nil {
			return Result{}, fmt.Errorf("site: write page %q: %w", page.Page.Name, err)
		}
		result.Paths = append(result.Paths, path)
	}
	return result, nil
}

func (g *Generator) resolveDocument(ctx context.Context, req Request) (portfolio.Document, error) {
	if req.Document != nil {
		return *req.Document, nil
	}
	if req.Source == nil {
		return portfolio.Document{}, errors.New("site: source or document is required")
	}
	doc, err := g.loader.Load(ctx, req.Source)
	if err != nil {
		return portfolio.Document{}, fmt.Errorf("site: load document: %w", err)
	}
	return doc, nil
}

func (g *Generator) rendererFor(name string) (render.Renderer, error) {
	if g.registry == nil {
		return nil, errors.New("site: renderer registry is nil")
	}

	target := name
	if target == "" {
		target = g.defaultRenderer
	}

	if target != "" {
		renderer, err := g.registry.Get(target)
		if err == nil {
			return renderer, nil
		}
		if name != "" {
			return nil, fmt.Errorf("site: renderer %q: %w", name, err)
		}
	}

	names := g.registry.List()
	if len(names) == 0 {
		return nil, errors.New("site: no renderers registered")
	}

	renderer, err := g.registry.Get(names[0])
	if err != nil {
		return nil, fmt.Errorf("site: renderer %q: %w", names[0], err)
	}
	return renderer, nil
}

func (g *Generator) pagesOrDefault() []model.Page {
	if len(g.pages) > 0 {
		return g.pages
	}
	return model.DefaultPages()
}

func (g *Generator) applyDefaults() {
	if g.defaultsApplied {
		return
	}

	if g.loader == nil {
		g.loader = internalloader.New()
	}
	if g.augmenter == nil {
		g.augmenter = augment.New()
	}
	if g.registry == nil {
		g.registry = render.NewRegistry()
		renderer, err := classic.New()
		if err != nil {
			g.initialiseErr = fmt.Errorf("site: default renderer: %w", err)
		} else {
			g.registry.MustRegister(renderer)
		}
	}
	if g.defaultRenderer == "" {
		g.defaultRenderer = defaultRendererName
	}

	g.defaultsApplied = true
}
