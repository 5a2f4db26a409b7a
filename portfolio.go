package goportfolio

import (
	"context"
	"io/fs"

	theme "github.com/goliatone/go-theme"

	internalloader "github.com/goliatone/go-portfolio/internal/portfolio/loader"
	"github.com/goliatone/go-portfolio/pkg/augment"
	"github.com/goliatone/go-portfolio/pkg/model"
	"github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/render"
	"github.com/goliatone/go-portfolio/pkg/site"
)

// Page binds a logical page name to its template and output file; alias
// exported via the root package for convenience.
type Page = model.Page

// RenderOptions describes per-request overrides renderers can use; the
// resolved theme configuration travels here.
type RenderOptions = render.RenderOptions

// Request aliases the site request so quick-start callers only import the
// root package.
type Request = site.Request

// Result aliases the site result.
type Result = site.Result

// NewLoader constructs a document loader. Pass WithLoaderFS to resolve
// fs-kind sources.
func NewLoader(options ...internalloader.Option) portfolio.Loader {
	return internalloader.New(options...)
}

// WithLoaderFS supplies the filesystem used for SourceKindFS locations.
func WithLoaderFS(fsys fs.FS) internalloader.Option {
	return internalloader.WithFS(fsys)
}

// NewAugmenter exposes the augmenter constructor from the top-level module.
func NewAugmenter(options ...augment.Option) *augment.Augmenter {
	return augment.New(options...)
}

// NewGenerator exposes the site generator constructor from the top-level
// module.
func NewGenerator(options ...site.Option) *site.Generator {
	return site.New(options...)
}

// GenerateSite loads the portfolio document, augments it, renders the
// default pages, and writes them to outputDir. It is the simplest entry
// point for callers that just want the two HTML files on disk.
func GenerateSite(ctx context.Context, source portfolio.Source, outputDir string, options ...site.Option) (site.Result, error) {
	gen := site.New(options...)
	return gen.Run(ctx, site.Request{
		Source:    source,
		OutputDir: outputDir,
	})
}

// WithThemeSelector passes a go-theme selector through to the generator so
// theme/variant choices can be resolved ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) site.Option {
	return site.WithThemeSelector(selector)
}

// WithThemeFallbacks forwards fallback partials used when a resolved theme
// does not supply its own.
func WithThemeFallbacks(fallbacks map[string]string) site.Option {
	return site.WithThemeFallbacks(fallbacks)
}
