package site

import (
	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-portfolio/pkg/augment"
	"github.com/goliatone/go-portfolio/pkg/model"
	"github.com/goliatone/go-portfolio/pkg/portfolio"
	"github.com/goliatone/go-portfolio/pkg/render"
)

// Option customises the generator configuration.
type Option func(*Generator)

// WithLoader injects a custom portfolio document loader.
func WithLoader(loader portfolio.Loader) Option {
	return func(g *Generator) {
		g.loader = loader
	}
}

// WithAugmenter injects a custom augmenter (clock, icon filesystem,
// sanitizer, markdown fields).
func WithAugmenter(augmenter *augment.Augmenter) Option {
	return func(g *Generator) {
		g.augmenter = augmenter
	}
}

// WithRegistry injects a renderer registry.
func WithRegistry(registry *render.Registry) Option {
	return func(g *Generator) {
		g.registry = registry
	}
}

// WithDefaultRenderer overrides the renderer used when a request omits an
// explicit Renderer field.
func WithDefaultRenderer(name string) Option {
	return func(g *Generator) {
		g.defaultRenderer = name
	}
}

// WithPages overrides the default index/resume page pair for every request
// that does not carry its own page list.
func WithPages(pages ...model.Page) Option {
	return func(g *Generator) {
		if len(pages) == 0 {
			return
		}
		g.pages = append(g.pages, pages...)
	}
}

// WithThemeSelector registers a go-theme selector so requests can resolve
// theme/variant choices ahead of rendering.
func WithThemeSelector(selector theme.ThemeSelector) Option {
	return func(g *Generator) {
		g.themeSelector = selector
	}
}

// WithThemeFallbacks supplies partial paths used when a resolved theme does
// not provide its own.
func WithThemeFallbacks(fallbacks map[string]string) Option {
	return func(g *Generator) {
		if len(fallbacks) == 0 {
			return
		}
		if g.themeFallbacks == nil {
			g.themeFallbacks = make(map[string]string, len(fallbacks))
		}
		for key, value := range fallbacks {
			g.themeFallbacks[key] = value
		}
	}
}
