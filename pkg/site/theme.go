package site

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-portfolio/pkg/render"
)

// resolveTheme turns a theme/variant request into the renderer-facing
// ThemeConfig: variant tokens and templates overlay the base manifest, CSS
// variables are derived from the merged tokens, and asset lookups resolve
// against the manifest prefix.
func (g *Generator) resolveTheme(name, variant string) (*render.ThemeConfig, error) {
	if g.themeSelector == nil || strings.TrimSpace(name) == "" {
		return nil, nil
	}

	selection, err := g.themeSelector.Select(name, variant)
	if err != nil {
		return nil, fmt.Errorf("site: select theme %q: %w", name, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil, fmt.Errorf("site: theme %q resolved to empty selection", name)
	}

	manifest := selection.Manifest

	tokens := mergeStringMaps(manifest.Tokens, nil)
	partials := mergeStringMaps(g.themeFallbacks, manifest.Templates)
	assets := mergeStringMaps(manifest.Assets.Files, nil)
	prefix := manifest.Assets.Prefix

	if v, ok := manifest.Variants[selection.Variant]; ok {
		tokens = mergeStringMaps(tokens, v.Tokens)
		partials = mergeStringMaps(partials, v.Templates)
		assets = mergeStringMaps(assets, v.Assets.Files)
		if v.Assets.Prefix != "" {
			prefix = v.Assets.Prefix
		}
	}

	cssVars := make(map[string]string, len(tokens))
	for key, value := range tokens {
		cssVars["--"+key] = value
	}

	cfg := &render.ThemeConfig{
		Theme:    selection.Theme,
		Variant:  selection.Variant,
		Tokens:   tokens,
		CSSVars:  cssVars,
		Partials: partials,
		AssetURL: assetResolver(prefix, assets),
	}
	return cfg, nil
}

func assetResolver(prefix string, files map[string]string) func(string) string {
	return func(name string) string {
		file, ok := files[name]
		if !ok {
			return ""
		}
		if prefix == "" {
			return file
		}
		return strings.TrimSuffix(prefix, "/") + "/" + strings.TrimPrefix(file, "/")
	}
}

func mergeStringMaps(base, overlay map[string]string) map[string]string {
	out := make(map[string]string, len(base)+len(overlay))
	for key, value := range base {
		out[key] = value
	}
	for key, value := range overlay {
		out[key] = value
	}
	return out
}
