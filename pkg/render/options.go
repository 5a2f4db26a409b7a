package render

// RenderOptions describe per-request data that renderers can use to
// customise their output without mutating the augmented document.
type RenderOptions struct {
	// Theme carries the resolved theme configuration when the orchestrator
	// was given a theme selector and the request named a theme. Nil means
	// render without theme context.
	Theme *ThemeConfig

	// Globals are merged into the template context under their own keys,
	// after the document so they cannot shadow document fields.
	Globals map[string]any
}

// ThemeConfig is the renderer-facing projection of a go-theme selection:
// base and variant tokens merged, CSS variables derived, and asset lookups
// resolved against the manifest prefix.
type ThemeConfig struct {
	Theme   string
	Variant string
	// Tokens holds the merged design tokens (variant over base).
	Tokens map[string]string
	// CSSVars maps "--token" names to values, ready to drop into a style
	// block.
	CSSVars map[string]string
	// Partials maps logical partial names to template paths, including any
	// configured fallbacks.
	Partials map[string]string
	// AssetURL resolves a logical asset name to a URL. Never nil when the
	// config itself is non-nil.
	AssetURL func(name string) string
}
