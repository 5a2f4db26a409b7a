package goportfolio

import (
	"io/fs"

	"github.com/goliatone/go-portfolio/pkg/renderers/classic"
)

// EmbeddedTemplates exposes the built-in classic renderer templates so
// callers can reuse or extend them without importing the renderer package
// directly.
func EmbeddedTemplates() fs.FS {
	return classic.TemplatesFS()
}
