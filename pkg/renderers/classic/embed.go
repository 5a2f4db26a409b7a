package classic

import (
	"embed"
	"io/fs"
)

//go:embed templates/*.html
var embeddedTemplates embed.FS

// TemplatesFS exposes the bundled page templates for consumers that want the
// built-in rendering out of the box, or as a starting point for their own
// template directory.
func TemplatesFS() fs.FS {
	sub, err := fs.Sub(embeddedTemplates, "templates")
	if err != nil {
		// The embed directive guarantees the subdirectory exists.
		panic(err)
	}
	return sub
}
