package render

import (
	"context"

	"github.com/goliatone/go-portfolio/pkg/model"
)

// Renderer converts an augmented portfolio document into the byte
// representation of a single page (HTML for the default site renderer).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, page model.Page, data map[string]any, options RenderOptions) ([]byte, error)
}
