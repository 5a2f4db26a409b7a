// Package augment mutates a decoded portfolio document before rendering:
// it stamps the current UTC year, inlines SVG icon markup referenced by
// social link entries, and optionally converts markdown prose fields to
// HTML counterparts.
package augment

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/goliatone/go-portfolio/pkg/portfolio"
)

// CurrentYearKey is the document field the augmenter always overwrites.
const CurrentYearKey = "current_year"

// Clock supplies the time used to derive current_year. Injectable so tests
// can pin a date.
type Clock func() time.Time

// Option customises the augmenter before construction.
type Option func(*Augmenter)

// WithClock overrides the time source. Nil clocks are ignored.
func WithClock(clock Clock) Option {
	return func(a *Augmenter) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// WithIconFS supplies the filesystem used to resolve svg_path references.
// Paths are interpreted relative to the filesystem root (a leading "./" is
// stripped); absolute paths are invalid under fs.FS semantics. Defaults to
// the process working directory.
func WithIconFS(fsys fs.FS) Option {
	return func(a *Augmenter) {
		if fsys != nil {
			a.icons = fsys
		}
	}
}

// WithIconSanitizer enables the bluemonday SVG policy on inlined icon
// markup. Off by default so icon files round-trip byte for byte.
func WithIconSanitizer() Option {
	return func(a *Augmenter) {
		a.sanitize = true
	}
}

// WithMarkdownFields names document keys whose string values should be
// rendered to HTML under "<key>_html". Absent keys are skipped.
func WithMarkdownFields(keys ...string) Option {
	return func(a *Augmenter) {
		for _, key := range keys {
			trimmed := strings.TrimSpace(key)
			if trimmed == "" {
				continue
			}
			a.markdownFields = append(a.markdownFields, trimmed)
		}
	}
}

// Augmenter applies the pre-render document mutations. The zero value is not
// usable; construct with New.
type Augmenter struct {
	clock          Clock
	icons          fs.FS
	sanitize       bool
	markdownFields []string
}

// New constructs an Augmenter applying any provided options.
func New(options ...Option) *Augmenter {
	a := &Augmenter{
		clock: time.Now,
		icons: os.DirFS("."),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(a)
	}
	return a
}

// Augment mutates the document in place. The year stamp and icon inlining
// are independent of each other; any icon read failure aborts with an error
// so the caller never writes partial output.
func (a *Augmenter) Augment(ctx context.Context, data map[string]any) error {
	if data == nil {
		return errors.New("augment: document is nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	data[CurrentYearKey] = a.clock().UTC().Year()

	if err := a.inlineIcons(ctx, data); err != nil {
		return err
	}
	return a.renderMarkdownFields(data)
}

func (a *Augmenter) inlineIcons(ctx context.Context, data map[string]any) error {
	links, ok := data[portfolio.SocialLinksKey].([]any)
	if !ok {
		return nil
	}

	for _, entry := range links {
		if err := ctx.Err(); err != nil {
			return err
		}

		link, ok := entry.(map[string]any)
		if !ok {
			continue
		}
		path, ok := link[portfolio.SVGPathKey].(string)
		if !ok {
			continue
		}

		markup, err := a.readIcon(path)
		if err != nil {
			return err
		}
		if a.sanitize {
			markup = sanitizeIconMarkup(markup)
		}
		link[portfolio.SVGDataKey] = markup
	}
	return nil
}

func (a *Augmenter) readIcon(path string) (string, error) {
	name := strings.TrimPrefix(strings.TrimSpace(path), "./")
	if name == "" {
		return "", fmt.Errorf("augment: empty svg_path: %w", portfolio.ErrMalformedInput)
	}

	data, err := fs.ReadFile(a.icons, name)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("augment: icon %s: %w", path, portfolio.ErrNotFound)
		}
		return "", fmt.Errorf("augment: read icon %s: %v: %w", path, err, portfolio.ErrIOFailure)
	}
	return string(data), nil
}
