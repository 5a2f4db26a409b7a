package loader

import (
	"context"
	"errors"
	"io/fs"

	"github.com/goliatone/go-portfolio/pkg/portfolio"
)

// Loader implements portfolio.Loader by delegating to file or fs.FS
// strategies. Construction helpers live in the top-level portfolio package.
type Loader struct {
	fs fs.FS
}

// Ensure the implementation satisfies the public interface.
var _ portfolio.Loader = (*Loader)(nil)

// Option customises the loader before construction.
type Option func(*Loader)

// WithFS supplies the filesystem used to resolve SourceKindFS locations.
func WithFS(fsys fs.FS) Option {
	return func(l *Loader) {
		l.fs = fsys
	}
}

// New constructs a Loader from the provided options.
func New(options ...Option) *Loader {
	l := &Loader{}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(l)
	}
	return l
}

// Load fetches a document from the provided source and wraps it in a
// Document. Missing files surface as portfolio.ErrNotFound, other read
// failures as portfolio.ErrIOFailure.
func (l *Loader) Load(ctx context.Context, src portfolio.Source) (portfolio.Document, error) {
	if src == nil {
		return portfolio.Document{}, errors.New("portfolio loader: source is nil")
	}

	var (
		data []byte
		err  error
	)

	switch src.Kind() {
	case portfolio.SourceKindFile:
		data, err = loadFile(ctx, src.Location())
	case portfolio.SourceKindFS:
		data, err = loadFromFS(ctx, l.fs, src.Location())
	default:
		err = errors.New("portfolio loader: unsupported source kind")
	}
	if err != nil {
		return portfolio.Document{}, err
	}

	return portfolio.NewDocument(src, data)
}
