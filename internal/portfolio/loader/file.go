package loader

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goliatone/go-portfolio/pkg/portfolio"
)

func loadFile(ctx context.Context, path string) ([]byte, error) {
	if path == "" {
		return nil, errors.New("portfolio loader: file path is required")
	}
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(abs)
	if err != nil {
		return nil, classifyReadError(path, err)
	}
	return data, nil
}

func classifyReadError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("portfolio loader: %s: %w", path, portfolio.ErrNotFound)
	}
	return fmt.Errorf("portfolio loader: read %s: %v: %w", path, err, portfolio.ErrIOFailure)
}
