// Package writer persists rendered pages. Writes go through a temp file
// plus rename so a failed run never leaves a truncated page behind and a
// previously generated output survives intact.
package writer

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"

	"github.com/goliatone/go-portfolio/pkg/portfolio"
)

// WriteFile writes content to path atomically, creating parent directories
// as needed. Failures wrap portfolio.ErrIOFailure.
func WriteFile(path string, content []byte) error {
	if path == "" {
		return errors.New("writer: path is required")
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("writer: create %s: %v: %w", dir, err, portfolio.ErrIOFailure)
		}
	}

	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return fmt.Errorf("writer: write %s: %v: %w", path, err, portfolio.ErrIOFailure)
	}
	return nil
}
