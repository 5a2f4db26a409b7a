// Package testsupport provides fixture helpers shared by the package test
// suites: temp site directories, document loading, and golden files.
package testsupport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-portfolio/pkg/portfolio"
)

// LoadDocument reads a fixture and builds a portfolio.Document using a file
// source. Testing helpers fail fast to keep contract tests concise.
func LoadDocument(t *testing.T, path string) portfolio.Document {
	t.Helper()

	doc, err := LoadDocumentFromPath(path)
	if err != nil {
		t.Fatalf("load document: %v", err)
	}
	return doc
}

// LoadDocumentFromPath returns a Document without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadDocumentFromPath(path string) (portfolio.Document, error) {
	if path == "" {
		return portfolio.Document{}, errors.New("testsupport: document path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return portfolio.Document{}, fmt.Errorf("testsupport: read document: %w", err)
	}
	doc, err := portfolio.NewDocument(portfolio.SourceFromFile(path), data)
	if err != nil {
		return portfolio.Document{}, fmt.Errorf("testsupport: new document: %w", err)
	}
	return doc, nil
}

// SiteFixture describes the files WriteSiteFixture materialises into a temp
// directory.
type SiteFixture struct {
	// Document is marshalled to portfolio.json. Nil skips the document.
	Document map[string]any
	// Icons maps relative paths to SVG markup.
	Icons map[string]string
	// Templates maps template file names to contents.
	Templates map[string]string
}

// WriteSiteFixture lays out a complete site input tree under a fresh
// t.TempDir and returns its root.
func WriteSiteFixture(t *testing.T, fixture SiteFixture) string {
	t.Helper()

	dir := t.TempDir()

	if fixture.Document != nil {
		payload, err := json.MarshalIndent(fixture.Document, "", "  ")
		if err != nil {
			t.Fatalf("marshal document: %v", err)
		}
		writeFixtureFile(t, filepath.Join(dir, "portfolio.json"), payload)
	}
	for name, markup := range fixture.Icons {
		writeFixtureFile(t, filepath.Join(dir, name), []byte(markup))
	}
	for name, content := range fixture.Templates {
		writeFixtureFile(t, filepath.Join(dir, name), []byte(content))
	}

	return dir
}

func writeFixtureFile(t *testing.T, path string, data []byte) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir fixture dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
