package loader_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/goliatone/go-portfolio/internal/portfolio/loader"
	"github.com/goliatone/go-portfolio/pkg/portfolio"
)

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "portfolio.json")
	if err := os.WriteFile(path, []byte(`{"name":"Ada"}`), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	doc, err := loader.New().Load(context.Background(), portfolio.SourceFromFile(path))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if string(doc.Raw()) != `{"name":"Ada"}` {
		t.Fatalf("raw mismatch: %s", doc.Raw())
	}
	if doc.Source().Kind() != portfolio.SourceKindFile {
		t.Fatalf("source kind mismatch: %s", doc.Source().Kind())
	}
}

func TestLoad_FileMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "absent.json")

	_, err := loader.New().Load(context.Background(), portfolio.SourceFromFile(path))
	if !errors.Is(err, portfolio.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_FS(t *testing.T) {
	fsys := fstest.MapFS{
		"data/portfolio.json": &fstest.MapFile{Data: []byte(`{"name":"Ada"}`)},
	}

	doc, err := loader.New(loader.WithFS(fsys)).Load(context.Background(), portfolio.SourceFromFS("data/portfolio.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if doc.Location() != "data/portfolio.json" {
		t.Fatalf("location mismatch: %s", doc.Location())
	}
}

func TestLoad_FSMissing(t *testing.T) {
	_, err := loader.New(loader.WithFS(fstest.MapFS{})).Load(context.Background(), portfolio.SourceFromFS("absent.json"))
	if !errors.Is(err, portfolio.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLoad_FSNotConfigured(t *testing.T) {
	_, err := loader.New().Load(context.Background(), portfolio.SourceFromFS("portfolio.json"))
	if err == nil {
		t.Fatal("expected error when filesystem is not configured")
	}
}

func TestLoad_NilSource(t *testing.T) {
	if _, err := loader.New().Load(context.Background(), nil); err == nil {
		t.Fatal("expected error for nil source")
	}
}

func TestLoad_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := loader.New().Load(ctx, portfolio.SourceFromFile("portfolio.json"))
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
