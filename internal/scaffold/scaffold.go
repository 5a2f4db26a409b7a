// Package scaffold builds a starter portfolio.json (plus template copies)
// through an interactive prompt flow.
package scaffold

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goliatone/go-portfolio/internal/writer"
	"github.com/goliatone/go-portfolio/pkg/portfolio"
)

// DocumentName is the file the scaffold writes into the target directory.
const DocumentName = "portfolio.json"

// Scaffolder walks the prompt flow and persists the resulting document.
type Scaffolder struct {
	driver    PromptDriver
	templates fs.FS
}

// New constructs a Scaffolder. A nil driver falls back to the survey-backed
// terminal driver; templates may be nil to skip template copies.
func New(driver PromptDriver, templates fs.FS) *Scaffolder {
	if driver == nil {
		driver = NewSurveyDriver()
	}
	return &Scaffolder{driver: driver, templates: templates}
}

// Run prompts for the portfolio basics and writes portfolio.json plus the
// default templates into targetDir. Existing files are not overwritten.
func (s *Scaffolder) Run(ctx context.Context, targetDir string) error {
	if targetDir == "" {
		targetDir = "."
	}

	docPath := filepath.Join(targetDir, DocumentName)
	if _, err := os.Stat(docPath); err == nil {
		return fmt.Errorf("scaffold: %s already exists", docPath)
	}

	doc, err := s.collect(ctx)
	if err != nil {
		return err
	}

	payload, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("scaffold: encode document: %w", err)
	}
	payload = append(payload, '\n')

	if err := writer.WriteFile(docPath, payload); err != nil {
		return err
	}

	return s.copyTemplates(targetDir)
}

func (s *Scaffolder) collect(ctx context.Context) (map[string]any, error) {
	doc := map[string]any{}

	name, err := s.driver.Input(ctx, InputConfig{Message: "Your name:"})
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(name) == "" {
		return nil, errors.New("scaffold: name is required")
	}
	doc["name"] = strings.TrimSpace(name)

	optional := []struct {
		key     string
		message string
	}{
		{"tagline", "Tagline (optional):"},
		{"email", "Contact email (optional):"},
		{"location", "Location (optional):"},
	}
	for _, field := range optional {
		value, err := s.driver.Input(ctx, InputConfig{Message: field.message})
		if err != nil {
			return nil, err
		}
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			doc[field.key] = trimmed
		}
	}

	links, err := s.collectSocialLinks(ctx)
	if err != nil {
		return nil, err
	}
	if len(links) > 0 {
		doc[portfolio.SocialLinksKey] = links
	}

	return doc, nil
}

func (s *Scaffolder) collectSocialLinks(ctx context.Context) ([]any, error) {
	var links []any
	for {
		more, err := s.driver.Confirm(ctx, ConfirmConfig{
			Message: "Add a social link?",
			Default: len(links) == 0,
		})
		if err != nil {
			return nil, err
		}
		if !more {
			return links, nil
		}

		name, err := s.driver.Input(ctx, InputConfig{Message: "Link name:"})
		if err != nil {
			return nil, err
		}
		url, err := s.driver.Input(ctx, InputConfig{Message: "Link URL:"})
		if err != nil {
			return nil, err
		}
		icon, err := s.driver.Input(ctx, InputConfig{
			Message: "Icon SVG path (optional):",
			Help:    "Relative path to an .svg file inlined into the rendered pages.",
		})
		if err != nil {
			return nil, err
		}

		link := map[string]any{
			"name": strings.TrimSpace(name),
			"url":  strings.TrimSpace(url),
		}
		if trimmed := strings.TrimSpace(icon); trimmed != "" {
			link[portfolio.SVGPathKey] = trimmed
		}
		links = append(links, link)
	}
}

// copyTemplates writes the bundled page templates next to the document so
// users have an editable starting point. Files already present are kept.
func (s *Scaffolder) copyTemplates(targetDir string) error {
	if s.templates == nil {
		return nil
	}

	return fs.WalkDir(s.templates, ".", func(path string, entry fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if entry.IsDir() {
			return nil
		}

		dest := filepath.Join(targetDir, path)
		if _, err := os.Stat(dest); err == nil {
			return nil
		}

		data, err := fs.ReadFile(s.templates, path)
		if err != nil {
			return fmt.Errorf("scaffold: read template %s: %w", path, err)
		}
		return writer.WriteFile(dest, data)
	})
}
