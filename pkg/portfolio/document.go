package portfolio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Document wraps the raw portfolio payload and its origin.
type Document struct {
	source Source
	raw    []byte
}

// NewDocument constructs a Document wrapper while validating the inputs.
func NewDocument(src Source, raw []byte) (Document, error) {
	if src == nil {
		return Document{}, errors.New("portfolio: source is required")
	}
	if len(raw) == 0 {
		return Document{}, errors.New("portfolio: raw document is empty")
	}

	clone := append([]byte(nil), raw...)
	return Document{source: src, raw: clone}, nil
}

// MustNewDocument panics if the document cannot be created. Useful for tests.
func MustNewDocument(src Source, raw []byte) Document {
	doc, err := NewDocument(src, raw)
	if err != nil {
		panic(err)
	}
	return doc
}

// Source returns the origin metadata for the document.
func (d Document) Source() Source {
	return d.source
}

// Raw returns a defensive copy of the payload.
func (d Document) Raw() []byte {
	return append([]byte(nil), d.raw...)
}

// Location returns the string identifier for the origin.
func (d Document) Location() string {
	if d.source == nil {
		return ""
	}
	return d.source.Location()
}

// Decode parses the payload into the mapping consumed by the augmenter and
// renderers. JSON is the primary encoding; documents with a .yaml/.yml
// location (or payloads that only parse as YAML) fall back to yaml.v3.
func (d Document) Decode() (map[string]any, error) {
	data := d.raw
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("portfolio: document %s is empty: %w", d.Location(), ErrMalformedInput)
	}

	if isYAMLLocation(d.Location()) {
		out := map[string]any{}
		if err := yaml.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("portfolio: parse %s: %v: %w", d.Location(), err, ErrMalformedInput)
		}
		return out, nil
	}

	out := map[string]any{}
	jsonErr := json.Unmarshal(data, &out)
	if jsonErr == nil {
		return out, nil
	}
	if err := yaml.Unmarshal(data, &out); err == nil {
		return out, nil
	}
	return nil, fmt.Errorf("portfolio: parse %s: %v: %w", d.Location(), jsonErr, ErrMalformedInput)
}

func isYAMLLocation(location string) bool {
	switch strings.ToLower(filepath.Ext(location)) {
	case ".yaml", ".yml":
		return true
	default:
		return false
	}
}

// Loader fetches a portfolio document from a Source. Implementations live in
// internal/portfolio/loader; construction helpers in the root package.
type Loader interface {
	Load(ctx context.Context, src Source) (Document, error)
}
