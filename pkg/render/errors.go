package render

import "errors"

// Sentinel errors for the rendering stage. The template engine adapter wraps
// these so callers can distinguish a missing template from a template that
// failed while executing.
var (
	// ErrTemplateNotFound indicates the named template file is absent from
	// the configured template root.
	ErrTemplateNotFound = errors.New("render: template not found")

	// ErrRenderFailed indicates the template engine could not parse or
	// execute the template against the supplied context.
	ErrRenderFailed = errors.New("render: render failed")
)
