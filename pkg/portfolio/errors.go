package portfolio

import "errors"

// Sentinel errors describing the failure taxonomy shared by the loader,
// augmenter, and writer. Callers match them with errors.Is; every wrapping
// site adds the offending path so diagnostics stay actionable.
var (
	// ErrNotFound indicates a referenced file (document or icon) is absent.
	ErrNotFound = errors.New("portfolio: not found")

	// ErrMalformedInput indicates a document that could not be parsed.
	ErrMalformedInput = errors.New("portfolio: malformed input")

	// ErrIOFailure indicates a read or write failed for reasons other than
	// the file being absent (permissions, disk errors).
	ErrIOFailure = errors.New("portfolio: io failure")
)
