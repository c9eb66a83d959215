package model

import (
	"errors"
	"fmt"
)

// Sentinel errors for the fatal failure modes of the parse pipeline.
// Everything else inside the pipeline recovers locally and never
// surfaces to the user.
var (
	// ErrUnsupportedFormat is returned for file extensions the extractor
	// does not recognize.
	ErrUnsupportedFormat = errors.New("unsupported file type (expected .zip, .json, or .html)")

	// ErrEmptyExport is returned when zero conversations survive every
	// extraction and recovery strategy.
	ErrEmptyExport = errors.New("no conversations found (make sure you uploaded the correct export file)")
)

// ParseError indicates structurally broken input: malformed JSON, or an
// archive with no recognizable member. The user should re-export from
// the source product.
type ParseError struct {
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("parse failed: %s: %v", e.Reason, e.Err)
	}
	return "parse failed: " + e.Reason
}

func (e *ParseError) Unwrap() error { return e.Err }
