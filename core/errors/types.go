// ABOUTME: Custom error types for rendering and clipboard delivery
// ABOUTME: Provides structured errors so callers can route on error kind

package errors

import (
	"errors"
	"fmt"
)

// ErrCapabilityAbsent signals that a clipboard write strategy's API does not
// exist on this platform. It is a routing signal for the strategy chain, not
// a failure, and is never surfaced to the user.
var ErrCapabilityAbsent = errors.New("clipboard capability absent")

// TemplateSyntaxError represents malformed nested-token structure in a
// format string.
type TemplateSyntaxError struct {
	Message string
}

// Error implements the error interface
func (e *TemplateSyntaxError) Error() string {
	return fmt.Sprintf("template syntax error: %s", e.Message)
}

// UnknownFunctionError represents a functional placeholder referencing an
// undefined function name.
type UnknownFunctionError struct {
	Name string
}

// Error implements the error interface
func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown placeholder function: %s", e.Name)
}

// ExtractionError represents a failed or disallowed content extraction.
type ExtractionError struct {
	URL string
	Err error
}

// Error implements the error interface
func (e *ExtractionError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("content extraction failed for %s", e.URL)
	}
	return fmt.Sprintf("content extraction failed for %s: %v", e.URL, e.Err)
}

// Unwrap returns the underlying error
func (e *ExtractionError) Unwrap() error {
	return e.Err
}

// ClipboardWriteError represents a clipboard strategy whose write API
// rejected the payload.
type ClipboardWriteError struct {
	Strategy string
	Err      error
}

// Error implements the error interface
func (e *ClipboardWriteError) Error() string {
	return fmt.Sprintf("clipboard write failed (%s): %v", e.Strategy, e.Err)
}

// Unwrap returns the underlying error
func (e *ClipboardWriteError) Unwrap() error {
	return e.Err
}

// SurfaceAcquisitionError represents the failure to create either a
// temporary tab or a temporary window for the copy-event fallback.
type SurfaceAcquisitionError struct {
	Err error
}

// Error implements the error interface
func (e *SurfaceAcquisitionError) Error() string {
	return fmt.Sprintf("ephemeral surface acquisition failed: %v", e.Err)
}

// Unwrap returns the underlying error
func (e *SurfaceAcquisitionError) Unwrap() error {
	return e.Err
}

// IsTemplateSyntax checks if an error is a TemplateSyntaxError
func IsTemplateSyntax(err error) bool {
	var syntaxErr *TemplateSyntaxError
	return errors.As(err, &syntaxErr)
}

// IsUnknownFunction checks if an error is an UnknownFunctionError
func IsUnknownFunction(err error) bool {
	var fnErr *UnknownFunctionError
	return errors.As(err, &fnErr)
}

// IsExtraction checks if an error is an ExtractionError
func IsExtraction(err error) bool {
	var extErr *ExtractionError
	return errors.As(err, &extErr)
}

// IsCapabilityAbsent checks if an error is the capability-absent routing
// signal.
func IsCapabilityAbsent(err error) bool {
	return errors.Is(err, ErrCapabilityAbsent)
}

// IsSurfaceAcquisition checks if an error is a SurfaceAcquisitionError
func IsSurfaceAcquisition(err error) bool {
	var surfErr *SurfaceAcquisitionError
	return errors.As(err, &surfErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
