// Package apperrors defines the error taxonomy shared by the pipeline stages.
package apperrors

import "fmt"

// ExtractionError reports an unreadable, empty, or malformed PDF.
// It is terminal for the document; there is no retry path.
type ExtractionError struct {
	Filename string
	Reason   string
	Cause    error
}

func (e *ExtractionError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("extract %s: %s: %v", e.Filename, e.Reason, e.Cause)
	}
	return fmt.Sprintf("extract %s: %s", e.Filename, e.Reason)
}

func (e *ExtractionError) Unwrap() error { return e.Cause }

// GatewayError wraps a transport or provider failure from the model gateway.
// Stage identifies the pipeline stage that issued the call.
type GatewayError struct {
	Stage string
	Cause error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("model gateway (%s): %v", e.Stage, e.Cause)
}

func (e *GatewayError) Unwrap() error { return e.Cause }

// GenerationError is the stage-boundary translation of a gateway or
// output-parsing failure.
type GenerationError struct {
	Stage string
	Cause error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("generation (%s): %v", e.Stage, e.Cause)
}

func (e *GenerationError) Unwrap() error { return e.Cause }

// MalformedOutputError reports structured model output missing a required key.
type MalformedOutputError struct {
	Field string
}

func (e *MalformedOutputError) Error() string {
	return fmt.Sprintf("model output missing required field %q", e.Field)
}

// StorageError wraps a database connection or write failure.
type StorageError struct {
	Op    string
	Cause error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s: %v", e.Op, e.Cause)
}

func (e *StorageError) Unwrap() error { return e.Cause }
