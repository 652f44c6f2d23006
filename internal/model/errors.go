package model

import (
	"errors"
	"fmt"
)

// ErrInvalidFormat is the sentinel wrapped by every FormatError.
var ErrInvalidFormat = errors.New("invalid format")

// FormatError reports malformed scenario or path data.
type FormatError struct {
	Unit   string
	Reason string
}

func (e *FormatError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("invalid %s format", e.Unit)
	}

	return fmt.Sprintf("invalid %s format: %s", e.Unit, e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidFormat.
func (e *FormatError) Unwrap() error {
	return ErrInvalidFormat
}

// Severity ranks a Diagnostic.
type Severity string

// Available severities.
const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Diagnostic is a user-facing message produced while loading or rendering.
type Diagnostic struct {
	Severity Severity
	Message  string
}
