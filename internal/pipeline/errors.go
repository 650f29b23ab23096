// Package pipeline orchestrates a parsing run: chunk extraction against the
// completion service, merge, validation, the optional multi-post pass, and
// the retry/fallback state machine that decides the terminal outcome.
package pipeline

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a parsing failure. Stable strings, stored on the
// parse_run row.
type ErrorKind string

const (
	KindInputTooShort ErrorKind = "input_too_short"          // fatal, no retry
	KindTransient     ErrorKind = "transient"                // network/timeout/truncation-adjacent, retried with backoff
	KindMalformed     ErrorKind = "malformed"                // non-JSON or schema-invalid model output, retried by re-extracting
	KindBusinessRule  ErrorKind = "business_rule_violation"  // schema-valid but cross-field inconsistent
	KindCancelled     ErrorKind = "cancelled"                // the encompassing run was cancelled
)

// ParseError carries a kind alongside the underlying cause.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *ParseError) Unwrap() error { return e.Cause }

func transientErr(message string, cause error) *ParseError {
	return &ParseError{Kind: KindTransient, Message: message, Cause: cause}
}

func malformedErr(message string, cause error) *ParseError {
	return &ParseError{Kind: KindMalformed, Message: message, Cause: cause}
}

// KindOf extracts the ErrorKind from err, defaulting unclassified errors to
// transient so unknown failures stay retryable.
func KindOf(err error) ErrorKind {
	var pe *ParseError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return KindTransient
}
