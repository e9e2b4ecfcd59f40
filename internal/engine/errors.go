package engine

import (
	"errors"
	"fmt"
)

// ExtractionError reports that a property extractor could not derive
// properties from a specific row.
//
// Extraction errors are local: the row pipeline logs them and passes the
// row through unmodified for that rule. The table-wide fold continues.
type ExtractionError struct {
	// Extractor is the registry name that failed.
	Extractor string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Extractor != "" {
		return fmt.Sprintf("extraction failed (extractor=%s): %s", e.Extractor, msg)
	}
	return fmt.Sprintf("extraction failed: %s", msg)
}

// Unwrap returns the underlying cause.
func (e *ExtractionError) Unwrap() error { return e.Err }

// IsExtractionError reports whether err is (or wraps) an ExtractionError.
func IsExtractionError(err error) bool {
	var ee *ExtractionError
	return errors.As(err, &ee)
}

// ActionError reports that an action could not be applied to a specific
// row: the type is not registered, or a template referenced an undefined
// property.
//
// Action errors are local: the row pipeline logs them and reverts the row
// to its pre-action form for that rule. The table-wide fold continues.
type ActionError struct {
	// Action is the action-type name.
	Action string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any.
	Err error
}

// Error implements the error interface.
func (e *ActionError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Action != "" {
		return fmt.Sprintf("action failed (action=%s): %s", e.Action, msg)
	}
	return fmt.Sprintf("action failed: %s", msg)
}

// Unwrap returns the underlying cause.
func (e *ActionError) Unwrap() error { return e.Err }

// IsActionError reports whether err is (or wraps) an ActionError.
func IsActionError(err error) bool {
	var ae *ActionError
	return errors.As(err, &ae)
}
