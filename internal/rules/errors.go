package rules

import (
	"errors"
	"fmt"
)

// DefinitionError reports a structurally invalid rule document.
//
// Definition errors are fatal: the run aborts before (or the moment) the
// broken structure is reached, and no row processing output is produced.
// This is distinct from the per-row errors in the engine package, which
// are logged and isolated to a single row.
type DefinitionError struct {
	// Rule names the offending rule, if known ("" for document-level
	// problems such as a missing "rules" root key).
	Rule string

	// Message is a human-readable description.
	Message string

	// Err is the underlying cause, if any (e.g. a regexp compile error).
	Err error
}

// Error implements the error interface.
func (e *DefinitionError) Error() string {
	msg := e.Message
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	if e.Rule != "" {
		return fmt.Sprintf("invalid rule definition (rule=%s): %s", e.Rule, msg)
	}
	return fmt.Sprintf("invalid rule definition: %s", msg)
}

// Unwrap returns the underlying cause.
func (e *DefinitionError) Unwrap() error { return e.Err }

// IsDefinitionError reports whether err is (or wraps) a DefinitionError.
func IsDefinitionError(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de)
}
