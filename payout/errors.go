/*
errors.go - Centralized error types for the payout engine

PURPOSE:
  All error types in one place for consistency and discoverability.
  The engine itself has no fatal conditions: cap rejections, unknown
  tags, and zero amounts are silent skips, which is core business logic.
  These errors exist for the INPUT BOUNDARY only - malformed quote
  requests and rule-set files are rejected before computation starts.

ERROR CATEGORIES:
  1. Validation errors - bad subscribed amounts, unknown names/tags
  2. Input-shape errors - year ordering, unknown insurer or generation

USAGE:
  Callers can test categories with errors.Is:

    if errors.Is(err, payout.ErrNegativeAmount) { ... }

SEE ALSO:
  - types.go: Catalog.WithAmounts uses these errors
  - engine.go: Compute validates year ordering
*/
package payout

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNegativeAmount is returned when a subscribed amount is negative.
	ErrNegativeAmount = errors.New("negative subscribed amount")

	// ErrUnknownClause is returned when input references a clause that is
	// not in the catalog. (Rule tables referencing unknown clauses are NOT
	// an error; they pay zero.)
	ErrUnknownClause = errors.New("unknown clause")

	// ErrUnknownEvent is returned when untrusted input carries a tag
	// outside the closed vocabulary.
	ErrUnknownEvent = errors.New("unknown event tag")

	// ErrYearOrder is returned when the per-year event log is not in
	// strictly increasing year order.
	ErrYearOrder = errors.New("years must be strictly increasing")

	// ErrYearRange is returned when a year index is outside 1..10.
	ErrYearRange = errors.New("year out of range (1-10)")

	// ErrUnknownInsurer is returned when a quote names an insurer with no
	// registered catalog/rule table.
	ErrUnknownInsurer = errors.New("unknown insurer")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports an input-validation failure at the boundary.
type ValidationError struct {
	Code    string // e.g., "negative_amount", "unknown_clause"
	Message string
	Err     error // sentinel for errors.Is
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// IsValidation reports whether err is an input-validation failure, as
// opposed to an internal error.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
