package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrValidation marks input that violates a field constraint. It never
	// reaches the creation endpoint.
	ErrValidation = errors.New("validation failed")
	// ErrInvalidTransition marks a lifecycle change the state machine does
	// not define.
	ErrInvalidTransition = errors.New("invalid status transition")

	ErrCampaignNotFound = errors.New("campaign not found")
	ErrDraftNotFound    = errors.New("draft not found")
	ErrServiceNotFound  = errors.New("service not found")
	ErrCampaignEnded    = errors.New("campaign has ended")

	// ErrCannotAdvance is returned when the current stage predicate does
	// not hold.
	ErrCannotAdvance = errors.New("cannot proceed: stage is incomplete")
	// ErrSubmissionInProgress rejects a second submit while the first one
	// is still awaiting the creation endpoint.
	ErrSubmissionInProgress = errors.New("submission already in progress")
	ErrAlreadySubmitted     = errors.New("draft already submitted")
	// ErrSubmissionFailed wraps failures reported by the creation endpoint.
	// The draft is left untouched and the caller may retry.
	ErrSubmissionFailed = errors.New("campaign submission failed")
)

// ValidationError lists the offending fields and a human readable reason
// for each. It matches ErrValidation with errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError returns a ValidationError for a single field.
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: reason}}
}

// Add records another offending field.
func (e *ValidationError) Add(field, reason string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = reason
}

// Empty reports whether no field has been recorded.
func (e *ValidationError) Empty() bool {
	return e == nil || len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TransitionError describes a rejected lifecycle change. It matches
// ErrInvalidTransition with errors.Is.
type TransitionError struct {
	From Status
	To   Status
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition, e.From, e.To)
}

func (e *TransitionError) Is(target error) bool {
	return target == ErrInvalidTransition
}
