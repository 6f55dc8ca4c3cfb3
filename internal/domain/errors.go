package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input fails business
// rule validation (e.g. missing required field, end date before start date).
// Handlers should map this to HTTP 400.
var ErrValidation = errors.New("validation error")

// ErrConflict is returned by the repo when an insert collides with a unique
// constraint, e.g. two writers claiming the same sort_order for a day.
var ErrConflict = errors.New("conflict")

// ErrGeneration is returned when the model call fails or yields no result.
var ErrGeneration = errors.New("generation failed")

// ErrAIConfiguration is returned when the model provider rejects the
// credentials or the client is not configured.
var ErrAIConfiguration = errors.New("ai configuration error")

// ErrInvalidAIResponse is matched by ResponseValidationError.
var ErrInvalidAIResponse = errors.New("invalid ai response")

// ErrPersistence is matched by PersistError.
var ErrPersistence = errors.New("persistence failed")

// ResponseValidationError reports that the model output failed the
// independent schema check. Details holds one entry per violated rule.
type ResponseValidationError struct {
	Details []string
}

func (e *ResponseValidationError) Error() string {
	return fmt.Sprintf("invalid ai response: %s", strings.Join(e.Details, "; "))
}

// Is makes errors.Is(err, ErrInvalidAIResponse) succeed.
func (e *ResponseValidationError) Is(target error) bool {
	return target == ErrInvalidAIResponse
}

// PersistError reports that a generated batch was only partly saved.
// Rows saved before the failure are not rolled back.
type PersistError struct {
	Saved int
	Total int
	Err   error
}

func (e *PersistError) Error() string {
	return fmt.Sprintf("saved %d of %d activities: %v", e.Saved, e.Total, e.Err)
}

func (e *PersistError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrPersistence) succeed.
func (e *PersistError) Is(target error) bool {
	return target == ErrPersistence
}

// GenerationError is a model failure with a short Reason that is safe to
// show to users, e.g. "no result from model". Err keeps the provider detail.
type GenerationError struct {
	Reason string
	Err    error
}

func (e *GenerationError) Error() string {
	if e.Err == nil {
		return "generation failed: " + e.Reason
	}
	return fmt.Sprintf("generation failed: %s: %v", e.Reason, e.Err)
}

func (e *GenerationError) Unwrap() error { return e.Err }

// Is makes errors.Is(err, ErrGeneration) succeed.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGeneration
}
