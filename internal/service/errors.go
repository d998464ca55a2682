package service

import (
	"errors"
	"sort"
	"strings"
)

// Service errors
var (
	// ErrCompanyNotFound is returned when a company is not found
	ErrCompanyNotFound = errors.New("company not found")

	// ErrAssessmentNotFound is returned when an assessment is not found
	ErrAssessmentNotFound = errors.New("assessment not found")

	// ErrConsultationNotFound is returned when a consultation is not found
	ErrConsultationNotFound = errors.New("consultation not found")

	// ErrAssessmentCompanyMismatch is returned when a consultation references
	// an assessment taken by a different company
	ErrAssessmentCompanyMismatch = errors.New("assessment does not belong to company")

	// ErrInvalidInput is the cause of a ValidationError with no more specific cause
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError carries field-level messages keyed by JSON field name
type ValidationError struct {
	Fields map[string]string
	Err    error
}

func newValidationError(cause error, fields map[string]string) *ValidationError {
	if cause == nil {
		cause = ErrInvalidInput
	}
	return &ValidationError{Fields: fields, Err: cause}
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return e.Err.Error() + ": " + strings.Join(names, ", ")
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
