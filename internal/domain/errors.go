package domain

import (
	"errors"
	"strings"
)

var (
	ErrNotFound           = errors.New("resource not found")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrForbidden          = errors.New("forbidden")
	ErrValidation         = errors.New("validation failed")
	ErrSubmitInProgress   = errors.New("a submission is already in progress")
	ErrUnknownTable       = errors.New("unknown category table")
	ErrUnsupportedExport  = errors.New("unsupported export format")
	ErrArchiveFailed      = errors.New("invoice archive upload failed")
	ErrRenderFailed       = errors.New("invoice rendering failed")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ValidationError aggregates every missing and invalid field of a form into a
// single error, so the caller can surface one message instead of one per field.
type ValidationError struct {
	Missing []string
	Invalid []string
	// Summary overrides the generated "Please fill in" prefix when set.
	Summary string
}

// NewValidationError returns nil when nothing is missing or invalid.
func NewValidationError(missing, invalid []string) *ValidationError {
	if len(missing) == 0 && len(invalid) == 0 {
		return nil
	}
	return &ValidationError{Missing: missing, Invalid: invalid}
}

func (e *ValidationError) Error() string {
	var parts []string
	if len(e.Missing) > 0 {
		prefix := "Please fill in: "
		if e.Summary != "" {
			prefix = e.Summary + ": "
		}
		parts = append(parts, prefix+strings.Join(e.Missing, ", "))
	}
	if len(e.Invalid) > 0 {
		parts = append(parts, "Invalid values: "+strings.Join(e.Invalid, ", "))
	}
	if len(parts) == 0 {
		return ErrValidation.Error()
	}
	return strings.Join(parts, "; ")
}

// Is lets errors.Is(err, ErrValidation) match any ValidationError.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// FieldError is a single-field validation failure with a fixed user-facing message.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return e.Message
}

func (e *FieldError) Is(target error) bool {
	return target == ErrValidation
}
