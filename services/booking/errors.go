package booking

import (
	"errors"
	"fmt"
)

// Domain error codes surfaced at the service boundary.
const (
	CodeValidation           = "validationError"
	CodeNotFound             = "notFound"
	CodeAvailabilityConflict = "availabilityConflict"
	CodeInvalidTransition    = "invalidStateTransition"
	CodeAlreadyCancelled     = "alreadyCancelled"
	CodeInternal             = "internalError"
)

// DomainError is a coded error returned for domain-rule violations.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewValidationError(msg string) error {
	return &DomainError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) error {
	return &DomainError{Code: CodeNotFound, Message: msg}
}

func NewAvailabilityConflictError(msg string) error {
	return &DomainError{Code: CodeAvailabilityConflict, Message: msg}
}

func NewInvalidTransitionError(msg string) error {
	return &DomainError{Code: CodeInvalidTransition, Message: msg}
}

func NewAlreadyCancelledError(msg string) error {
	return &DomainError{Code: CodeAlreadyCancelled, Message: msg}
}

func NewInternalError(msg string) error {
	return &DomainError{Code: CodeInternal, Message: msg}
}

// CodeOf returns the domain error code, or CodeInternal for unexpected errors.
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return CodeInternal
}
