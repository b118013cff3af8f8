package payment

import (
	"errors"
	"fmt"
)

// Domain error codes surfaced at the workflow boundary.
const (
	CodeNotFound               = "notFound"
	CodeMissingRelatedData     = "missingRelatedData"
	CodeExternalAccountMissing = "externalAccountMissing"
	CodeNoInvoiceAssociated    = "noInvoiceAssociated"
	CodeUpstreamFailure        = "upstreamFailure"
	CodeInternal               = "internalError"
)

// WorkflowError is a coded error returned for payment-workflow failures.
type WorkflowError struct {
	Code    string
	Message string
}

func (e *WorkflowError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewNotFoundError(msg string) error {
	return &WorkflowError{Code: CodeNotFound, Message: msg}
}

func NewMissingRelatedDataError(msg string) error {
	return &WorkflowError{Code: CodeMissingRelatedData, Message: msg}
}

func NewExternalAccountMissingError(msg string) error {
	return &WorkflowError{Code: CodeExternalAccountMissing, Message: msg}
}

func NewNoInvoiceAssociatedError(msg string) error {
	return &WorkflowError{Code: CodeNoInvoiceAssociated, Message: msg}
}

func NewUpstreamFailureError(msg string) error {
	return &WorkflowError{Code: CodeUpstreamFailure, Message: msg}
}

func NewInternalError(msg string) error {
	return &WorkflowError{Code: CodeInternal, Message: msg}
}

// CodeOf returns the workflow error code, or CodeInternal for unexpected errors.
func CodeOf(err error) string {
	var we *WorkflowError
	if errors.As(err, &we) {
		return we.Code
	}
	return CodeInternal
}
