package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation    = "VALIDATION_ERROR"
	ErrCodeNotFound      = "NOT_FOUND"
	ErrCodeUnauthorized  = "UNAUTHORIZED"
	ErrCodeUpstream      = "UPSTREAM_ERROR"
	ErrCodeInternalError = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrInvalidPayload = NewDomainError(ErrCodeValidation, "interaction payload is invalid")
)

// Not found errors
var (
	ErrFormNotFound    = NewDomainError(ErrCodeNotFound, "no form registered for this identifier")
	ErrContactNotFound = NewDomainError(ErrCodeNotFound, "no contact mapped to this category")
)

// Authorization errors
var (
	ErrBadSignature = NewDomainError(ErrCodeUnauthorized, "slack request signature verification failed")
)

// Upstream errors. These mark best-effort collaborator calls; the pipeline
// degrades the affected output to empty rather than aborting on them.
var (
	ErrEmbeddingUnavailable  = NewDomainError(ErrCodeUpstream, "embedding provider returned no vector")
	ErrGenerationUnavailable = NewDomainError(ErrCodeUpstream, "chat completion returned no text")
	ErrSheetUnavailable      = NewDomainError(ErrCodeUpstream, "department sheet fetch failed")
)
