package errors

import (
	"fmt"
	"time"
)

type ErrorCode string

const (
	ErrCodeInternal     ErrorCode = "INTERNAL_ERROR"
	ErrCodeValidation   ErrorCode = "VALIDATION_ERROR"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeUnauthorized ErrorCode = "UNAUTHORIZED"
	ErrCodeForbidden    ErrorCode = "FORBIDDEN"
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"

	ErrCodePrizeNotFound   ErrorCode = "PRIZE_NOT_FOUND"
	ErrCodeRaffleNotFound  ErrorCode = "RAFFLE_NOT_FOUND"
	ErrCodeSponsorNotFound ErrorCode = "SPONSOR_NOT_FOUND"
	ErrCodeAdminNotFound   ErrorCode = "ADMIN_NOT_FOUND"

	ErrCodeStoreError ErrorCode = "STORE_ERROR"
)

// AppError is the typed error carried through handlers and the error
// middleware. Cause is never serialized.
type AppError struct {
	Code      ErrorCode         `json:"code"`
	Message   string            `json:"message"`
	Fields    map[string]string `json:"fields,omitempty"`
	Timestamp time.Time         `json:"timestamp"`
	RequestID string            `json:"request_id,omitempty"`
	Cause     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) IsNotFound() bool {
	switch e.Code {
	case ErrCodeNotFound, ErrCodePrizeNotFound, ErrCodeRaffleNotFound,
		ErrCodeSponsorNotFound, ErrCodeAdminNotFound:
		return true
	}
	return false
}

func (e *AppError) IsValidation() bool {
	return e.Code == ErrCodeValidation
}

// WithField attaches a per-field validation message.
func (e *AppError) WithField(field, reason string) *AppError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = reason
	return e
}

func (e *AppError) WithRequestID(requestID string) *AppError {
	e.RequestID = requestID
	return e
}

func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:      code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

func Wrap(err error, code ErrorCode, message string) *AppError {
	appErr := New(code, message)
	appErr.Cause = err
	return appErr
}

func NewValidationError(field, reason string) *AppError {
	return New(ErrCodeValidation, fmt.Sprintf("validation failed for %q: %s", field, reason)).
		WithField(field, reason)
}

func NewNotFoundError(resource, id string) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found: %s", resource, id))
}

func NewUnauthorizedError(reason string) *AppError {
	return New(ErrCodeUnauthorized, "Unauthorized: "+reason)
}

func NewForbiddenError(reason string) *AppError {
	return New(ErrCodeForbidden, "Forbidden: "+reason)
}

func NewStoreError(operation string, err error) *AppError {
	return Wrap(err, ErrCodeStoreError, "store operation failed: "+operation)
}

func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if err != nil {
		appErr, _ = err.(*AppError)
	}
	return appErr, appErr != nil
}
