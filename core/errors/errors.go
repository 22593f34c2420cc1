package errors

import "fmt"

// ErrorCode identifies an application error category
type ErrorCode string

const (
	ErrInternalServer     ErrorCode = "INTERNAL_SERVER_ERROR"
	ErrInvalidInput       ErrorCode = "INVALID_INPUT"
	ErrInvalidRequestData ErrorCode = "INVALID_REQUEST_DATA"
	ErrNotFound           ErrorCode = "NOT_FOUND"
	ErrAlreadyExists      ErrorCode = "ALREADY_EXISTS"
	ErrForbidden          ErrorCode = "FORBIDDEN"

	// Store collaborator failures. Reads fail open (derived maps reset to
	// empty and the error is reported); writes are reported per operation.
	ErrStoreReadFailure  ErrorCode = "STORE_READ_FAILURE"
	ErrStoreWriteFailure ErrorCode = "STORE_WRITE_FAILURE"
)

// AppError is the error type exchanged between services and controllers
type AppError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
