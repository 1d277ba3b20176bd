package apperrors

import "errors"

// Error taxonomy shared by the business logic and the HTTP boundary
var (
	// ErrValidationFailed is raised before any storage access when required input is missing.
	ErrValidationFailed = errors.New("validation failed")
	// ErrResourceNotFound is raised when a referenced entity does not exist.
	ErrResourceNotFound = errors.New("resource not found")
	// ErrConflict is raised when storage rejects a write on a uniqueness constraint.
	ErrConflict = errors.New("conflict")
	// ErrStorage is raised on connectivity or other store failures, after retries are exhausted.
	ErrStorage = errors.New("storage error")
	// ErrBadRequest covers malformed requests caught at the HTTP layer.
	ErrBadRequest = errors.New("bad request")
)

// Student Errors
var (
	ErrStudentNotFound     = NewResourceNotFoundError("Student not found.")
	ErrStudentCodeRequired = NewValidationError("Student code is required.")
	ErrStudentIDRequired   = NewValidationError("Student identifier is required.")
	ErrStudentIDTooLong    = NewValidationError("Student identifier must be at most 10 characters.")
	ErrStudentCodeTooLong  = NewValidationError("Student code must be at most 20 characters.")
	ErrStudentConflict     = NewConflictError("A student with the same code or email already exists.")

	ErrStudentIDConflict    = NewConflictError("A student with the same identifier already exists.")
	ErrStudentCodeConflict  = NewConflictError("A student with the same code already exists.")
	ErrStudentEmailConflict = NewConflictError("A student with the same email already exists.")
)

// Subject Errors
var (
	ErrSubjectCodeRequired = NewValidationError("Subject code is required.")
	ErrSubjectCodeTooLong  = NewValidationError("Subject code must be at most 20 characters.")
)

// NewResourceNotFoundError creates a new custom error for resource not found with a message
func NewResourceNotFoundError(message string) error {
	return &CustomError{
		Err:     ErrResourceNotFound,
		Message: message,
	}
}

// NewConflictError creates a new custom error for conflict situations with a message
func NewConflictError(message string) error {
	return &CustomError{
		Err:     ErrConflict,
		Message: message,
	}
}

// NewValidationError creates a new custom error for missing or invalid input
func NewValidationError(message string) error {
	return &CustomError{
		Err:     ErrValidationFailed,
		Message: message,
	}
}

// NewBadRequestError creates a new custom error for bad request with a message
func NewBadRequestError(message string) error {
	return &CustomError{
		Err:     ErrBadRequest,
		Message: message,
	}
}

// Is returns whether target matches any of the errors in errList
func Is(err, target error, errList ...error) bool {
	if errors.Is(err, target) {
		return true
	}

	for _, e := range errList {
		if errors.Is(err, e) {
			return true
		}
	}

	return false
}

// CustomError represents application-specific errors with additional context
type CustomError struct {
	Err     error
	Message string
}

// Error implements error interface
func (e *CustomError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return "unknown error"
}

// Unwrap implements errors.Unwrap interface
func (e *CustomError) Unwrap() error {
	return e.Err
}
