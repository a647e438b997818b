// Package errors provides standardized error handling for the careers API.
package errors

import (
	"errors"
	"fmt"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Job posting errors
const (
	ErrCodeJobNotFound            ErrorCode = "JOB_NOT_FOUND"
	ErrCodeJobValidationFailed    ErrorCode = "JOB_VALIDATION_FAILED"
	ErrCodeJobPersistenceFailed   ErrorCode = "JOB_PERSISTENCE_FAILED"
)

// Application intake errors
const (
	ErrCodeApplicationNotFound         ErrorCode = "APPLICATION_NOT_FOUND"
	ErrCodeApplicationValidationFailed ErrorCode = "APPLICATION_VALIDATION_FAILED"
	ErrCodeResumeRequired              ErrorCode = "RESUME_REQUIRED"
	ErrCodeReferenceLimitExceeded      ErrorCode = "REFERENCE_LIMIT_EXCEEDED"
	ErrCodeInvalidStatus               ErrorCode = "INVALID_STATUS"
	ErrCodeDuplicateSubmission         ErrorCode = "DUPLICATE_SUBMISSION"
)

// Storage errors
const (
	ErrCodeUnsupportedFileType ErrorCode = "UNSUPPORTED_FILE_TYPE"
	ErrCodeFileTooLarge        ErrorCode = "FILE_TOO_LARGE"
	ErrCodeUploadFailed        ErrorCode = "UPLOAD_FAILED"
	ErrCodeFileNotFound        ErrorCode = "FILE_NOT_FOUND"
)

// Auth errors
const (
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeEmailTaken         ErrorCode = "EMAIL_TAKEN"
	ErrCodeUnauthorized       ErrorCode = "UNAUTHORIZED"
	ErrCodeRateLimited        ErrorCode = "RATE_LIMITED"
)

// Infrastructure errors
const (
	ErrCodeDatabaseFailed ErrorCode = "DATABASE_FAILED"
	ErrCodeBadRequest     ErrorCode = "BAD_REQUEST"
	ErrCodeInternal       ErrorCode = "INTERNAL_ERROR"
)

// FieldError describes a single violated validation rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// StandardError represents a structured application error.
type StandardError struct {
	Code        ErrorCode    `json:"code"`
	Message     string       `json:"message"`
	Details     string       `json:"details,omitempty"`
	FieldErrors []FieldError `json:"errors,omitempty"`
	Retryable   bool         `json:"retryable"`
	Timestamp   time.Time    `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// Messages flattens the field errors into displayable strings,
// one per violated rule.
func (e *StandardError) Messages() []string {
	out := make([]string, 0, len(e.FieldErrors))
	for _, fe := range e.FieldErrors {
		out = append(out, fe.Message)
	}
	return out
}

// As extracts a *StandardError from an error chain.
func As(err error) (*StandardError, bool) {
	var se *StandardError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// Is reports whether err carries the given code.
func Is(err error, code ErrorCode) bool {
	se, ok := As(err)
	return ok && se.Code == code
}

// ==========================
// 2. Error Constructors
// ==========================

// NewJobNotFoundError creates a non-retryable lookup error.
func NewJobNotFoundError(jobID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeJobNotFound,
		Message:   "Job posting not found",
		Details:   fmt.Sprintf("jobId: %s", jobID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewJobValidationError carries the full list of violated rules.
func NewJobValidationError(fieldErrors []FieldError) *StandardError {
	return &StandardError{
		Code:        ErrCodeJobValidationFailed,
		Message:     "Job posting validation failed",
		FieldErrors: fieldErrors,
		Retryable:   false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewJobPersistenceError wraps a failed job post write.
func NewJobPersistenceError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeJobPersistenceFailed,
		Message:   "Failed to save job post",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicationNotFoundError creates a non-retryable lookup error.
func NewApplicationNotFoundError(id string) *StandardError {
	return &StandardError{
		Code:      ErrCodeApplicationNotFound,
		Message:   "Application not found",
		Details:   fmt.Sprintf("applicationId: %s", id),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewApplicationValidationError carries the full list of violated rules.
func NewApplicationValidationError(fieldErrors []FieldError) *StandardError {
	return &StandardError{
		Code:        ErrCodeApplicationValidationFailed,
		Message:     "Application validation failed",
		FieldErrors: fieldErrors,
		Retryable:   false,
		Timestamp:   time.Now().UTC(),
	}
}

// NewResumeRequiredError rejects a submission with no uploaded resume.
func NewResumeRequiredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeResumeRequired,
		Message:   "A resume must be uploaded before the application is submitted",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewReferenceLimitError rejects a submission with more than two references.
func NewReferenceLimitError(count int) *StandardError {
	return &StandardError{
		Code:      ErrCodeReferenceLimitExceeded,
		Message:   "Maximum 2 references allowed",
		Details:   fmt.Sprintf("got %d", count),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidStatusError rejects an unknown application status.
func NewInvalidStatusError(status string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidStatus,
		Message:   "Invalid application status",
		Details:   fmt.Sprintf("status: %s", status),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewDuplicateSubmissionError marks a reused idempotency key whose original
// submission could not be replayed.
func NewDuplicateSubmissionError() *StandardError {
	return &StandardError{
		Code:      ErrCodeDuplicateSubmission,
		Message:   "This application was already submitted",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnsupportedFileTypeError rejects a resume with a disallowed MIME type.
func NewUnsupportedFileTypeError(contentType string) *StandardError {
	return &StandardError{
		Code:      ErrCodeUnsupportedFileType,
		Message:   "Please upload PDF or Word document only",
		Details:   fmt.Sprintf("contentType: %s", contentType),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewFileTooLargeError rejects a resume above the configured size cap.
func NewFileTooLargeError(size, limit int64) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileTooLarge,
		Message:   "Uploaded file exceeds the size limit",
		Details:   fmt.Sprintf("size: %d, limit: %d", size, limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUploadFailedError creates a retryable storage error.
func NewUploadFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeUploadFailed,
		Message:   "Failed to store uploaded resume",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewFileNotFoundError creates a non-retryable lookup error.
func NewFileNotFoundError(fileID string) *StandardError {
	return &StandardError{
		Code:      ErrCodeFileNotFound,
		Message:   "Stored file not found",
		Details:   fmt.Sprintf("fileId: %s", fileID),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInvalidCredentialsError creates a non-retryable auth error.
func NewInvalidCredentialsError() *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidCredentials,
		Message:   "Invalid email or password",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewEmailTakenError rejects a signup with an already registered email.
func NewEmailTakenError(email string) *StandardError {
	return &StandardError{
		Code:      ErrCodeEmailTaken,
		Message:   "An account with this email already exists",
		Details:   fmt.Sprintf("email: %s", email),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewUnauthorizedError creates a non-retryable auth error.
func NewUnauthorizedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeUnauthorized,
		Message:   "Authentication required",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewRateLimitedError creates a retryable throttling error.
func NewRateLimitedError() *StandardError {
	return &StandardError{
		Code:      ErrCodeRateLimited,
		Message:   "Too many requests, try again later",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewDatabaseError creates a retryable database error.
func NewDatabaseError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeDatabaseFailed,
		Message:   "Database operation failed",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewBadRequestError rejects a malformed request body.
func NewBadRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeBadRequest,
		Message:   "Malformed request",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected failure.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Internal server error",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}
