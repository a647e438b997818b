// internal/common/errors/handler.go
package errors

import "net/http"

// HTTPStatus maps an error code to the HTTP status the API responds with.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeJobNotFound, ErrCodeApplicationNotFound, ErrCodeFileNotFound:
		return http.StatusNotFound
	case ErrCodeJobValidationFailed, ErrCodeApplicationValidationFailed,
		ErrCodeResumeRequired, ErrCodeReferenceLimitExceeded,
		ErrCodeInvalidStatus, ErrCodeUnsupportedFileType, ErrCodeFileTooLarge:
		return http.StatusUnprocessableEntity
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeInvalidCredentials, ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeEmailTaken, ErrCodeDuplicateSubmission:
		return http.StatusConflict
	case ErrCodeRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// FromError normalizes any error into a StandardError for the HTTP boundary.
func FromError(err error) *StandardError {
	if se, ok := As(err); ok {
		return se
	}
	return NewInternalError(err)
}
