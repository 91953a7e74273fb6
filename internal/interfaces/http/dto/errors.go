package dto

import "net/http"

// Error codes shared between the domain layer and the HTTP surface.
// Domain errors already carry these codes; handlers only map them to
// status codes.
const (
	// ErrCodeValidation is used when a submitted value is outside its
	// allowed domain
	ErrCodeValidation = "VALIDATION_ERROR"
	// ErrCodeInvalidCredentials is the single code for every login
	// failure; it never distinguishes unknown user from wrong password
	ErrCodeInvalidCredentials = "INVALID_CREDENTIALS"
	// ErrCodeUnauthorized is used when authentication is required but missing
	ErrCodeUnauthorized = "UNAUTHORIZED"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "INVALID_TOKEN"
	// ErrCodeTokenType is used when a refresh token is presented where an
	// access token is expected, or vice versa
	ErrCodeTokenType = "INVALID_TOKEN_TYPE"
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ALREADY_EXISTS"
	// ErrCodeBadRequest is used for malformed request bodies
	ErrCodeBadRequest = "BAD_REQUEST"
	// ErrCodeStorage is used when a persistence operation fails
	ErrCodeStorage = "STORAGE_ERROR"
	// ErrCodeInternal is used for unexpected internal errors
	ErrCodeInternal = "INTERNAL_ERROR"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	ErrCodeValidation:         http.StatusBadRequest,
	ErrCodeBadRequest:         http.StatusBadRequest,
	ErrCodeInvalidCredentials: http.StatusUnauthorized,
	ErrCodeUnauthorized:       http.StatusUnauthorized,
	ErrCodeTokenExpired:       http.StatusUnauthorized,
	ErrCodeTokenInvalid:       http.StatusUnauthorized,
	ErrCodeTokenType:          http.StatusUnauthorized,
	ErrCodeNotFound:           http.StatusNotFound,
	ErrCodeAlreadyExists:      http.StatusConflict,
	ErrCodeStorage:            http.StatusInternalServerError,
	ErrCodeInternal:           http.StatusInternalServerError,
}

// GetHTTPStatus returns the HTTP status code for an error code.
// Returns 500 Internal Server Error if the error code is not found.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
