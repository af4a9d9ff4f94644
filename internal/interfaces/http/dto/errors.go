package dto

import "net/http"

// Error codes surfaced by the API
const (
	ErrCodeInternal   = "ERR_INTERNAL"
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	ErrCodeNotFound   = "ERR_NOT_FOUND"
)

// domainErrorHTTPStatus maps domain error codes to HTTP status codes.
// Business rule violations are 422; bad input is 400.
var domainErrorHTTPStatus = map[string]int{
	"NOT_FOUND":              http.StatusNotFound,
	"ALREADY_EXISTS":         http.StatusConflict,
	"INVALID_INPUT":          http.StatusBadRequest,
	"INVALID_STATE":          http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":     http.StatusUnprocessableEntity,
	"INSUFFICIENT_CREDIT":    http.StatusUnprocessableEntity,
	"ACCOUNT_REFERENCED":     http.StatusConflict,
	"MISSING_SYSTEM_ACCOUNT": http.StatusUnprocessableEntity,
	"UNBALANCED_ENTRY":       http.StatusUnprocessableEntity,
	"EMPTY_ENTRY":            http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for a domain error code.
// Unknown codes map to 500 Internal Server Error.
func GetHTTPStatus(code string) int {
	if status, ok := domainErrorHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}
