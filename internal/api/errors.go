package api

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
)

// ErrorCode represents machine-readable error codes
type ErrorCode string

// Validation error codes
const (
	ErrCodeInvalidJSON  ErrorCode = "INVALID_JSON"
	ErrCodeInvalidLogic ErrorCode = "INVALID_LOGIC"
	ErrCodeInvalidIndex ErrorCode = "INVALID_INDEX"
)

// ErrorResponse represents a structured error response
type ErrorResponse struct {
	Error     string            `json:"error"`                // HTTP status text
	Message   string            `json:"message"`              // Human-readable description
	Code      ErrorCode         `json:"code"`                 // Machine-readable error code
	Fields    map[string]string `json:"fields,omitempty"`     // Field-level errors
	RequestID string            `json:"request_id,omitempty"` // Request ID for debugging
}

// NewErrorResponse creates a new error response
func NewErrorResponse(statusCode int, code ErrorCode, message string) *ErrorResponse {
	return &ErrorResponse{
		Error:   http.StatusText(statusCode),
		Message: message,
		Code:    code,
	}
}

// writeErrorResponse writes a structured error response to the http response writer
func writeErrorResponse(w http.ResponseWriter, r *http.Request, statusCode int, errResp *ErrorResponse) {
	// Add request ID from chi middleware if available
	if reqID := middleware.GetReqID(r.Context()); reqID != "" {
		errResp.RequestID = reqID
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(errResp)
}

// BadRequestError creates a bad request error response
func BadRequestError(w http.ResponseWriter, r *http.Request, code ErrorCode, message string) {
	errResp := NewErrorResponse(http.StatusBadRequest, code, message)
	writeErrorResponse(w, r, http.StatusBadRequest, errResp)
}
