package handler

import (
	"net/http"

	"github.com/arashoo/Katena-project-management/pkg/application/dto"
)

// Response represents the standard API envelope
type Response struct {
	Success bool       `json:"success"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo represents error details
type ErrorInfo struct {
	Code      string           `json:"code"`
	Message   string           `json:"message"`
	RequestID string           `json:"request_id,omitempty"`
	Details   []dto.FieldError `json:"details,omitempty"`
}

// Error codes not carried by domain errors
const (
	ErrCodeBadRequest = "BAD_REQUEST"
	ErrCodeInternal   = "INTERNAL_ERROR"
)

// NewSuccessResponse creates a success response
func NewSuccessResponse(data any) Response {
	return Response{Success: true, Data: data}
}

// NewErrorResponse creates an error response
func NewErrorResponse(code, message, requestID string) Response {
	return Response{
		Success: false,
		Error:   &ErrorInfo{Code: code, Message: message, RequestID: requestID},
	}
}

// GetHTTPStatus maps an error code to its HTTP status
func GetHTTPStatus(code string) int {
	switch code {
	case "NOT_FOUND":
		return http.StatusNotFound
	case "VALIDATION_FAILED", ErrCodeBadRequest:
		return http.StatusBadRequest
	case "ALREADY_EXISTS":
		return http.StatusConflict
	case "ILLEGAL_TRANSITION", "INSUFFICIENT_STOCK":
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
