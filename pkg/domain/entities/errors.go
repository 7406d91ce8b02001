package entities

import (
	"errors"
	"fmt"
)

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound          = NewDomainError("NOT_FOUND", "resource not found")
	ErrValidation        = NewDomainError("VALIDATION_FAILED", "validation failed")
	ErrAlreadyExists     = NewDomainError("ALREADY_EXISTS", "resource already exists")
	ErrIllegalTransition = NewDomainError("ILLEGAL_TRANSITION", "illegal order transition")
	ErrInsufficientStock = NewDomainError("INSUFFICIENT_STOCK", "insufficient stock available")
)

// TransitionError is returned when an order is asked to move outside the legal table
type TransitionError struct {
	OrderID string
	From    OrderStatus
	To      OrderStatus
}

// Error implements the error interface
func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal order transition for %s: %s -> %s", e.OrderID, e.From, e.To)
}

// Unwrap ties the error to ErrIllegalTransition
func (e *TransitionError) Unwrap() error {
	return ErrIllegalTransition
}

// CodeOf returns the domain code carried by err, or "" when err is not a domain error
func CodeOf(err error) string {
	var de *DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
