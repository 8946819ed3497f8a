package types

import "fmt"

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewValidationError builds a client-error for missing or malformed input.
func NewValidationError(message string) *CustomError {
	return &CustomError{Code: 400, Message: message, Type: "validation"}
}

// NewNotFoundError builds a not-found error for a missing entity.
func NewNotFoundError(message string) *CustomError {
	return &CustomError{Code: 404, Message: message, Type: "notFound"}
}
