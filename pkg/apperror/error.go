package apperror

import "net/http"

type AppError struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Err     error             `json:"-"`
	Fields  map[string]string `json:"fields,omitempty"` // Per-field form errors; "" key is a non-field error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code int, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func BadRequest(message string) *AppError {
	return New(http.StatusBadRequest, message, nil)
}

// Validation builds a 400 carrying form field errors.
func Validation(fields map[string]string) *AppError {
	e := New(http.StatusBadRequest, "Please correct the errors below.", nil)
	e.Fields = fields
	return e
}

// FieldError is a Validation error with a single entry.
func FieldError(field, message string) *AppError {
	return Validation(map[string]string{field: message})
}

func Unauthorized(message string) *AppError {
	return New(http.StatusUnauthorized, message, nil)
}

func Forbidden(message string) *AppError {
	return New(http.StatusForbidden, message, nil)
}

func NotFound(message string) *AppError {
	return New(http.StatusNotFound, message, nil)
}

func Internal(err error) *AppError {
	return New(http.StatusInternalServerError, "Internal Server Error", err)
}
