// Package http provides HTTP server and handler implementations.
//
// This file implements a small builder for JSON responses so handlers
// produce consistent status codes, headers and error bodies.

package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"bilancio/internal/core"
)

// JSONResponseBuilder provides a fluent API for building JSON responses.
type JSONResponseBuilder struct {
	statusCode int
	headers    map[string]string
	payload    any
}

// NewJSONResponse creates a new response builder with default 200 status.
func NewJSONResponse() *JSONResponseBuilder {
	return &JSONResponseBuilder{
		statusCode: http.StatusOK,
		headers:    make(map[string]string),
	}
}

// Status sets the HTTP status code for the response.
func (b *JSONResponseBuilder) Status(code int) *JSONResponseBuilder {
	b.statusCode = code
	return b
}

// Header adds a custom header to the response.
func (b *JSONResponseBuilder) Header(name, value string) *JSONResponseBuilder {
	b.headers[name] = value
	return b
}

// Body sets the value marshaled as the response body.
func (b *JSONResponseBuilder) Body(payload any) *JSONResponseBuilder {
	b.payload = payload
	return b
}

// Write sends the built response to the http.ResponseWriter.
func (b *JSONResponseBuilder) Write(w http.ResponseWriter) {
	for name, value := range b.headers {
		w.Header().Set(name, value)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(b.statusCode)
	if b.payload != nil {
		_ = json.NewEncoder(w).Encode(b.payload)
	}
}

type errorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// ErrorResponse creates a standard error response with a machine-readable
// code and a human-readable message.
func ErrorResponse(statusCode int, code, message string) *JSONResponseBuilder {
	return NewJSONResponse().
		Status(statusCode).
		Body(errorBody{Error: code, Message: message})
}

// BadRequestError creates a 400 Bad Request error response.
func BadRequestError(code, message string) *JSONResponseBuilder {
	return ErrorResponse(http.StatusBadRequest, code, message)
}

// ValidationError maps a core validation error to a 422 response with a
// typed reason the caller can branch on.
func ValidationError(err error) *JSONResponseBuilder {
	return ErrorResponse(http.StatusUnprocessableEntity, validationCode(err), err.Error())
}

func validationCode(err error) string {
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, core.ErrEmptyLabel):
		return "empty_label"
	case errors.Is(err, core.ErrInvalidKind):
		return "invalid_kind"
	case errors.Is(err, core.ErrZeroDate):
		return "invalid_date"
	default:
		return "invalid_transaction"
	}
}
