package response

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shashiranjanraj/storerating/pkg/apperr"
	"github.com/shashiranjanraj/storerating/pkg/logger"
)

type envelope struct {
	Status  int               `json:"status"`
	Message string            `json:"message,omitempty"`
	Data    any               `json:"data,omitempty"`
	Errors  map[string]string `json:"errors,omitempty"`
}

func write(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body) //nolint:errcheck
}

// Success sends a 200 JSON response with data.
func Success(w http.ResponseWriter, data any) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Data: data})
}

// Created sends a 201 JSON response with data.
func Created(w http.ResponseWriter, data any) {
	write(w, http.StatusCreated, envelope{Status: http.StatusCreated, Data: data})
}

// Message sends a 200 with only a message.
func Message(w http.ResponseWriter, msg string) {
	write(w, http.StatusOK, envelope{Status: http.StatusOK, Message: msg})
}

// Error sends a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	write(w, status, envelope{Status: status, Message: message})
}

// ValidationError sends a 422 with field-level error map.
func ValidationError(w http.ResponseWriter, message string, errs map[string]string) {
	if message == "" {
		message = "Validation failed"
	}
	write(w, http.StatusUnprocessableEntity, envelope{
		Status:  http.StatusUnprocessableEntity,
		Message: message,
		Errors:  errs,
	})
}

// Unauthorized sends a 401.
func Unauthorized(w http.ResponseWriter) {
	Error(w, http.StatusUnauthorized, "Unauthorized")
}

// Forbidden sends a 403.
func Forbidden(w http.ResponseWriter) {
	Error(w, http.StatusForbidden, "Forbidden")
}

// NotFound sends a 404.
func NotFound(w http.ResponseWriter) {
	Error(w, http.StatusNotFound, "Not found")
}

// Fail writes err using its apperr kind. Internal errors are logged with the
// request logger and never echoed to the client.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	msg := ""
	var ae *apperr.Error
	if errors.As(err, &ae) {
		msg = ae.Message
	}

	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		ValidationError(w, msg, apperr.FieldsOf(err))
	case apperr.KindConflict:
		Error(w, http.StatusConflict, msg)
	case apperr.KindNotFound:
		Error(w, http.StatusNotFound, msg)
	case apperr.KindUnauthenticated:
		Unauthorized(w)
	case apperr.KindForbidden:
		Forbidden(w)
	default:
		logger.WithCtx(r.Context()).Error("request failed", "error", err, "path", r.URL.Path)
		Error(w, http.StatusInternalServerError, "Internal Server Error")
	}
}
