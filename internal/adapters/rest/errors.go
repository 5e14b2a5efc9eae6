package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/andrescamacho/nations-go/internal/application/logging"
	"github.com/andrescamacho/nations-go/internal/domain/country"
	"github.com/andrescamacho/nations-go/internal/domain/shared"
)

const (
	msgServerError     = "Server error"
	msgNotFound        = "Country not found"
	msgUnauthenticated = "User not authenticated"
	msgRateLimited     = "Too many requests"
	msgInvalidUpdates  = "Invalid updates"
	msgInvalidBody     = "Invalid request body"
)

// statusFor maps the domain error taxonomy onto HTTP status codes and client messages
func statusFor(err error) (int, string) {
	var validationErr *shared.ValidationError
	var admissionErr *country.AdmissionError
	var notFoundErr *shared.NotFoundError

	switch {
	case errors.As(err, &admissionErr):
		return http.StatusBadRequest, admissionErr.Message()
	case errors.As(err, &validationErr):
		return http.StatusBadRequest, validationErr.Message
	case errors.As(err, &notFoundErr):
		return http.StatusNotFound, msgNotFound
	default:
		return http.StatusInternalServerError, msgServerError
	}
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := statusFor(err)
	if status == http.StatusInternalServerError {
		logging.FromContext(r.Context()).Error("request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err)
	}
	writeJSON(w, status, messageDTO{Message: message})
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, messageDTO{Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
