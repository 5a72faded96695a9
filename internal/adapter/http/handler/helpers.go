package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/iho/goinvoice/internal/adapter/http/dto"
	"github.com/iho/goinvoice/internal/domain"
	"github.com/iho/goinvoice/internal/usecase"
)

// writeJSON writes a JSON response.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError writes an error response.
func writeError(w http.ResponseWriter, status int, message, details string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   message,
		Message: details,
	})
}

// mapDomainError maps domain errors to HTTP status codes.
func mapDomainError(err error) int {
	var maxBytesErr *http.MaxBytesError

	switch {
	case errors.As(err, &maxBytesErr):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domain.ErrNoLineItems):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrMalformedRecord):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrParse):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrInvalidProfile):
		return http.StatusUnprocessableEntity
	case errors.Is(err, usecase.ErrNumberUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrDuplicateInvoice):
		return http.StatusConflict
	case errors.Is(err, usecase.ErrRegisterDisabled):
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}

// parseIntQuery parses an integer query parameter with a default value.
func parseIntQuery(r *http.Request, key string, defaultValue int) int {
	val := r.URL.Query().Get(key)
	if val == "" {
		return defaultValue
	}
	i, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return i
}
