package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/carlosjramirezg1979/InProject/apperrors"
	"github.com/carlosjramirezg1979/InProject/logging"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logging.Logger.Errorf("Event ID: RESPONSE_ENCODE_ERROR, Description: Failed to encode response: %v", err)
		}
	}
}

// writeError maps the error taxonomy to HTTP statuses: validation → 400,
// missing reference → 404, rejected commit → 409, auth → 401. Anything
// unclassified is a 500 with a generic body.
func writeError(w http.ResponseWriter, err error) {
	var validation *apperrors.ValidationError
	var precondition *apperrors.PreconditionError
	var conflict *apperrors.WriteConflictError
	var auth *apperrors.AuthError

	switch {
	case errors.As(err, &validation):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": validation.Error()})
	case errors.As(err, &precondition):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": precondition.Error()})
	case errors.As(err, &conflict):
		writeJSON(w, http.StatusConflict, map[string]string{"error": "La operación no pudo completarse. Por favor, inténtalo de nuevo."})
	case errors.As(err, &auth):
		writeJSON(w, http.StatusUnauthorized, map[string]string{"error": auth.Error()})
	default:
		logging.Logger.Errorf("Event ID: INTERNAL_ERROR, Description: %v", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Ocurrió un error inesperado. Por favor, inténtalo de nuevo."})
	}
}
