package server

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog/log"

	apperrors "github.com/therapistsfriend/practice-server/internal/errors"
)

const contentTypeJSON = "application/json; charset=utf-8"

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the error taxonomy onto HTTP statuses. Authentication
// failures collapse into a generic 401; 403 bodies never name the resource's
// real owner.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case apperrors.Is(err, apperrors.ErrInvalidCredentials):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Invalid credentials"})
	case apperrors.Is(err, apperrors.ErrNoToken),
		apperrors.Is(err, apperrors.ErrTokenExpired),
		apperrors.Is(err, apperrors.ErrTokenMalformed),
		apperrors.Is(err, apperrors.ErrSignatureInvalid):
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "Unauthorized"})
	case apperrors.Is(err, apperrors.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "Not authorized to access this resource"})
	case apperrors.Is(err, apperrors.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{Error: "Not found"})
	case apperrors.Is(err, apperrors.ErrConflict):
		writeJSON(w, http.StatusConflict, errorResponse{Error: err.Error()})
	case apperrors.Is(err, apperrors.ErrValidation):
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
	case apperrors.Is(err, apperrors.ErrStoreUnavailable):
		log.Error().Err(err).Msg("store unavailable")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Service unavailable"})
	default:
		log.Error().Err(err).Msg("unhandled error")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "Internal server error"})
	}
}
