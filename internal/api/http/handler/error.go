package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Harish050696/cardvault/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	case errors.Is(err, model.ErrNotAuthenticated):
		writeError(w, http.StatusUnauthorized, "not logged in")
	case errors.Is(err, model.ErrDuplicateCard):
		writeError(w, http.StatusConflict, "card already exists")
	case errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, "card not found")
	case errors.Is(err, model.ErrExtractionFailed):
		writeError(w, http.StatusUnprocessableEntity, "could not extract text from image")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
