package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/avolkhin/forum-server/internal/model"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// handleError translates domain errors to HTTP status codes. Anything
// unrecognized is an internal error and its details stay out of the
// response.
func handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrConflict):
		writeError(w, http.StatusConflict, "already exists")
	case errors.Is(err, model.ErrForumNotFound),
		errors.Is(err, model.ErrThreadNotFound),
		errors.Is(err, model.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, model.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden")
	case errors.Is(err, model.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "invalid credentials")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
