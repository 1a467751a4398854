package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/avolkhin/forum-server/internal/logger"
	"github.com/avolkhin/forum-server/internal/model"
)

// IdentityService defines user registration and self-service update
// operations.
type IdentityService interface {
	Register(ctx context.Context, username, password string) (model.User, error)
	Update(ctx context.Context, username, newUsername, newPassword string, acting model.Identity) (model.User, error)
}

// User handles HTTP endpoints for user accounts.
type User struct {
	identityService IdentityService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewUser creates a new User handler.
func NewUser(identityService IdentityService, contextManager model.ContextManager, logger *logger.Logger) *User {
	return &User{
		identityService: identityService,
		contextManager:  contextManager,
		logger:          logger,
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
}

// Register creates a new user from a username/password payload.
func (h *User) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	user, err := h.identityService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		h.logger.Error("User handler: registration failed",
			"username", req.Username,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, userResponse{ID: user.ID, Username: user.Username})
}

// Update overwrites username and password of the user named in the
// path. The acting identity must match that user.
func (h *User) Update(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	user, err := h.identityService.Update(r.Context(), username, req.Username, req.Password, identity)
	if err != nil {
		h.logger.Error("User handler: update failed",
			"username", username,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, userResponse{ID: user.ID, Username: user.Username})
}
