package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/avolkhin/forum-server/internal/logger"
	"github.com/avolkhin/forum-server/internal/model"
)

// ForumService defines forum creation and listing operations.
type ForumService interface {
	CreateForum(ctx context.Context, name string, identity model.Identity) (model.Forum, error)
	ListForums(ctx context.Context, limit int) ([]model.Forum, error)
}

// Forum handles HTTP endpoints for forums.
type Forum struct {
	forumService   ForumService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewForum creates a new Forum handler.
func NewForum(forumService ForumService, contextManager model.ContextManager, logger *logger.Logger) *Forum {
	return &Forum{
		forumService:   forumService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createForumRequest struct {
	Name string `json:"name"`
}

type forumItem struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Creator string `json:"creator"`
}

type forumListResponse struct {
	Forums []forumItem `json:"forums"`
}

// List returns up to ?limit forums in insertion order.
func (h *Forum) List(w http.ResponseWriter, r *http.Request) {
	var limit int
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		limit = parsed
	}

	forums, err := h.forumService.ListForums(r.Context(), limit)
	if err != nil {
		h.logger.Error("Forum handler: listing failed",
			"error", err.Error())
		handleError(w, err)
		return
	}

	resp := forumListResponse{Forums: make([]forumItem, 0, len(forums))}
	for _, forum := range forums {
		resp.Forums = append(resp.Forums, forumItem{
			ID:      forum.ID,
			Name:    forum.Name,
			Creator: forum.CreatorUsername,
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create creates a forum owned by the authenticated user and points at
// it with a Location header.
func (h *Forum) Create(w http.ResponseWriter, r *http.Request) {
	var req createForumRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	forum, err := h.forumService.CreateForum(r.Context(), req.Name, identity)
	if err != nil {
		h.logger.Error("Forum handler: creation failed",
			"name", req.Name,
			"error", err.Error())
		handleError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1.0/forums/%d", forum.ID))
	writeJSON(w, http.StatusCreated, forumItem{
		ID:      forum.ID,
		Name:    forum.Name,
		Creator: identity.Username,
	})
}
