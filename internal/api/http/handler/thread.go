package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/avolkhin/forum-server/internal/logger"
	"github.com/avolkhin/forum-server/internal/model"
)

// ThreadService defines thread creation and listing operations.
type ThreadService interface {
	CreateThread(ctx context.Context, forumID int64, title, body string, identity model.Identity) (model.Thread, error)
	ListThreads(ctx context.Context, forumID int64) ([]model.ThreadSummary, error)
}

// Thread handles HTTP endpoints for threads of a forum.
type Thread struct {
	threadService  ThreadService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewThread creates a new Thread handler.
func NewThread(threadService ThreadService, contextManager model.ContextManager, logger *logger.Logger) *Thread {
	return &Thread{
		threadService:  threadService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createThreadRequest struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

type threadItem struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	Creator   string `json:"creator"`
	Timestamp string `json:"timestamp"`
}

type threadListResponse struct {
	Threads []threadItem `json:"threads"`
}

// List returns the threads of a forum with their creator and latest
// activity timestamp.
func (h *Thread) List(w http.ResponseWriter, r *http.Request) {
	forumID, err := parseIDParam(r, "forumID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	threads, err := h.threadService.ListThreads(r.Context(), forumID)
	if err != nil {
		h.logger.Error("Thread handler: listing failed",
			"forum_id", forumID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	resp := threadListResponse{Threads: make([]threadItem, 0, len(threads))}
	for _, thread := range threads {
		resp.Threads = append(resp.Threads, threadItem{
			ID:        thread.ID,
			Title:     thread.Title,
			Creator:   thread.CreatorUsername,
			Timestamp: thread.LastActivityAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create opens a thread in a forum together with its opening post and
// points at it with a Location header.
func (h *Thread) Create(w http.ResponseWriter, r *http.Request) {
	forumID, err := parseIDParam(r, "forumID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req createThreadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Title == "" || req.Text == "" {
		writeError(w, http.StatusBadRequest, "title and text are required")
		return
	}

	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	thread, err := h.threadService.CreateThread(r.Context(), forumID, req.Title, req.Text, identity)
	if err != nil {
		h.logger.Error("Thread handler: creation failed",
			"forum_id", forumID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/v1.0/forums/%d/%d", forumID, thread.ID))
	writeJSON(w, http.StatusCreated, threadItem{
		ID:        thread.ID,
		Title:     thread.Title,
		Creator:   identity.Username,
		Timestamp: thread.CreatedAt.Format(time.RFC3339),
	})
}
