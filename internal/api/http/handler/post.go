package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/avolkhin/forum-server/internal/logger"
	"github.com/avolkhin/forum-server/internal/model"
)

// PostService defines post creation and listing operations.
type PostService interface {
	CreatePost(ctx context.Context, forumID, threadID int64, body string, identity model.Identity) (model.Post, error)
	ListPosts(ctx context.Context, forumID, threadID int64) ([]model.Post, error)
}

// Post handles HTTP endpoints for posts of a thread.
type Post struct {
	postService    PostService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewPost creates a new Post handler.
func NewPost(postService PostService, contextManager model.ContextManager, logger *logger.Logger) *Post {
	return &Post{
		postService:    postService,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createPostRequest struct {
	Text string `json:"text"`
}

type postItem struct {
	Author    string `json:"author"`
	Text      string `json:"text"`
	Timestamp string `json:"timestamp"`
}

type postListResponse struct {
	Posts []postItem `json:"posts"`
}

type createPostResponse struct {
	ID int64 `json:"id"`
}

// List returns all posts of a thread, most recent first.
func (h *Post) List(w http.ResponseWriter, r *http.Request) {
	forumID, err := parseIDParam(r, "forumID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	threadID, err := parseIDParam(r, "threadID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	posts, err := h.postService.ListPosts(r.Context(), forumID, threadID)
	if err != nil {
		h.logger.Error("Post handler: listing failed",
			"forum_id", forumID,
			"thread_id", threadID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	resp := postListResponse{Posts: make([]postItem, 0, len(posts))}
	for _, post := range posts {
		resp.Posts = append(resp.Posts, postItem{
			Author:    post.AuthorUsername,
			Text:      post.Body,
			Timestamp: post.CreatedAt.Format(time.RFC3339),
		})
	}

	writeJSON(w, http.StatusOK, resp)
}

// Create adds a post authored by the authenticated user to a thread.
func (h *Post) Create(w http.ResponseWriter, r *http.Request) {
	forumID, err := parseIDParam(r, "forumID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	threadID, err := parseIDParam(r, "threadID")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Text == "" {
		writeError(w, http.StatusBadRequest, "text is required")
		return
	}

	identity, ok := h.contextManager.GetIdentityFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "missing credentials")
		return
	}

	post, err := h.postService.CreatePost(r.Context(), forumID, threadID, req.Text, identity)
	if err != nil {
		h.logger.Error("Post handler: creation failed",
			"forum_id", forumID,
			"thread_id", threadID,
			"error", err.Error())
		handleError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, createPostResponse{ID: post.ID})
}
