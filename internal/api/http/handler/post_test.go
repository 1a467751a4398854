package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/avolkhin/forum-server/internal/api/http/context"
	"github.com/avolkhin/forum-server/internal/mocks"
	"github.com/avolkhin/forum-server/internal/model"
	"github.com/avolkhin/forum-server/internal/testutil"
)

func TestPost_List(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

		postService := mocks.NewForumService(t)
		postService.On("ListPosts", mock.Anything, int64(1), int64(2)).
			Return([]model.Post{
				{ID: 4, ThreadID: 2, AuthorUsername: "bob", Body: "reply", CreatedAt: createdAt},
			}, nil)

		h := NewPost(postService, httpctx.NewManager(), testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1.0/forums/1/2", nil)
		req = withURLParams(req, map[string]string{"forumID": "1", "threadID": "2"})
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp postListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Posts, 1)
		assert.Equal(t, postItem{
			Author:    "bob",
			Text:      "reply",
			Timestamp: "2025-06-01T12:00:00Z",
		}, resp.Posts[0])
	})

	t.Run("invalid thread id", func(t *testing.T) {
		t.Parallel()

		h := NewPost(mocks.NewForumService(t), httpctx.NewManager(), testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1.0/forums/1/-2", nil)
		req = withURLParams(req, map[string]string{"forumID": "1", "threadID": "-2"})
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("thread not found", func(t *testing.T) {
		t.Parallel()

		postService := mocks.NewForumService(t)
		postService.On("ListPosts", mock.Anything, int64(1), int64(99)).
			Return(nil, model.ErrThreadNotFound)

		h := NewPost(postService, httpctx.NewManager(), testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1.0/forums/1/99", nil)
		req = withURLParams(req, map[string]string{"forumID": "1", "threadID": "99"})
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestPost_Create(t *testing.T) {
	t.Parallel()

	contextManager := httpctx.NewManager()
	identity := model.Identity{UserID: 7, Username: "alice"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		postService := mocks.NewForumService(t)
		postService.On("CreatePost", mock.Anything, int64(1), int64(2), "reply", identity).
			Return(model.Post{ID: 4, ThreadID: 2, AuthorID: 7, Body: "reply"}, nil)

		h := NewPost(postService, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums/1/2",
			strings.NewReader(`{"text":"reply"}`))
		req = withURLParams(req, map[string]string{"forumID": "1", "threadID": "2"})
		req = req.WithContext(contextManager.SetIdentityToContext(req.Context(), identity))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp createPostResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, int64(4), resp.ID)
	})

	t.Run("empty text", func(t *testing.T) {
		t.Parallel()

		h := NewPost(mocks.NewForumService(t), contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums/1/2",
			strings.NewReader(`{"text":""}`))
		req = withURLParams(req, map[string]string{"forumID": "1", "threadID": "2"})
		req = req.WithContext(contextManager.SetIdentityToContext(req.Context(), identity))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no identity in context", func(t *testing.T) {
		t.Parallel()

		h := NewPost(mocks.NewForumService(t), contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums/1/2",
			strings.NewReader(`{"text":"reply"}`))
		req = withURLParams(req, map[string]string{"forumID": "1", "threadID": "2"})
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("thread not found", func(t *testing.T) {
		t.Parallel()

		postService := mocks.NewForumService(t)
		postService.On("CreatePost", mock.Anything, int64(1), int64(99), "reply", identity).
			Return(model.Post{}, model.ErrThreadNotFound)

		h := NewPost(postService, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums/1/99",
			strings.NewReader(`{"text":"reply"}`))
		req = withURLParams(req, map[string]string{"forumID": "1", "threadID": "99"})
		req = req.WithContext(contextManager.SetIdentityToContext(req.Context(), identity))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
