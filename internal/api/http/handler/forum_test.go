package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	httpctx "github.com/avolkhin/forum-server/internal/api/http/context"
	"github.com/avolkhin/forum-server/internal/mocks"
	"github.com/avolkhin/forum-server/internal/model"
	"github.com/avolkhin/forum-server/internal/testutil"
)

func TestForum_List(t *testing.T) {
	t.Parallel()

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		forumService := mocks.NewForumService(t)
		forumService.On("ListForums", mock.Anything, 0).
			Return([]model.Forum{
				{ID: 1, Name: "general", CreatorUsername: "alice"},
				{ID: 2, Name: "random", CreatorUsername: "bob"},
			}, nil)

		h := NewForum(forumService, httpctx.NewManager(), testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1.0/forums", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp forumListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		require.Len(t, resp.Forums, 2)
		assert.Equal(t, forumItem{ID: 1, Name: "general", Creator: "alice"}, resp.Forums[0])
		assert.Equal(t, forumItem{ID: 2, Name: "random", Creator: "bob"}, resp.Forums[1])
	})

	t.Run("explicit limit", func(t *testing.T) {
		t.Parallel()

		forumService := mocks.NewForumService(t)
		forumService.On("ListForums", mock.Anything, 5).
			Return([]model.Forum{}, nil)

		h := NewForum(forumService, httpctx.NewManager(), testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1.0/forums?limit=5", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp forumListResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Empty(t, resp.Forums)
	})

	t.Run("invalid limit", func(t *testing.T) {
		t.Parallel()

		h := NewForum(mocks.NewForumService(t), httpctx.NewManager(), testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/v1.0/forums?limit=abc", nil)
		rec := httptest.NewRecorder()

		h.List(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestForum_Create(t *testing.T) {
	t.Parallel()

	contextManager := httpctx.NewManager()
	identity := model.Identity{UserID: 7, Username: "alice"}

	t.Run("success", func(t *testing.T) {
		t.Parallel()

		forumService := mocks.NewForumService(t)
		forumService.On("CreateForum", mock.Anything, "general", identity).
			Return(model.Forum{ID: 3, Name: "general", CreatorID: 7}, nil)

		h := NewForum(forumService, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums",
			strings.NewReader(`{"name":"general"}`))
		req = req.WithContext(contextManager.SetIdentityToContext(req.Context(), identity))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/v1.0/forums/3", rec.Header().Get("Location"))

		var resp forumItem
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, forumItem{ID: 3, Name: "general", Creator: "alice"}, resp)
	})

	t.Run("empty name", func(t *testing.T) {
		t.Parallel()

		h := NewForum(mocks.NewForumService(t), contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums",
			strings.NewReader(`{"name":""}`))
		req = req.WithContext(contextManager.SetIdentityToContext(req.Context(), identity))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("no identity in context", func(t *testing.T) {
		t.Parallel()

		h := NewForum(mocks.NewForumService(t), contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums",
			strings.NewReader(`{"name":"general"}`))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("name taken", func(t *testing.T) {
		t.Parallel()

		forumService := mocks.NewForumService(t)
		forumService.On("CreateForum", mock.Anything, "general", identity).
			Return(model.Forum{}, model.ErrConflict)

		h := NewForum(forumService, contextManager, testutil.MakeNoopLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums",
			strings.NewReader(`{"name":"general"}`))
		req = req.WithContext(contextManager.SetIdentityToContext(req.Context(), identity))
		rec := httptest.NewRecorder()

		h.Create(rec, req)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}
