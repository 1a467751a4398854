package router

import (
	"context"
	"errors"
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
	"github.com/avolkhin/forum-server/internal/password"
	"github.com/avolkhin/forum-server/internal/service"
	"github.com/avolkhin/forum-server/internal/testutil"
)

type stubPinger struct {
	err error
}

func (p *stubPinger) Ping(_ context.Context) error {
	return p.err
}

type routerFixture struct {
	userStore   *mocks.UserStore
	forumStore  *mocks.ForumStore
	threadStore *mocks.ThreadStore
	postStore   *mocks.PostStore
	handler     http.Handler
}

func makeRouter(t *testing.T, pinger Pinger) *routerFixture {
	t.Helper()

	log := testutil.MakeNoopLogger()

	f := &routerFixture{
		userStore:   mocks.NewUserStore(t),
		forumStore:  mocks.NewForumStore(t),
		threadStore: mocks.NewThreadStore(t),
		postStore:   mocks.NewPostStore(t),
	}

	identityService := service.NewIdentity(f.userStore, password.NewBcryptHasher(), log)
	forumService := service.NewForum(f.forumStore, f.threadStore, f.postStore, log, 30)

	f.handler = New(identityService, forumService, httpctx.NewManager(), pinger, log).Register()

	return f
}

func TestRouter_Ping(t *testing.T) {
	t.Parallel()

	t.Run("database reachable", func(t *testing.T) {
		t.Parallel()

		f := makeRouter(t, &stubPinger{})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("database unreachable", func(t *testing.T) {
		t.Parallel()

		f := makeRouter(t, &stubPinger{err: errors.New("connection refused")})

		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		rec := httptest.NewRecorder()

		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestRouter_Routes(t *testing.T) {
	t.Parallel()

	t.Run("register user", func(t *testing.T) {
		t.Parallel()

		f := makeRouter(t, &stubPinger{})

		f.userStore.On("Create", mock.Anything, mock.MatchedBy(func(user model.User) bool {
			return user.Username == "alice" && user.PasswordHash != "" && user.PasswordHash != "secret"
		})).Return(model.User{ID: 1, Username: "alice"}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/users",
			strings.NewReader(`{"username":"alice","password":"secret"}`))
		rec := httptest.NewRecorder()

		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("list forums is open", func(t *testing.T) {
		t.Parallel()

		f := makeRouter(t, &stubPinger{})

		f.forumStore.On("List", mock.Anything, 30).Return([]model.Forum{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v1.0/forums", nil)
		rec := httptest.NewRecorder()

		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("create forum requires credentials", func(t *testing.T) {
		t.Parallel()

		f := makeRouter(t, &stubPinger{})

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums",
			strings.NewReader(`{"name":"general"}`))
		rec := httptest.NewRecorder()

		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.NotEmpty(t, rec.Header().Get("WWW-Authenticate"))
	})

	t.Run("create forum with credentials", func(t *testing.T) {
		t.Parallel()

		f := makeRouter(t, &stubPinger{})

		hash, err := password.NewBcryptHasher().Hash("secret")
		require.NoError(t, err)

		f.userStore.On("GetByUsername", mock.Anything, "alice").Return(model.User{
			ID:           7,
			Username:     "alice",
			PasswordHash: hash,
		}, nil)
		f.forumStore.On("Create", mock.Anything, model.Forum{
			Name:      "general",
			CreatorID: 7,
		}).Return(model.Forum{ID: 1, Name: "general", CreatorID: 7}, nil)

		req := httptest.NewRequest(http.MethodPost, "/api/v1.0/forums",
			strings.NewReader(`{"name":"general"}`))
		req.SetBasicAuth("alice", "secret")
		rec := httptest.NewRecorder()

		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Equal(t, "/api/v1.0/forums/1", rec.Header().Get("Location"))
	})

	t.Run("unknown route", func(t *testing.T) {
		t.Parallel()

		f := makeRouter(t, &stubPinger{})

		req := httptest.NewRequest(http.MethodGet, "/api/v1.0/unknown", nil)
		rec := httptest.NewRecorder()

		f.handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
