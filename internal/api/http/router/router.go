package router

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/avolkhin/forum-server/internal/api/http/handler"
	"github.com/avolkhin/forum-server/internal/api/http/middleware"
	"github.com/avolkhin/forum-server/internal/logger"
	"github.com/avolkhin/forum-server/internal/model"
	"github.com/avolkhin/forum-server/internal/service"
)

// Pinger reports backing store liveness.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Router wires HTTP routes, handlers and middleware for the forum API.
type Router struct {
	identityService *service.Identity
	forumService    *service.Forum
	contextManager  model.ContextManager
	db              Pinger
	logger          *logger.Logger
}

// New creates new Router instance.
func New(
	identityService *service.Identity,
	forumService *service.Forum,
	contextManager model.ContextManager,
	db Pinger,
	logger *logger.Logger,
) *Router {
	return &Router{
		identityService: identityService,
		forumService:    forumService,
		contextManager:  contextManager,
		db:              db,
		logger:          logger,
	}
}

// Register builds the route table. Reads are open; every mutation except
// registration goes through the Basic-credentials middleware.
func (r *Router) Register() http.Handler {
	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.identityService, r.contextManager, r.logger)

	userHandler := handler.NewUser(r.identityService, r.contextManager, r.logger)
	forumHandler := handler.NewForum(r.forumService, r.contextManager, r.logger)
	threadHandler := handler.NewThread(r.forumService, r.contextManager, r.logger)
	postHandler := handler.NewPost(r.forumService, r.contextManager, r.logger)

	mux := chi.NewRouter()
	mux.Use(logging.Handle)
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
		MaxAge:         300,
	}))

	mux.Get("/ping", r.handlePing)

	mux.Route("/api/v1.0", func(api chi.Router) {
		api.Post("/users", userHandler.Register)
		api.With(authenticate.Handle).Put("/users/{username}", userHandler.Update)

		api.Get("/forums", forumHandler.List)
		api.With(authenticate.Handle).Post("/forums", forumHandler.Create)

		api.Get("/forums/{forumID}", threadHandler.List)
		api.With(authenticate.Handle).Post("/forums/{forumID}", threadHandler.Create)

		api.Get("/forums/{forumID}/{threadID}", postHandler.List)
		api.With(authenticate.Handle).Post("/forums/{forumID}/{threadID}", postHandler.Create)
	})

	return mux
}

func (r *Router) handlePing(w http.ResponseWriter, req *http.Request) {
	if err := r.db.Ping(req.Context()); err != nil {
		r.logger.Error("Router: database ping failed", "error", err.Error())
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
