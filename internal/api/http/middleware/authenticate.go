package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/avolkhin/forum-server/internal/logger"
	"github.com/avolkhin/forum-server/internal/model"
)

// IdentityService validates presented credentials and derives the
// acting identity.
type IdentityService interface {
	Authenticate(ctx context.Context, username, password string) (model.Identity, error)
}

// Authenticate validates HTTP Basic credentials and injects the acting
// identity into the request context.
type Authenticate struct {
	identityService IdentityService
	contextManager  model.ContextManager
	logger          *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(identityService IdentityService, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{identityService: identityService, contextManager: contextManager, logger: logger}
}

// Handle rejects requests without valid Basic credentials and passes
// the rest on with the identity set in context.
func (m *Authenticate) Handle(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		username, password, ok := r.BasicAuth()
		if !ok {
			m.unauthorized(w, "missing credentials")
			return
		}

		identity, err := m.identityService.Authenticate(r.Context(), username, password)
		if err != nil {
			m.logger.Info("Authenticate middleware: rejected request",
				"username", username,
				"path", r.URL.Path)
			m.unauthorized(w, "invalid credentials")
			return
		}

		ctx := m.contextManager.SetIdentityToContext(r.Context(), identity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Authenticate) unauthorized(w http.ResponseWriter, msg string) {
	w.Header().Set("WWW-Authenticate", `Basic realm="forum"`)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
