package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// withURLParams attaches chi URL parameters to a request the way the
// router would.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	routeCtx := chi.NewRouteContext()
	for key, value := range params {
		routeCtx.URLParams.Add(key, value)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, routeCtx))
}
