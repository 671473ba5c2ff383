package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ok(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }

func tag(v string) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Add("X-Chain", v)
			next.ServeHTTP(w, r)
		})
	}
}

func TestGroupPrefixAndMiddlewareOrder(t *testing.T) {
	r := New()
	api := r.Group("/api/", tag("api"))
	api.Group("stores", tag("auth")).Put("/{id}", "stores.update", ok, tag("route"))

	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodPut, "/api/stores/3", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, []string{"api", "auth", "route"}, rec.Header().Values("X-Chain"))

	path, found := r.Path("stores.update")
	require.True(t, found)
	assert.Equal(t, "/api/stores/{id}", path)
}

func TestRoutesSorted(t *testing.T) {
	r := New()
	g := r.Group("/api")
	g.Post("/ratings", "ratings.submit", ok)
	g.Get("/ratings", "ratings.index", ok)
	r.Get("/metrics", "", ok)

	assert.Equal(t, []RouteInfo{
		{Method: http.MethodGet, Path: "/api/ratings", Name: "ratings.index"},
		{Method: http.MethodPost, Path: "/api/ratings", Name: "ratings.submit"},
		{Method: http.MethodGet, Path: "/metrics"},
	}, r.Routes())
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "/", joinPath(""))
	assert.Equal(t, "/api/users", joinPath("/api/", "/users/"))
}
