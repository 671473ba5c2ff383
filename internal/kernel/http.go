// Package kernel assembles the HTTP handler: global middleware, the API
// routes and the metrics endpoint.
package kernel

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/storerating/app/routes"
	"github.com/shashiranjanraj/storerating/config"
	"github.com/shashiranjanraj/storerating/pkg/metrics"
	"github.com/shashiranjanraj/storerating/pkg/middleware"
	"github.com/shashiranjanraj/storerating/pkg/reqid"
	"github.com/shashiranjanraj/storerating/pkg/response"
	"github.com/shashiranjanraj/storerating/pkg/router"
)

// NewRouter builds the router. The middleware stack, outermost first:
// metrics, request id, logger, recovery, CORS, rate limit.
func NewRouter(db *gorm.DB, limiter middleware.Limiter) *router.Router {
	r := router.New()

	r.Use(metrics.Middleware())
	r.Use(reqid.Middleware())
	r.Use(middleware.Logger)
	r.Use(middleware.Recovery)
	r.Use(middleware.CORS(middleware.NewCORSOptions(config.CORSOrigins())))
	if limiter != nil {
		r.Use(middleware.RateLimit(limiter))
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) { response.NotFound(w) })
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		response.Error(w, http.StatusMethodNotAllowed, "Method not allowed")
	})

	r.Get("/metrics", "metrics", metrics.Handler())
	routes.RegisterAPI(r, db)
	return r
}

// Handler returns the assembled http.Handler.
func Handler(db *gorm.DB, limiter middleware.Limiter) http.Handler {
	return NewRouter(db, limiter).Handler()
}
