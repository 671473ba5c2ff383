package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareLabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware())
	r.Get("/api/stores/{id}", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/stores/42", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	assert.Equal(t, 1, testutil.CollectAndCount(RequestDuration, "storerating_http_request_duration_seconds"))
	_, err := RequestDuration.GetMetricWithLabelValues(http.MethodGet, "/api/stores/{id}", "418")
	assert.NoError(t, err)
}

func TestHandlerExposesDomainMetrics(t *testing.T) {
	RatingsSubmitted.WithLabelValues("stored").Inc()
	ObserveDBQuery("select", time.Now())

	rec := httptest.NewRecorder()
	Handler()(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, "storerating_ratings_submitted_total")
	assert.Contains(t, body, "storerating_db_query_duration_seconds")
}
