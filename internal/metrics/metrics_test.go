package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_RecordsStatusAndRoute(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Post("/metrics-test", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	counter := httpRequestsTotal.WithLabelValues(http.MethodPost, "/metrics-test", http.StatusText(http.StatusTeapot))
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/metrics-test", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}

func TestUpstreamRequest(t *testing.T) {
	counter := upstreamRequestsTotal.WithLabelValues("openai", "chat", StatusError)
	before := testutil.ToFloat64(counter)

	UpstreamRequest("openai", "chat", StatusError, 50*time.Millisecond)

	assert.Equal(t, before+1, testutil.ToFloat64(counter))
}
