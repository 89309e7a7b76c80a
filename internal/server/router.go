package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/kdduha/vision-relay/internal/handler"
	"github.com/kdduha/vision-relay/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "github.com/kdduha/vision-relay/docs"
)

type Handlers struct {
	Analyze    *handler.AnalyzeHandler
	Speech     *handler.SpeechHandler
	Transcribe *handler.TranscribeHandler
}

// NewRouter wires every endpoint. A zero timeout leaves requests uncancelled.
func NewRouter(timeout time.Duration, h Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		metrics.Middleware,
	)
	if timeout > 0 {
		r.Use(middleware.Timeout(timeout))
	}

	r.Get("/", handler.Index)
	r.Post("/analyze", h.Analyze.Analyze)
	r.Post("/speech", h.Speech.Speech)
	if h.Transcribe != nil {
		r.Post("/transcribe", h.Transcribe.Transcribe)
	}

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))
	r.Handle("/metrics", promhttp.Handler())

	return r
}
