package httpserver

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/plankit/pkg/logger"
)

// Liveness returns a probe handler that always answers 200. It only proves
// the process is up and serving; dependencies are the readiness probe's job.
func Liveness() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}

// Readiness returns a probe handler that runs every dependency check with
// the request's context. All checks passing answers 200; the first failure
// answers 503 and is logged, so orchestrators stop routing traffic here
// until the dependency recovers.
func Readiness(log *slog.Logger, checks ...func(context.Context) error) http.HandlerFunc {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return func(w http.ResponseWriter, r *http.Request) {
		for _, check := range checks {
			if err := check(r.Context()); err != nil {
				log.ErrorContext(r.Context(), "readiness check failed", logger.Error(err))
				w.WriteHeader(http.StatusServiceUnavailable)
				_, _ = w.Write([]byte("UNAVAILABLE"))
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}
}
