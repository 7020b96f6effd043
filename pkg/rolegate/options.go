package rolegate

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/plankit/pkg/respond"
)

// ErrorHandler handles infrastructure failures raised while looking up the
// caller. It owns the response.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// config holds gate configuration.
type config struct {
	errorHandler ErrorHandler
	logger       *slog.Logger
}

// Option configures the gate.
type Option func(*config)

// WithErrorHandler replaces the default 500 response for lookup failures.
func WithErrorHandler(handler ErrorHandler) Option {
	return func(c *config) {
		if handler != nil {
			c.errorHandler = handler
		}
	}
}

// WithLogger sets the logger used for denied requests and lookup failures.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func defaultConfig() *config {
	cfg := &config{logger: slog.New(slog.DiscardHandler)}
	cfg.errorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		cfg.logger.ErrorContext(r.Context(), "caller lookup failed", "error", err)
		respond.Error(w, http.StatusInternalServerError, "Internal server error.")
	}
	return cfg
}
