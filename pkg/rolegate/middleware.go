package rolegate

import (
	"errors"
	"net/http"

	"github.com/dmitrymomot/plankit/pkg/identity"
	"github.com/dmitrymomot/plankit/pkg/respond"
)

// ForbiddenMessage is the fixed body sent with every 403 the gate produces.
const ForbiddenMessage = "The requested resource is forbidden."

// Require creates middleware that forwards a request only when the caller's
// stored role equals the required one. The caller identifier is read from
// the request context; the user record is looked up per request, never
// cached across requests.
//
// The gate fails closed: a missing identity, an unknown user or a nil user
// record all produce a 403. Only infrastructure failures from the lookup
// escape to the error handler as a 500.
func Require(role Role, users UserSource, opts ...Option) func(http.Handler) http.Handler {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, ok := identity.UserID(r.Context())
			if !ok {
				cfg.logger.DebugContext(r.Context(), "request denied", "reason", "no caller identity")
				respond.Error(w, http.StatusForbidden, ForbiddenMessage)
				return
			}

			user, err := users.FindByID(r.Context(), id)
			switch {
			case errors.Is(err, ErrUserNotFound):
				cfg.logger.DebugContext(r.Context(), "request denied", "reason", "caller no longer exists")
				respond.Error(w, http.StatusForbidden, ForbiddenMessage)
				return
			case err != nil:
				cfg.errorHandler(w, r, err)
				return
			case user == nil:
				// A source that reports success with no record is treated
				// like a missing user, not dereferenced.
				cfg.logger.DebugContext(r.Context(), "request denied", "reason", "nil caller record")
				respond.Error(w, http.StatusForbidden, ForbiddenMessage)
				return
			}

			if user.Role != role {
				cfg.logger.DebugContext(r.Context(), "request denied",
					"reason", "role mismatch",
					"required_role", string(role),
					"caller_role", string(user.Role),
				)
				respond.Error(w, http.StatusForbidden, ForbiddenMessage)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
