package identity

import "net/http"

// Middleware attaches the caller identity resolved from the request to the
// request context. Requests without an identity, or whose resolution fails,
// continue anonymously; stages that require a caller deny those downstream.
func Middleware(resolver Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id, err := resolver.Resolve(r)
			if err != nil || id == "" {
				next.ServeHTTP(w, r)
				return
			}
			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), id)))
		})
	}
}
