// Package identity carries the authenticated caller's identifier through the
// request context.
//
// The package does not authenticate anyone. It assumes an upstream hop (an
// API gateway, a session layer) has already verified the caller and attached
// their identifier to the request; Middleware copies that identifier into
// the context where handlers and access gates read it.
//
// # Usage
//
//	r.Use(identity.Middleware(identity.NewHeaderResolver("")))
//
//	func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
//		userID, ok := identity.UserID(r.Context())
//		if !ok {
//			// deny
//		}
//		...
//	}
//
// Requests without an identity pass through anonymously. Whether anonymous
// access is acceptable is decided by the downstream stage, not here.
package identity
