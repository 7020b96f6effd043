// Package rolegate enforces per-request role-based authorization.
//
// The gate is a middleware decorator parameterized by a required role. On
// every request it reads the already-attached caller identity from the
// context, looks the caller up through a UserSource, and compares the stored
// role against the required one. A match forwards the request unchanged;
// anything else answers 403 with a fixed message.
//
// The gate performs no authentication and no caching: identity attachment is
// an upstream concern (see the identity package), and the lookup runs once
// per request so a role change takes effect immediately.
//
// # Usage
//
//	admin := rolegate.Require(rolegate.RoleAdmin, users,
//		rolegate.WithLogger(log),
//	)
//
//	r.With(admin).Post("/plans", h.create)
//
// # Error Handling
//
// Denials fail closed. A missing caller identity, a UserSource returning
// ErrUserNotFound, a nil user record and a role mismatch all yield the same
// 403 body, so a prober learns nothing about which condition held. Any other
// lookup error is an infrastructure failure handed to the error handler,
// which responds 500 by default.
package rolegate
