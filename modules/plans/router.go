package plans

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RouterOptions configures access control for the plan routes. Each gate is
// optional and wraps only its own routes; a nil gate leaves those routes
// open to any authenticated caller.
type RouterOptions struct {
	// WriteGate guards plan creation, typically an admin role check.
	WriteGate func(http.Handler) http.Handler
	// ReadGate guards listing and retrieval.
	ReadGate func(http.Handler) http.Handler
}

// Router builds the plan module router.
//
// Example:
//
//	h := plans.NewHandler(store, plans.WithLogger(log))
//	r := chi.NewRouter()
//	r.Mount("/plans", h.Router(plans.RouterOptions{
//	    WriteGate: rolegate.Require(rolegate.RoleAdmin, users),
//	}))
func (h *Handler) Router(opts RouterOptions) chi.Router {
	r := chi.NewRouter()

	r.Group(func(r chi.Router) {
		if opts.WriteGate != nil {
			r.Use(opts.WriteGate)
		}
		r.Post("/", h.Create)
	})

	r.Group(func(r chi.Router) {
		if opts.ReadGate != nil {
			r.Use(opts.ReadGate)
		}
		r.Get("/", h.List)
		r.Get("/{planID}", h.Get)
	})

	return r
}
