package identity

import (
	"net/http"
	"strings"
)

// DefaultHeader is the header the caller identifier is read from when no
// other header is configured.
const DefaultHeader = "X-User-ID"

// Resolver extracts the caller identifier from an HTTP request.
type Resolver interface {
	// Resolve returns the caller identifier, or "" when the request
	// carries none.
	Resolve(r *http.Request) (string, error)
}

// HeaderResolver reads the caller identifier from a request header set by an
// upstream authentication hop. The header value is trusted as-is, so the
// header must be stripped from external traffic at the edge.
type HeaderResolver struct {
	Header string
}

// NewHeaderResolver creates a resolver for the given header name,
// defaulting to DefaultHeader when empty.
func NewHeaderResolver(header string) *HeaderResolver {
	if header == "" {
		header = DefaultHeader
	}
	return &HeaderResolver{Header: header}
}

// Resolve returns the trimmed header value.
func (h *HeaderResolver) Resolve(r *http.Request) (string, error) {
	return strings.TrimSpace(r.Header.Get(h.Header)), nil
}
