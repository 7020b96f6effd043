package requestid

import (
	"net/http"
	"regexp"

	"github.com/google/uuid"
)

// Header is the request and response header carrying the identifier.
const Header = "X-Request-ID"

// Inbound identifiers outside this shape are replaced, never echoed back.
var validID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,128}$`)

// Middleware assigns every request an identifier. A well-formed inbound
// header value is kept so traces can span services; a missing or malformed
// one is replaced with a fresh UUID. The identifier is echoed on the
// response and attached to the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if !validID.MatchString(id) {
			id = uuid.New().String()
		}
		w.Header().Set(Header, id)
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), id)))
	})
}
