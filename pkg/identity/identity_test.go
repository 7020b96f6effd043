package identity_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/plankit/pkg/identity"
)

func TestContext(t *testing.T) {
	t.Run("round trip", func(t *testing.T) {
		ctx := identity.WithUserID(context.Background(), "user-1")

		id, ok := identity.UserID(ctx)
		assert.True(t, ok)
		assert.Equal(t, "user-1", id)
	})

	t.Run("missing identity", func(t *testing.T) {
		_, ok := identity.UserID(context.Background())
		assert.False(t, ok)
	})

	t.Run("empty identifier counts as missing", func(t *testing.T) {
		ctx := identity.WithUserID(context.Background(), "")
		_, ok := identity.UserID(ctx)
		assert.False(t, ok)
	})
}

func TestMiddleware(t *testing.T) {
	newHandler := func(gotID *string, gotOK *bool) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*gotID, *gotOK = identity.UserID(r.Context())
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("attaches the header identity", func(t *testing.T) {
		var gotID string
		var gotOK bool
		mw := identity.Middleware(identity.NewHeaderResolver(""))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-User-ID", "  user-42  ")
		mw(newHandler(&gotID, &gotOK)).ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, gotOK)
		assert.Equal(t, "user-42", gotID)
	})

	t.Run("continues anonymously without the header", func(t *testing.T) {
		var gotID string
		var gotOK bool
		mw := identity.Middleware(identity.NewHeaderResolver(""))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		mw(newHandler(&gotID, &gotOK)).ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.False(t, gotOK)
	})

	t.Run("custom header name", func(t *testing.T) {
		var gotID string
		var gotOK bool
		mw := identity.Middleware(identity.NewHeaderResolver("X-Forwarded-User"))

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-User", "user-7")
		mw(newHandler(&gotID, &gotOK)).ServeHTTP(httptest.NewRecorder(), req)

		require.True(t, gotOK)
		assert.Equal(t, "user-7", gotID)
	})
}

func TestLoggerExtractor(t *testing.T) {
	extract := identity.LoggerExtractor()

	attr, ok := extract(identity.WithUserID(context.Background(), "user-1"))
	require.True(t, ok)
	assert.Equal(t, "user_id", attr.Key)
	assert.Equal(t, "user-1", attr.Value.String())

	_, ok = extract(context.Background())
	assert.False(t, ok)
}
