package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func protect(t *testing.T, key string) http.HandlerFunc {
	t.Helper()
	admin, err := NewAdmin(key)
	require.NoError(t, err)
	return admin.Require(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func request(header string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/v1/admin/submissions", nil)
	if header != "" {
		r.Header.Set("Authorization", header)
	}
	return r
}

func TestRequire_ValidKey(t *testing.T) {
	h := protect(t, "s3cret")

	w := httptest.NewRecorder()
	h(w, request("Bearer s3cret"))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequire_RejectsBadCredentials(t *testing.T) {
	h := protect(t, "s3cret")

	for _, header := range []string{"", "Bearer wrong", "Basic s3cret", "s3cret", "Bearer "} {
		w := httptest.NewRecorder()
		h(w, request(header))
		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
	}
}

func TestRequire_EmptyKeyDisablesSurface(t *testing.T) {
	h := protect(t, "")

	w := httptest.NewRecorder()
	h(w, request("Bearer anything"))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = httptest.NewRecorder()
	h(w, request("Bearer "))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
