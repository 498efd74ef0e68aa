package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// Admin guards the moderation surface with a shared bearer key. The key
// is stored hashed so a process dump never leaks the plaintext.
type Admin struct {
	keyHash []byte
	log     *slog.Logger
}

// NewAdmin hashes the configured key. An empty key disables the admin
// surface: every request is rejected.
func NewAdmin(key string) (*Admin, error) {
	a := &Admin{log: slog.Default().With("component", "admin")}
	if key == "" {
		return a, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(key), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	a.keyHash = hash
	return a, nil
}

// Require checks the Authorization header for a valid bearer key before
// handing the request to next.
func (a *Admin) Require(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !a.authorized(r) {
			a.log.Warn("unauthorized admin request", "path", r.URL.Path, "remote_addr", r.RemoteAddr)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "unauthorized"}`))
			return
		}
		next.ServeHTTP(w, r)
	}
}

func (a *Admin) authorized(r *http.Request) bool {
	if a.keyHash == nil {
		return false
	}
	auth := r.Header.Get("Authorization")
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || token == "" {
		return false
	}
	return bcrypt.CompareHashAndPassword(a.keyHash, []byte(token)) == nil
}
