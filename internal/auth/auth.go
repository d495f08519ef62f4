// Package auth implements static bearer-token authorization for the API.
package auth

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Bearer returns middleware that validates the Authorization header
// against the configured API key.
func Bearer(apiKey string, log hclog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok ||
				subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
				log.Warn("unauthorized request",
					"method", r.Method,
					"path", r.URL.Path,
				)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
