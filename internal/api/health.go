package api

import (
	"net/http"

	"github.com/hashicorp/go-hclog"
)

// HealthResponse is the liveness probe body.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler is an unauthenticated liveness probe.
func HealthHandler(log hclog.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		if err := respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"}); err != nil {
			log.Error("error encoding health response", "error", err)
		}
	})
}
