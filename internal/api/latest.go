package api

import (
	"net/http"

	"github.com/ironlog-io/ironlog/internal/server"
)

// LatestHandler returns the most recent log, optionally restricted to
// dates strictly before the "before" query parameter.
func LatestHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		before := r.URL.Query().Get("before")

		result, err := srv.Logbook.Latest(r.Context(), before)
		if err != nil {
			respondServiceError(w, srv, "fetching latest log", err)
			return
		}

		if err := respondJSON(w, http.StatusOK, result); err != nil {
			srv.Logger.Error("error encoding latest response", "error", err)
		}
	})
}
