package api

import (
	"net/http"
	"strings"

	"github.com/ironlog-io/ironlog/internal/server"
)

// LatestForMuscleHandler returns the most recent log containing an
// exercise that targets the given muscle label, scanning candidate
// documents newest first.
func LatestForMuscleHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		muscle := r.URL.Query().Get("muscle")
		if strings.TrimSpace(muscle) == "" {
			http.Error(w, "muscle query parameter is required",
				http.StatusBadRequest)
			return
		}
		before := r.URL.Query().Get("before")

		result, err := srv.Logbook.LatestForMuscle(r.Context(), muscle, before)
		if err != nil {
			respondServiceError(w, srv, "fetching latest log for muscle", err)
			return
		}

		if err := respondJSON(w, http.StatusOK, result); err != nil {
			srv.Logger.Error("error encoding muscle response", "error", err)
		}
	})
}
