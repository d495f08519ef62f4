package api

import (
	"fmt"
	"net/http"

	"github.com/ironlog-io/ironlog/internal/server"
	"github.com/ironlog-io/ironlog/pkg/models"
)

// LogsPostResponse is returned after a successful save.
type LogsPostResponse struct {
	OK     bool   `json:"ok"`
	File   string `json:"file"`
	SHA256 string `json:"sha256"`
}

// LogsHandler saves a workout log: the per-date document is upserted and
// the manifest entry is replaced or inserted.
func LogsHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		var log models.WorkoutLog
		if err := decodeRequest(r, &log); err != nil {
			srv.Logger.Error("error decoding log request", "error", err)
			http.Error(w, fmt.Sprintf("Bad request: %q", err),
				http.StatusBadRequest)
			return
		}

		log.Normalize()
		if err := log.Validate(); err != nil {
			http.Error(w, fmt.Sprintf("Invalid log: %v", err),
				http.StatusBadRequest)
			return
		}

		result, err := srv.Logbook.SaveLog(r.Context(), &log)
		if err != nil {
			srv.Logger.Error("error saving log", "error", err, "date", log.Date)
			http.Error(w, "Error saving log", http.StatusInternalServerError)
			return
		}

		resp := LogsPostResponse{
			OK:     true,
			File:   result.File,
			SHA256: result.SHA256,
		}
		if err := respondJSON(w, http.StatusOK, resp); err != nil {
			srv.Logger.Error("error encoding save response", "error", err)
		}
	})
}
