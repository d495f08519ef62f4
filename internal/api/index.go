package api

import (
	"net/http"

	"github.com/ironlog-io/ironlog/internal/server"
	"github.com/ironlog-io/ironlog/pkg/manifest"
)

// IndexResponse lists all known logs by date.
type IndexResponse struct {
	Entries []manifest.Entry `json:"entries"`
}

// IndexHandler returns the manifest entries, sorted by date ascending.
// When no manifest document exists the entries are rebuilt from the
// folder's date-named files.
func IndexHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		entries, err := srv.Logbook.Entries(r.Context())
		if err != nil {
			respondServiceError(w, srv, "listing logs", err)
			return
		}

		if err := respondJSON(w, http.StatusOK, IndexResponse{Entries: entries}); err != nil {
			srv.Logger.Error("error encoding index response", "error", err)
		}
	})
}
