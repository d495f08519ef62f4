package api

import (
	"net/http"

	"github.com/ironlog-io/ironlog/internal/server"
	"github.com/ironlog-io/ironlog/pkg/models"
)

// ByDateHandler returns the raw log document for an exact date. Routes
// requests of the form "/logs/by-date/{date}".
func ByDateHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		date, err := parseResourceIDFromURL(r.URL.Path, "/logs/by-date")
		if err != nil {
			srv.Logger.Error("error parsing date from URL",
				"error", err, "path", r.URL.Path)
			http.Error(w, "Bad request: invalid URL path", http.StatusBadRequest)
			return
		}
		if _, err := models.ParseDate(date); err != nil {
			http.Error(w, "date must be YYYY-MM-DD", http.StatusBadRequest)
			return
		}

		doc, err := srv.Logbook.ByDate(r.Context(), date)
		if err != nil {
			respondServiceError(w, srv, "fetching log", err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(doc); err != nil {
			srv.Logger.Error("error writing log response", "error", err)
		}
	})
}
