package api

import (
	"net/http"

	"github.com/ironlog-io/ironlog/internal/server"
	"github.com/ironlog-io/ironlog/pkg/models"
)

// LatestForWorkoutHandler returns the most recent log for a workout type,
// falling back from the manifest's recorded type to a full scan of the
// candidate documents when the strict match misses.
func LatestForWorkoutHandler(srv server.Server) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}

		// The raw parameter must already be an exact workout type; no
		// normalization is applied before validation.
		workoutType := r.URL.Query().Get("type")
		switch workoutType {
		case models.WorkoutTypePush, models.WorkoutTypePull, models.WorkoutTypeLegs:
		default:
			http.Error(w, "type must be one of: push, pull, legs",
				http.StatusBadRequest)
			return
		}
		before := r.URL.Query().Get("before")

		result, err := srv.Logbook.LatestForWorkout(r.Context(), workoutType, before)
		if err != nil {
			respondServiceError(w, srv, "fetching latest log for workout", err)
			return
		}

		if err := respondJSON(w, http.StatusOK, result); err != nil {
			srv.Logger.Error("error encoding workout response", "error", err)
		}
	})
}
