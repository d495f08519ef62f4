package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/ironlog-io/ironlog/internal/logbook"
	"github.com/ironlog-io/ironlog/internal/server"
)

// decodeRequest decodes a JSON request body into target. Unknown fields
// are ignored.
func decodeRequest(r *http.Request, target interface{}) error {
	return json.NewDecoder(r.Body).Decode(target)
}

// respondJSON writes a JSON response.
func respondJSON(w http.ResponseWriter, statusCode int, v interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}

// respondServiceError maps a logbook error onto the HTTP response: 404
// with the error's message for missing logs, 500 otherwise.
func respondServiceError(w http.ResponseWriter, srv server.Server, what string, err error) {
	if logbook.IsNotFound(err) {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	srv.Logger.Error(fmt.Sprintf("error %s", what), "error", err)
	http.Error(w, fmt.Sprintf("Error %s", what), http.StatusInternalServerError)
}

// parseResourceIDFromURL parses a URL path with the format
// "{apiPath}/{resourceID}" and returns the resource ID.
func parseResourceIDFromURL(url, apiPath string) (string, error) {
	// Remove API path from URL.
	url = strings.TrimPrefix(url, apiPath)

	// Remove empty entries and validate path.
	urlPath := strings.Split(url, "/")
	var resultPath []string
	for _, v := range urlPath {
		// Only append non-empty values, this removes any empty strings in
		// the slice.
		if v != "" {
			resultPath = append(resultPath, v)
		}
	}
	resultPathLen := len(resultPath)
	// Only allow 1 value to be set in the resultPath slice.
	if resultPathLen > 1 {
		return "", fmt.Errorf("invalid URL path")
	}
	// If there are no entries in the resultPath slice, then there was no
	// resource ID set in the URL path.
	if resultPathLen == 0 {
		return "", fmt.Errorf("no resource ID set in URL path")
	}

	return resultPath[0], nil
}
