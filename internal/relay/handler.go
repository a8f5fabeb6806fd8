package relay

import (
	"encoding/json"
	"net/http"

	"foodrelay/pkg/logging"
	pkgstrings "foodrelay/pkg/strings"
)

const contentTypeJSON = "application/json"

// errorResponse is the body of every local failure.
type errorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP handles GET /search?q=<text>.
func (r *Relay) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	query := req.URL.Query().Get("q")

	result, err := r.Search(req.Context(), query)
	if err != nil {
		logging.Error("Relay", err, "Search for %q failed", query)
		writeError(w, err)
		return
	}

	if result.StatusCode >= http.StatusBadRequest {
		logging.Warn("Relay", "Upstream answered %d for %q: %s", result.StatusCode, query, pkgstrings.ForLog(result.Body))
	} else {
		logging.Debug("Relay", "Upstream answered %d (%d bytes) for %q", result.StatusCode, len(result.Body), query)
	}

	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(result.StatusCode)
	if _, err := w.Write(result.Body); err != nil {
		logging.Debug("Relay", "Failed to write response body: %v", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	w.Header().Set("Content-Type", contentTypeJSON)
	w.WriteHeader(http.StatusInternalServerError)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
