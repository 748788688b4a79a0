// Package http is the REST boundary of the checkout service. Handlers
// decode and shape-validate requests, call into the app layer and map
// domain errors to status codes; business rules live below this line.
package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type errorBody struct {
	Message string `json:"message"`
}

// writeJSON serializes v with the given status. A nil v writes just
// the header.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	if v == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("failed to encode response", slog.Any("error", err))
	}
}

// writeError maps err to a status code and a {"message": ...} body.
// Internal errors are logged and masked; domain errors pass their
// message through.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		slog.Error("request failed", slog.Any("error", err))
		msg = "internal server error"
	}
	writeJSON(w, status, errorBody{Message: msg})
}

// writeList serializes a list, answering 204 for an empty one.
func writeList[T any](w http.ResponseWriter, items []T) {
	if len(items) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	writeJSON(w, http.StatusOK, items)
}
