package handler

import (
	"encoding/json"
	"net/http"

	"github.com/scout/api/internal/event"
)

type eventsResponse struct {
	Events  []event.Event `json:"events"`
	Cached  bool          `json:"cached"`
	Warning string        `json:"warning,omitempty"`
}

type savedResponse struct {
	Events []event.Event `json:"events"`
}

type savedStatusResponse struct {
	Saved bool `json:"saved"`
}

type errorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	details := "Unknown error"
	if err != nil {
		details = err.Error()
	}
	writeJSON(w, status, errorResponse{Error: msg, Details: details})
}
