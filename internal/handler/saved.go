package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/scout/api/internal/bookmark"
	"github.com/scout/api/internal/event"
)

// ListSaved handles GET /api/saved.
func (h *Handler) ListSaved(w http.ResponseWriter, r *http.Request) {
	events, err := h.saved.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list saved events", err)
		return
	}
	if events == nil {
		events = []event.Event{}
	}
	writeJSON(w, http.StatusOK, savedResponse{Events: events})
}

// SaveEvent handles POST /api/saved. The body is a full Event record; saving
// an already-saved ID is a no-op and answers 200 instead of 201.
func (h *Handler) SaveEvent(w http.ResponseWriter, r *http.Request) {
	var ev event.Event
	if err := json.NewDecoder(r.Body).Decode(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event payload", err)
		return
	}
	if err := validateEvent(&ev); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid event payload", err)
		return
	}

	added, err := h.saved.Add(r.Context(), &ev)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save event", err)
		return
	}
	status := http.StatusOK
	if added {
		status = http.StatusCreated
	}
	writeJSON(w, status, ev)
}

// CheckSaved handles GET /api/saved/{id}.
func (h *Handler) CheckSaved(w http.ResponseWriter, r *http.Request) {
	saved, err := h.saved.IsSaved(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to check saved event", err)
		return
	}
	writeJSON(w, http.StatusOK, savedStatusResponse{Saved: saved})
}

// RemoveSaved handles DELETE /api/saved/{id}.
func (h *Handler) RemoveSaved(w http.ResponseWriter, r *http.Request) {
	err := h.saved.Remove(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, bookmark.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Saved event not found", err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to remove saved event", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ClearSaved handles DELETE /api/saved.
func (h *Handler) ClearSaved(w http.ResponseWriter, r *http.Request) {
	if err := h.saved.Clear(r.Context()); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to clear saved events", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// validateEvent enforces the invariants every stored event must satisfy:
// non-empty identity fields, a parseable ISO date and a known event type.
func validateEvent(ev *event.Event) error {
	switch {
	case ev.ID == "":
		return errors.New("id is required")
	case ev.Title == "":
		return errors.New("title is required")
	case ev.City == "":
		return errors.New("city is required")
	case ev.Description == "":
		return errors.New("description is required")
	}
	if _, err := time.Parse("2006-01-02", ev.Date); err != nil {
		return errors.New("date must be a valid YYYY-MM-DD date")
	}
	ev.EventType = event.Normalize(string(ev.EventType))
	if ev.Venue == "" {
		ev.Venue = ev.City
	}
	return nil
}
