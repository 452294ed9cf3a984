package handler

import (
	"log/slog"
	"net/http"
	"regexp"
	"strings"

	"github.com/scout/api/internal/extract"
)

const (
	defaultQuery = "tech events"
	demoCity     = "Demo City"

	mockDataWarning = "Using mock data due to API error"
)

// cityPattern pulls a city label out of "... in <city>" style queries.
var cityPattern = regexp.MustCompile(`(?i)(?:in|at|@)\s+([A-Za-z\s]+)`)

// GetEvents handles GET /api/events?query=<q>. The query (alias: city) is
// looked up in the cache first; on a miss the search API is called and its
// response run through the extraction pipeline. A failed search call degrades
// to synthetic demo events with a warning rather than an error, and the cache
// is not written in that case.
func (h *Handler) GetEvents(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	if query == "" {
		query = r.URL.Query().Get("city")
	}
	if query == "" {
		query = defaultQuery
	}

	key := strings.ToLower(query)
	if events, ok := h.cache.Get(key); ok {
		writeJSON(w, http.StatusOK, eventsResponse{Events: events, Cached: true})
		return
	}

	resp, err := h.searcher.Search(r.Context(), enhanceQuery(query))
	if err != nil {
		slog.Warn("search API failed, serving mock data", "query", query, "error", err)
		writeJSON(w, http.StatusOK, eventsResponse{
			Events:  extract.Synthetic(demoCity),
			Cached:  false,
			Warning: mockDataWarning,
		})
		return
	}

	events := extract.Parse(resp, extractCity(query))
	h.cache.Set(key, events)

	writeJSON(w, http.StatusOK, eventsResponse{Events: events, Cached: false})
}

// extractCity returns the city named after "in", "at" or "@" in the query, or
// "Global" when the query names none.
func extractCity(query string) string {
	if m := cityPattern.FindStringSubmatch(query); len(m) > 1 {
		if city := strings.TrimSpace(m[1]); city != "" {
			return city
		}
	}
	return "Global"
}

// enhanceQuery appends event keywords to queries that carry none, steering
// the search API toward actual event listings.
func enhanceQuery(query string) string {
	lower := strings.ToLower(query)
	for _, w := range []string{"event", "meetup", "conference"} {
		if strings.Contains(lower, w) {
			return query
		}
	}
	return query + " tech events"
}
