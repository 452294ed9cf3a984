package extract

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/scout/api/internal/event"
)

// maxDescriptionLen is the cutoff beyond which descriptions are truncated.
const maxDescriptionLen = 200

// Build constructs one Event from a single search source. Field extraction is
// best-effort: the type and date/time come from the heuristic extractors, the
// venue defaults to the city, and an empty name gets a placeholder title.
// Returns nil only if something panics mid-extraction; the source is then
// skipped rather than failing the whole batch.
func Build(snippet, name, url, city string, index int) (ev *event.Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered while extracting event", "panic", r, "source", name)
			ev = nil
		}
	}()

	eventType := Classify(name, snippet)

	title := name
	if title == "" {
		title = city + " Tech Event"
	}

	return &event.Event{
		ID:          sourceID(city, index),
		Title:       title,
		Date:        ExtractDate(snippet, name, index),
		Time:        ExtractTime(snippet),
		Venue:       city,
		Description: truncate(snippet, maxDescriptionLen),
		URL:         url,
		EventType:   eventType,
		City:        city,
		ImageURL:    event.ImageURL(eventType),
	}
}

// sourceID builds an ID unique within one response batch. It embeds the
// generation timestamp, so repeated searches for the same content produce
// different IDs.
func sourceID(city string, index int) string {
	slug := strings.ToLower(strings.Join(strings.Fields(city), "-"))
	return fmt.Sprintf("search-%s-%d-%d", slug, index, time.Now().UnixMilli())
}

// truncate cuts s to at most n runes, marking the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
