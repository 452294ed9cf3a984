package extract

import (
	"log/slog"
	"regexp"
	"strings"

	"github.com/scout/api/internal/event"
	"github.com/scout/api/internal/linkup"
)

var lineBreaks = regexp.MustCompile(`\n+`)

// eventWords qualify a free-text line for event extraction.
var eventWords = []string{"event", "meetup", "conference", "workshop", "hackathon"}

// Parse turns a search response into an ordered event list. It tries the
// response sources first, then event-like lines of the answer text, and
// finally falls back to synthetic placeholders, so the result is never empty
// and no failure propagates to the caller.
func Parse(resp *linkup.Response, city string) []event.Event {
	if events := parseResponse(resp, city); len(events) > 0 {
		return events
	}
	slog.Info("no events parsed from search response, using synthetic data", "city", city)
	return Synthetic(city)
}

// parseResponse runs extraction stages one and two, converting any panic into
// an empty result so Parse degrades to synthetic data.
func parseResponse(resp *linkup.Response, city string) (events []event.Event) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("recovered while parsing search response", "panic", r, "city", city)
			events = nil
		}
	}()

	if resp == nil {
		return nil
	}

	for i, src := range resp.Sources {
		if ev := Build(src.Snippet, src.Name, src.URL, city, i); ev != nil {
			events = append(events, *ev)
		}
	}
	if len(events) > 0 {
		return events
	}

	return parseAnswerText(resp.Answer, city)
}

// parseAnswerText extracts events from the free-text answer, one per line
// that is long enough and mentions an event keyword. The line serves as both
// title and snippet; the index passed to the builder is the line's position
// in the full answer, qualifying or not.
func parseAnswerText(text, city string) []event.Event {
	var events []event.Event
	for i, line := range lineBreaks.Split(text, -1) {
		if len(line) <= 20 || !mentionsEvent(line) {
			continue
		}
		if ev := Build(line, line, "", city, i); ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

func mentionsEvent(line string) bool {
	line = strings.ToLower(line)
	for _, w := range eventWords {
		if strings.Contains(line, w) {
			return true
		}
	}
	return false
}
