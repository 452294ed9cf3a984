package extract

import (
	"strings"

	"github.com/scout/api/internal/event"
)

// keywordTypes maps text keywords to event types. Order matters: the first
// keyword found in either field wins, so a title containing both "summit" and
// "meetup" classifies as Meetup. Kept as a slice, not a map, to preserve
// iteration order.
var keywordTypes = []struct {
	keyword   string
	eventType event.Type
}{
	{"meetup", event.TypeMeetup},
	{"conference", event.TypeConference},
	{"workshop", event.TypeWorkshop},
	{"hackathon", event.TypeHackathon},
	{"summit", event.TypeConference},
	{"networking", event.TypeMeetup},
	{"seminar", event.TypeWorkshop},
}

// Classify determines the event type from free text. The title is checked
// before the snippet for each keyword. Returns TypeOther when nothing matches.
func Classify(title, snippet string) event.Type {
	title = strings.ToLower(title)
	snippet = strings.ToLower(snippet)
	for _, kt := range keywordTypes {
		if strings.Contains(title, kt.keyword) || strings.Contains(snippet, kt.keyword) {
			return kt.eventType
		}
	}
	return event.TypeOther
}
