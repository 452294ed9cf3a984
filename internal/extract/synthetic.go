package extract

import (
	"fmt"
	"strings"
	"time"

	"github.com/scout/api/internal/event"
)

const syntheticCount = 10

var syntheticTypes = []event.Type{
	event.TypeMeetup,
	event.TypeConference,
	event.TypeWorkshop,
	event.TypeHackathon,
}

var syntheticVenues = []string{
	"Innovation Hub",
	"Tech Center",
	"Startup Campus",
	"Convention Center",
	"Community Space",
}

// Synthetic generates a deterministic-shape placeholder list of ten events
// for a city, cycling through the four concrete event types and five venue
// names, with sequential future dates starting tomorrow. Used as the
// last-resort fallback when nothing real could be extracted.
func Synthetic(city string) []event.Event {
	now := time.Now()
	events := make([]event.Event, 0, syntheticCount)
	for i := 0; i < syntheticCount; i++ {
		t := syntheticTypes[i%len(syntheticTypes)]
		events = append(events, event.Event{
			ID:          fmt.Sprintf("%s-%d-%d", city, now.UnixMilli(), i),
			Title:       fmt.Sprintf("%s Tech %s #%d", city, t, i+1),
			Date:        now.AddDate(0, 0, i+1).Format(isoDate),
			Time:        fmt.Sprintf("%d:00 PM", i%12+6),
			Venue:       fmt.Sprintf("%s, %s", syntheticVenues[i%len(syntheticVenues)], city),
			Description: syntheticDescription(t),
			URL:         fmt.Sprintf("https://example.com/events/%d", i),
			EventType:   t,
			City:        city,
			ImageURL:    event.ImageURL(t),
		})
	}
	return events
}

func syntheticDescription(t event.Type) string {
	return fmt.Sprintf("Join us for an exciting %s featuring industry experts, "+
		"networking opportunities, and hands-on sessions. Learn about the latest "+
		"trends in technology and connect with fellow professionals.",
		strings.ToLower(string(t)))
}
