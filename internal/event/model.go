package event

import "strings"

// Type categorizes an event. Unrecognized text maps to TypeOther.
type Type string

const (
	TypeMeetup     Type = "Meetup"
	TypeConference Type = "Conference"
	TypeWorkshop   Type = "Workshop"
	TypeHackathon  Type = "Hackathon"
	TypeOther      Type = "Other"
)

// Types lists every valid event type.
var Types = []Type{TypeMeetup, TypeConference, TypeWorkshop, TypeHackathon, TypeOther}

// Valid reports whether t is one of the enumerated types.
func (t Type) Valid() bool {
	switch t {
	case TypeMeetup, TypeConference, TypeWorkshop, TypeHackathon, TypeOther:
		return true
	}
	return false
}

// Normalize maps arbitrary type text onto the enumeration, defaulting to Other.
func Normalize(s string) Type {
	t := Type(s)
	if t.Valid() {
		return t
	}
	return TypeOther
}

// Event is a single tech event surfaced by a search, with best-effort fields.
// Date is always an ISO calendar date (YYYY-MM-DD); Time, URL and ImageURL may
// be empty.
type Event struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Date        string `json:"date"`
	Time        string `json:"time,omitempty"`
	Venue       string `json:"venue"`
	Description string `json:"description"`
	URL         string `json:"url,omitempty"`
	EventType   Type   `json:"eventType"`
	City        string `json:"city"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

// ImageURL returns the stock image URL for an event type.
func ImageURL(t Type) string {
	return "https://source.unsplash.com/800x600/?technology," + strings.ToLower(string(t))
}
