package extract

import (
	"testing"

	"github.com/scout/api/internal/event"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		snippet string
		want    event.Type
	}{
		{
			name:  "meetup in title",
			title: "Go Meetup Berlin",
			want:  event.TypeMeetup,
		},
		{
			name:    "conference in snippet only",
			title:   "TechFest 2025",
			snippet: "The annual developer conference returns this fall",
			want:    event.TypeConference,
		},
		{
			name:  "summit maps to conference",
			title: "AI Summit 2025",
			want:  event.TypeConference,
		},
		{
			name:  "networking maps to meetup",
			title: "Startup Networking Night",
			want:  event.TypeMeetup,
		},
		{
			name:  "seminar maps to workshop",
			title: "Cloud Security Seminar",
			want:  event.TypeWorkshop,
		},
		{
			name:  "case insensitive",
			title: "HACKATHON WEEKEND",
			want:  event.TypeHackathon,
		},
		{
			name:  "no keyword",
			title: "Annual Gala Dinner",
			want:  event.TypeOther,
		},
		{
			name:    "empty input",
			title:   "",
			snippet: "",
			want:    event.TypeOther,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.title, tt.snippet)
			if got != tt.want {
				t.Errorf("Classify(%q, %q) = %q, want %q", tt.title, tt.snippet, got, tt.want)
			}
		})
	}
}

// The keyword table is checked in declaration order, so "meetup" beats
// "summit" even when both appear.
func TestClassify_OrderSensitive(t *testing.T) {
	got := Classify("Tech Summit Meetup", "")
	if got != event.TypeMeetup {
		t.Errorf("Classify = %q, want %q (meetup precedes summit in the table)", got, event.TypeMeetup)
	}

	got = Classify("Hackathon Workshop", "")
	if got != event.TypeWorkshop {
		t.Errorf("Classify = %q, want %q (workshop precedes hackathon in the table)", got, event.TypeWorkshop)
	}
}

func TestClassify_SnippetDoesNotOutrankTitleKeywordOrder(t *testing.T) {
	// The table order decides, not which field matched: "meetup" in the
	// snippet beats "summit" in the title.
	got := Classify("AI Summit", "join the community meetup afterwards")
	if got != event.TypeMeetup {
		t.Errorf("Classify = %q, want %q", got, event.TypeMeetup)
	}
}
