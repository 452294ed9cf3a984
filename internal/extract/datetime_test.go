package extract

import (
	"testing"
	"time"
)

func TestExtractDate(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		title   string
		want    string
	}{
		{
			name:    "month name with comma",
			snippet: "Join the AI Summit on January 15, 2025 at 9:00 AM",
			want:    "2025-01-15",
		},
		{
			name:    "month name without comma",
			snippet: "happening March 3 2026 downtown",
			want:    "2026-03-03",
		},
		{
			name:    "lower case month name",
			snippet: "doors open on december 1, 2025",
			want:    "2025-12-01",
		},
		{
			name:    "iso date",
			snippet: "Registration closes 2025-11-30.",
			want:    "2025-11-30",
		},
		{
			name:    "numeric day first",
			snippet: "Save the date: 15/1/2025",
			want:    "2025-01-15",
		},
		{
			name:    "numeric with dashes",
			snippet: "on 15-1-2025 at the main hall",
			want:    "2025-01-15",
		},
		{
			name:    "date in title only",
			snippet: "Biggest developer gathering of the year",
			title:   "DevCon on February 20, 2025",
			want:    "2025-02-20",
		},
		{
			name:    "snippet wins over title",
			snippet: "rescheduled to 2025-05-02",
			title:   "DevCon 2025-05-01",
			want:    "2025-05-02",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractDate(tt.snippet, tt.title, 0)
			if got != tt.want {
				t.Errorf("ExtractDate(%q, %q, 0) = %q, want %q", tt.snippet, tt.title, got, tt.want)
			}
		})
	}
}

func TestExtractDate_PatternPriority(t *testing.T) {
	// The numeric pattern is tried before the ISO pattern, so the numeric
	// match wins even though both are present.
	got := ExtractDate("either 15/1/2025 or 2025-06-30", "", 0)
	if got != "2025-01-15" {
		t.Errorf("ExtractDate = %q, want %q", got, "2025-01-15")
	}
}

func TestExtractDate_Fallback(t *testing.T) {
	for _, idx := range []int{0, 3, 9} {
		got := ExtractDate("no date in here at all", "nor here", idx)
		want := time.Now().AddDate(0, 0, idx).Format("2006-01-02")
		if got != want {
			t.Errorf("ExtractDate fallback idx=%d = %q, want %q", idx, got, want)
		}
	}
}

func TestExtractDate_RejectsInvalidCalendarDate(t *testing.T) {
	// "45/13/2025" matches the numeric pattern but no layout parses it, so
	// the fallback applies.
	got := ExtractDate("meet on 45/13/2025", "", 2)
	want := time.Now().AddDate(0, 0, 2).Format("2006-01-02")
	if got != want {
		t.Errorf("ExtractDate = %q, want fallback %q", got, want)
	}
}

func TestExtractTime(t *testing.T) {
	tests := []struct {
		name    string
		snippet string
		want    string
	}{
		{name: "upper case", snippet: "doors at 9:00 AM sharp", want: "9:00 AM"},
		{name: "lower case", snippet: "starts 7:30 pm", want: "7:30 pm"},
		{name: "no space", snippet: "from 6:15PM onwards", want: "6:15PM"},
		{name: "first match wins", snippet: "from 6:00 PM to 9:00 PM", want: "6:00 PM"},
		{name: "absent", snippet: "an all-day affair", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ExtractTime(tt.snippet)
			if got != tt.want {
				t.Errorf("ExtractTime(%q) = %q, want %q", tt.snippet, got, tt.want)
			}
		})
	}
}

func TestExtractTime_IgnoresTitle(t *testing.T) {
	// Only the snippet is consulted for times; there is no title fallback.
	if got := ExtractTime("no time here"); got != "" {
		t.Errorf("ExtractTime = %q, want empty", got)
	}
}
