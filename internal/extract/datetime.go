package extract

import (
	"regexp"
	"strings"
	"time"
)

// isoDate is the wire format for event dates.
const isoDate = "2006-01-02"

// datePatterns are tried in priority order. For each pattern the snippet is
// checked before the title; the first match that parses as a real calendar
// date wins.
var datePatterns = []struct {
	re      *regexp.Regexp
	layouts []string
}{
	{
		// Word boundaries keep this from matching the tail of an ISO date.
		re: regexp.MustCompile(`\b\d{1,2}[-/]\d{1,2}[-/]\d{2,4}\b`),
		// Day-first layouts take priority for ambiguous numeric dates.
		layouts: []string{
			"2/1/2006", "2-1-2006", "2/1/06", "2-1-06",
			"1/2/2006", "1-2-2006", "1/2/06", "1-2-06",
		},
	},
	{
		re: regexp.MustCompile(`(?i)(?:January|February|March|April|May|June|July|August|September|October|November|December)\s+\d{1,2},?\s+\d{4}`),
		layouts: []string{
			"January 2, 2006", "January 2 2006",
		},
	},
	{
		re:      regexp.MustCompile(`\b\d{4}-\d{2}-\d{2}\b`),
		layouts: []string{isoDate},
	},
}

var timePattern = regexp.MustCompile(`(?i)\d{1,2}:\d{2}\s*(?:AM|PM)`)

// ExtractDate scans the snippet and title for a date expression and returns it
// as an ISO date string. When no pattern yields a valid calendar date, it
// synthesizes today's date plus fallbackIdx days.
func ExtractDate(snippet, title string, fallbackIdx int) string {
	for _, p := range datePatterns {
		match := p.re.FindString(snippet)
		if match == "" {
			match = p.re.FindString(title)
		}
		if match == "" {
			continue
		}
		if d, ok := parseDate(match, p.layouts); ok {
			return d.Format(isoDate)
		}
	}
	return time.Now().AddDate(0, 0, fallbackIdx).Format(isoDate)
}

// ExtractTime returns the first "H:MM AM/PM" expression in the snippet, or ""
// when none is present. The title is deliberately not consulted.
func ExtractTime(snippet string) string {
	return timePattern.FindString(snippet)
}

// parseDate tries each layout against a canonicalized form of the matched
// text. Rejecting unparseable matches here is what filters out strings like
// "13-45-2025" that the numeric pattern accepts.
func parseDate(match string, layouts []string) (time.Time, bool) {
	match = canonicalize(match)
	for _, layout := range layouts {
		if d, err := time.Parse(layout, match); err == nil {
			return d, true
		}
	}
	return time.Time{}, false
}

// canonicalize collapses runs of whitespace and title-cases the leading word
// so case-insensitive month matches line up with time.Parse layouts.
func canonicalize(s string) string {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return s
	}
	first := fields[0]
	fields[0] = strings.ToUpper(first[:1]) + strings.ToLower(first[1:])
	return strings.Join(fields, " ")
}
