package testutil

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/scout/api/internal/database"
	"github.com/scout/api/internal/event"
)

// TestDB creates an in-memory SQLite database with migrations applied.
// The database is automatically closed when the test completes.
func TestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := database.Open(":memory:")
	if err != nil {
		t.Fatalf("opening test database: %v", err)
	}

	if err := db.Migrate(); err != nil {
		db.Close()
		t.Fatalf("running migrations: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})

	return db.DB
}

// SampleEvent returns a valid event with a distinguishing suffix in its
// identity fields.
func SampleEvent(n int) event.Event {
	return event.Event{
		ID:          fmt.Sprintf("evt-%d", n),
		Title:       fmt.Sprintf("Go Meetup #%d", n),
		Date:        "2025-06-15",
		Time:        "7:00 PM",
		Venue:       "Berlin",
		Description: "An evening of Go talks and networking.",
		URL:         fmt.Sprintf("https://example.com/events/%d", n),
		EventType:   event.TypeMeetup,
		City:        "Berlin",
		ImageURL:    event.ImageURL(event.TypeMeetup),
	}
}

// CreateSavedEvent inserts a saved event directly in the database.
func CreateSavedEvent(t *testing.T, db *sql.DB, ev event.Event) {
	t.Helper()

	_, err := db.ExecContext(context.Background(), `
		INSERT INTO saved_events (id, title, date, time, venue, description, url, event_type, city, image_url, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ev.ID, ev.Title, ev.Date, ev.Time, ev.Venue, ev.Description, ev.URL,
		string(ev.EventType), ev.City, ev.ImageURL, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		t.Fatalf("creating saved event: %v", err)
	}
}
