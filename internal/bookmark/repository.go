// Package bookmark persists the user's saved events.
package bookmark

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/scout/api/internal/event"
)

var ErrNotFound = errors.New("saved event not found")

// Repository stores saved events in the local database, keyed by event ID.
type Repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Add saves an event. Saving an already-saved ID is a no-op; the return value
// reports whether a new row was written.
func (r *Repository) Add(ctx context.Context, ev *event.Event) (bool, error) {
	res, err := r.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO saved_events (id, title, date, time, venue, description, url, event_type, city, image_url, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, ev.ID, ev.Title, ev.Date, nullString(ev.Time), ev.Venue, ev.Description,
		nullString(ev.URL), string(ev.EventType), ev.City, nullString(ev.ImageURL),
		time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return false, err
	}
	rows, _ := res.RowsAffected()
	return rows > 0, nil
}

// Remove deletes a saved event by ID.
func (r *Repository) Remove(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM saved_events WHERE id = ?`, id)
	if err != nil {
		return err
	}
	rows, _ := res.RowsAffected()
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}

// IsSaved reports whether an event ID is in the saved list.
func (r *Repository) IsSaved(ctx context.Context, id string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM saved_events WHERE id = ?`, id).Scan(&n)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

// Clear removes every saved event.
func (r *Repository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM saved_events`)
	return err
}

// List returns all saved events in the order they were saved.
func (r *Repository) List(ctx context.Context) ([]event.Event, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, title, date, time, venue, description, url, event_type, city, image_url
		FROM saved_events ORDER BY saved_at, rowid
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var events []event.Event
	for rows.Next() {
		var ev event.Event
		var eventType string
		var t, u, img sql.NullString
		if err := rows.Scan(&ev.ID, &ev.Title, &ev.Date, &t, &ev.Venue, &ev.Description, &u, &eventType, &ev.City, &img); err != nil {
			return nil, err
		}
		ev.Time = t.String
		ev.URL = u.String
		ev.ImageURL = img.String
		ev.EventType = event.Normalize(eventType)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// nullString returns sql.NullString for optional text fields.
func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
