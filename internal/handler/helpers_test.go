package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/scout/api/internal/bookmark"
	"github.com/scout/api/internal/cache"
	"github.com/scout/api/internal/linkup"
	"github.com/scout/api/internal/testutil"
)

// stubSearcher is a scripted linkup.Searcher.
type stubSearcher struct {
	resp    *linkup.Response
	err     error
	calls   int
	queries []string
}

func (s *stubSearcher) Search(_ context.Context, query string) (*linkup.Response, error) {
	s.calls++
	s.queries = append(s.queries, query)
	return s.resp, s.err
}

// testRouter wires a Handler with an in-memory database and the given
// searcher behind the real route layout.
func testRouter(t *testing.T, searcher linkup.Searcher) http.Handler {
	t.Helper()

	db := testutil.TestDB(t)
	h := New(Dependencies{
		Searcher: searcher,
		Cache:    cache.New(time.Hour, 0),
		Saved:    bookmark.NewRepository(db),
	})

	r := chi.NewRouter()
	r.Get("/api/events", h.GetEvents)
	r.Route("/api/saved", func(r chi.Router) {
		r.Get("/", h.ListSaved)
		r.Post("/", h.SaveEvent)
		r.Delete("/", h.ClearSaved)
		r.Get("/{id}", h.CheckSaved)
		r.Delete("/{id}", h.RemoveSaved)
	})
	return r
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatal(err)
		}
		req = httptest.NewRequest(method, target, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeEvents(t *testing.T, rec *httptest.ResponseRecorder) eventsResponse {
	t.Helper()

	var out eventsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decoding response: %v\n%s", err, rec.Body.String())
	}
	return out
}

func sampleSourcedAnswer() *linkup.Response {
	return &linkup.Response{
		Answer: "Found one event.",
		Sources: []linkup.Source{
			{Name: "AI Summit 2025", Snippet: "Join the AI Summit on January 15, 2025 at 9:00 AM", URL: "http://x"},
		},
	}
}
