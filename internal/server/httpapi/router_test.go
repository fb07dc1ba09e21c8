package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gratilog/internal/journal"
	"github.com/dmitrijs2005/gratilog/internal/logging"
)

type fakeFeed struct {
	entries []journal.Entry
	err     error
}

func (f *fakeFeed) ListPublic(context.Context) ([]journal.Entry, error) { return f.entries, f.err }

type fakeStats struct {
	stats journal.SystemStats
	err   error
}

func (f *fakeStats) SystemStats(context.Context) (journal.SystemStats, error) { return f.stats, f.err }

type fakePinger struct{ err error }

func (f *fakePinger) PingContext(context.Context) error { return f.err }

func serve(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealth(t *testing.T) {
	tests := []struct {
		name     string
		pingErr  error
		wantCode int
		wantBody string
	}{
		{"ok", nil, http.StatusOK, "OK"},
		{"db down", errors.New("conn refused"), http.StatusServiceUnavailable, "UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewRouter(&fakeFeed{}, &fakeStats{}, &fakePinger{err: tt.pingErr}, logging.Nop{})
			rec := serve(t, h, "/healthz")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantBody, body["status"])
		})
	}
}

func TestPublicEntries(t *testing.T) {
	created := time.Date(2024, 5, 1, 8, 30, 0, 0, time.UTC)
	feed := &fakeFeed{entries: []journal.Entry{
		{ID: 2, Author: "u2", Title: "Sun", Content: "Bright", Category: journal.CategoryHealth, MoodRating: 5, IsPublic: true, CreatedAt: created.UnixNano(), Appreciations: 3},
		{ID: 1, Author: "u1", Title: "Tea", Content: "Warm", Category: journal.CategoryOther, MoodRating: 4, IsPublic: true},
	}}
	h := NewRouter(feed, &fakeStats{}, &fakePinger{}, logging.Nop{})

	rec := serve(t, h, "/api/entries/public")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []entryJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	require.Len(t, got, 2)
	assert.Equal(t, uint64(2), got[0].ID)
	assert.Equal(t, "Health", got[0].Category)
	assert.True(t, created.Equal(got[0].CreatedAt))
	assert.Equal(t, uint64(3), got[0].Appreciations)
	assert.Equal(t, "Tea", got[1].Title)
}

func TestPublicEntries_EmptyIsArray(t *testing.T) {
	h := NewRouter(&fakeFeed{}, &fakeStats{}, &fakePinger{}, logging.Nop{})

	rec := serve(t, h, "/api/entries/public")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestPublicEntries_Error(t *testing.T) {
	h := NewRouter(&fakeFeed{err: errors.New("boom")}, &fakeStats{}, &fakePinger{}, logging.Nop{})

	rec := serve(t, h, "/api/entries/public")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"internal error"}`, rec.Body.String())
}

func TestSystemStats(t *testing.T) {
	stats := &fakeStats{stats: journal.SystemStats{TotalUsers: 4, TotalEntries: 10, TotalPublicEntries: 6, TotalAppreciations: 12}}
	h := NewRouter(&fakeFeed{}, stats, &fakePinger{}, logging.Nop{})

	rec := serve(t, h, "/api/stats/system")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"total_users":4,"total_entries":10,"total_public_entries":6,"total_appreciations":12}`,
		rec.Body.String())
}

func TestSystemStats_Error(t *testing.T) {
	h := NewRouter(&fakeFeed{}, &fakeStats{err: errors.New("boom")}, &fakePinger{}, logging.Nop{})

	rec := serve(t, h, "/api/stats/system")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestUnknownRoute(t *testing.T) {
	h := NewRouter(&fakeFeed{}, &fakeStats{}, &fakePinger{}, logging.Nop{})

	rec := serve(t, h, "/api/entries/mine")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	s := NewServer("127.0.0.1:0", NewRouter(&fakeFeed{}, &fakeStats{}, &fakePinger{}, logging.Nop{}), logging.Nop{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestServer_RunBadAddress(t *testing.T) {
	s := NewServer("bad-address", http.NotFoundHandler(), logging.Nop{})
	assert.Error(t, s.Run(context.Background()))
}
