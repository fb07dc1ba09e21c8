// Package httpapi exposes a read-only JSON view of the journal over HTTP:
// health, the public feed and service-wide counters.
package httpapi

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrijs2005/gratilog/internal/journal"
	"github.com/dmitrijs2005/gratilog/internal/logging"
)

type publicFeed interface {
	ListPublic(ctx context.Context) ([]journal.Entry, error)
}

type systemStats interface {
	SystemStats(ctx context.Context) (journal.SystemStats, error)
}

// Pinger reports whether storage is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

type entryJSON struct {
	ID            uint64    `json:"id"`
	Author        string    `json:"author"`
	Title         string    `json:"title"`
	Content       string    `json:"content"`
	Category      string    `json:"category"`
	MoodRating    int       `json:"mood_rating"`
	CreatedAt     time.Time `json:"created_at"`
	Appreciations uint64    `json:"appreciations"`
}

type systemStatsJSON struct {
	TotalUsers         uint64 `json:"total_users"`
	TotalEntries       uint64 `json:"total_entries"`
	TotalPublicEntries uint64 `json:"total_public_entries"`
	TotalAppreciations uint64 `json:"total_appreciations"`
}

type handlers struct {
	feed   publicFeed
	stats  systemStats
	db     Pinger
	logger logging.Logger
}

// NewRouter builds the gateway routes.
func NewRouter(feed publicFeed, stats systemStats, db Pinger, l logging.Logger) http.Handler {
	h := &handlers{feed: feed, stats: stats, db: db, logger: l}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)

	r.Get("/healthz", h.health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/entries/public", h.publicEntries)
		r.Get("/stats/system", h.systemStats)
	})
	return r
}

func (h *handlers) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		h.logger.Debug(r.Context(), "HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
			"duration", time.Since(start),
		)
	})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	if err := h.db.PingContext(r.Context()); err != nil {
		h.logger.Warn(r.Context(), "health check failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"status": "UNAVAILABLE"})
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}

func (h *handlers) publicEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := h.feed.ListPublic(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "list public entries failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}

	out := make([]entryJSON, 0, len(entries))
	for _, e := range entries {
		out = append(out, entryJSON{
			ID:            e.ID,
			Author:        e.Author,
			Title:         e.Title,
			Content:       e.Content,
			Category:      string(e.Category),
			MoodRating:    e.MoodRating,
			CreatedAt:     time.Unix(0, e.CreatedAt).UTC(),
			Appreciations: e.Appreciations,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *handlers) systemStats(w http.ResponseWriter, r *http.Request) {
	s, err := h.stats.SystemStats(r.Context())
	if err != nil {
		h.logger.Error(r.Context(), "system stats failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, systemStatsJSON{
		TotalUsers:         s.TotalUsers,
		TotalEntries:       s.TotalEntries,
		TotalPublicEntries: s.TotalPublicEntries,
		TotalAppreciations: s.TotalAppreciations,
	})
}
