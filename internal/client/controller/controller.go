// Package controller holds the client's screen state: the active tab, the
// last fetched list or statistics, expanded entries and the single
// dismissible error. It talks to the journal service only through the handle
// of the current session.
package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/gratilog/internal/client/client"
	"github.com/dmitrijs2005/gratilog/internal/client/session"
	"github.com/dmitrijs2005/gratilog/internal/client/timefmt"
	"github.com/dmitrijs2005/gratilog/internal/client/viewmodel"
	"github.com/dmitrijs2005/gratilog/internal/journal"
	"github.com/dmitrijs2005/gratilog/internal/logging"
)

const (
	failedFetch  = "Failed to fetch entries"
	failedCreate = "Failed to create entry. Please try again."
	failedSystem = "Failed to fetch statistics"
	failedExport = "Failed to export entries"
)

var ErrAuthRequired = errors.New("please log in first")

// Session is the part of session.Manager the controller depends on.
type Session interface {
	Snapshot() session.Snapshot
	IsCurrent(gen uint64) bool
	Handle() client.Service
	Subscribe(fn func(session.Snapshot))
}

type Controller struct {
	sess    Session
	actions *viewmodel.Actions
	log     logging.Logger

	mu       sync.Mutex
	tab      Tab
	entries  []journal.Entry
	stats    *journal.UserStats
	expanded map[uint64]bool
	errMsg   string
}

// New returns a controller on the public tab and subscribes it to session
// transitions.
func New(sess Session, log logging.Logger) *Controller {
	c := &Controller{
		sess:     sess,
		actions:  viewmodel.NewActions(sess, log),
		log:      log.With("module", "controller"),
		tab:      TabPublic,
		expanded: make(map[uint64]bool),
	}
	sess.Subscribe(c.onSession)
	return c
}

// onSession moves to my-entries after login and away from auth-only tabs
// after logout. Data fetched under the previous identity is dropped.
func (c *Controller) onSession(s session.Snapshot) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch {
	case s.State == session.Authenticated && c.tab == TabPublic:
		c.tab = TabMine
	case s.State == session.Anonymous && c.tab.RequiresAuth():
		c.tab = TabPublic
	}
	c.entries = nil
	c.stats = nil
	c.expanded = make(map[uint64]bool)
}

func (c *Controller) Tab() Tab {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab
}

// SetTab switches the active tab. Auth-only tabs are refused when anonymous.
func (c *Controller) SetTab(t Tab) error {
	if t.RequiresAuth() && c.sess.Snapshot().State != session.Authenticated {
		return ErrAuthRequired
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tab != t {
		c.tab = t
		c.entries = nil
		c.stats = nil
	}
	return nil
}

func (c *Controller) Viewer() viewmodel.Viewer {
	s := c.sess.Snapshot()
	return viewmodel.Viewer{
		Authenticated: s.State == session.Authenticated,
		Principal:     s.Identity.UserID,
	}
}

// Refresh fetches the data of the active tab. A response that arrives after
// the session or the tab changed is discarded.
func (c *Controller) Refresh(ctx context.Context) {
	snap := c.sess.Snapshot()
	if !snap.Ready {
		return
	}

	c.mu.Lock()
	tab := c.tab
	c.errMsg = ""
	c.mu.Unlock()

	if snap.Handle == nil {
		c.setError(failedFetch)
		return
	}

	switch tab {
	case TabMine:
		entries, err := snap.Handle.GetMyEntries(ctx)
		c.applyEntries(snap.Generation, tab, client.AsResult(entries, err, failedFetch), err)
	case TabPublic:
		entries, err := snap.Handle.GetPublicEntries(ctx)
		c.applyEntries(snap.Generation, tab, client.AsResult(entries, err, failedFetch), err)
	case TabStats:
		stats, err := snap.Handle.GetMyStats(ctx)
		if !c.current(snap.Generation, tab) {
			return
		}
		if err != nil {
			// an unavailable dashboard is shown as empty, not as an error
			c.log.Warn(ctx, "failed to fetch stats", "error", err)
			c.mu.Lock()
			c.stats = nil
			c.mu.Unlock()
			return
		}
		c.mu.Lock()
		c.stats = &stats
		c.mu.Unlock()
	}
}

func (c *Controller) applyEntries(gen uint64, tab Tab, r journal.Result[[]journal.Entry], err error) {
	if !c.current(gen, tab) {
		c.log.Debug(context.Background(), "dropping stale entries", "tab", string(tab))
		return
	}
	if err != nil {
		c.log.Warn(context.Background(), "failed to fetch entries", "tab", string(tab), "error", err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	r.Match(
		func(entries []journal.Entry) { c.entries = entries },
		func(reason string) { c.errMsg = reason },
	)
}

func (c *Controller) current(gen uint64, tab Tab) bool {
	if !c.sess.IsCurrent(gen) {
		return false
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.tab == tab
}

// Create validates and submits a new entry. On success the view switches to
// my-entries and is re-fetched. The failure reason is meant for the entry
// form, not for the page-level error.
func (c *Controller) Create(ctx context.Context, in journal.EntryInput) journal.Result[uint64] {
	snap := c.sess.Snapshot()
	if snap.State != session.Authenticated || snap.Handle == nil {
		return journal.Fail[uint64](ErrAuthRequired.Error())
	}
	if err := in.Validate(); err != nil {
		return journal.Fail[uint64](err.Error())
	}

	id, err := snap.Handle.CreateEntry(ctx, in)
	if err != nil {
		c.log.Warn(ctx, "failed to create entry", "error", err)
	}
	r := client.AsResult(id, err, failedCreate)
	if !r.IsOk() {
		return r
	}

	_ = c.SetTab(TabMine)
	c.Refresh(ctx)
	return r
}

// Appreciate endorses entry id and re-fetches on success.
func (c *Controller) Appreciate(ctx context.Context, id uint64) viewmodel.Outcome {
	gen := c.sess.Snapshot().Generation
	return c.afterAction(ctx, gen, c.actions.RequestAppreciate(ctx, id))
}

// Delete removes entry id and re-fetches on success.
func (c *Controller) Delete(ctx context.Context, id uint64) viewmodel.Outcome {
	gen := c.sess.Snapshot().Generation
	return c.afterAction(ctx, gen, c.actions.RequestDelete(ctx, id))
}

// afterAction applies out to the view unless the session changed while the
// action ran; a stale outcome is returned but leaves the view untouched.
func (c *Controller) afterAction(ctx context.Context, gen uint64, out viewmodel.Outcome) viewmodel.Outcome {
	if !c.sess.IsCurrent(gen) {
		c.log.Debug(ctx, "dropping action outcome from previous session", "status", out.Status.String())
		return out
	}
	switch out.Status {
	case viewmodel.Succeeded:
		c.Refresh(ctx)
	case viewmodel.Failed:
		c.setError(out.Reason)
	}
	return out
}

// Busy reports whether an action on entry id is still running.
func (c *Controller) Busy(id uint64) bool {
	return c.actions.Busy(id)
}

// SystemStats fetches the service-wide counters. It needs no sign-in.
func (c *Controller) SystemStats(ctx context.Context) journal.Result[journal.SystemStats] {
	h := c.sess.Handle()
	if h == nil {
		return journal.Fail[journal.SystemStats](failedSystem)
	}
	s, err := h.GetSystemStats(ctx)
	return client.AsResult(s, err, failedSystem)
}

// Export asks the service to publish the caller's entries and returns the
// download URL.
func (c *Controller) Export(ctx context.Context) journal.Result[string] {
	snap := c.sess.Snapshot()
	if snap.State != session.Authenticated || snap.Handle == nil {
		return journal.Fail[string](ErrAuthRequired.Error())
	}
	url, err := snap.Handle.ExportMyEntries(ctx)
	if err != nil {
		c.log.Warn(ctx, "export failed", "error", err)
	}
	return client.AsResult(url, err, failedExport)
}

// Entries returns the last fetched list in service order.
func (c *Controller) Entries() []journal.Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]journal.Entry(nil), c.entries...)
}

// Entry looks up id in the last fetched list.
func (c *Controller) Entry(id uint64) (journal.Entry, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, e := range c.entries {
		if e.ID == id {
			return e, true
		}
	}
	return journal.Entry{}, false
}

// EntryViews derives the cards of the active list.
func (c *Controller) EntryViews(f timefmt.Formatter) []viewmodel.EntryView {
	v := c.Viewer()

	c.mu.Lock()
	defer c.mu.Unlock()

	lc := listContext(c.tab)
	out := make([]viewmodel.EntryView, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, viewmodel.BuildEntryView(e, v, lc, c.expanded[e.ID], f))
	}
	return out
}

// ListContext tells how entries of the active tab are shown.
func (c *Controller) ListContext() viewmodel.ListContext {
	c.mu.Lock()
	defer c.mu.Unlock()
	return listContext(c.tab)
}

func listContext(t Tab) viewmodel.ListContext {
	if t == TabMine {
		return viewmodel.ListMine
	}
	return viewmodel.ListPublic
}

// Stats returns the dashboard, false when nothing could be fetched.
func (c *Controller) Stats() (viewmodel.StatsView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stats == nil {
		return viewmodel.StatsView{}, false
	}
	return viewmodel.BuildStatsView(*c.stats), true
}

// ToggleExpanded flips the read-more state of entry id and returns the new
// state.
func (c *Controller) ToggleExpanded(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.expanded[id] = !c.expanded[id]
	return c.expanded[id]
}

func (c *Controller) Error() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errMsg
}

func (c *Controller) DismissError() {
	c.setError("")
}

func (c *Controller) setError(msg string) {
	c.mu.Lock()
	c.errMsg = msg
	c.mu.Unlock()
}
