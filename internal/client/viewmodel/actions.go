package viewmodel

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gratilog/internal/client/client"
	"github.com/dmitrijs2005/gratilog/internal/logging"
)

const (
	failedAppreciate = "Failed to appreciate entry"
	failedDelete     = "Failed to delete entry"
)

// Status is the kind of an Outcome.
type Status int

const (
	Succeeded Status = iota
	Failed
	// Skipped means an action on the same entry was already in flight;
	// nothing was sent.
	Skipped
)

func (s Status) String() string {
	switch s {
	case Succeeded:
		return "success"
	case Failed:
		return "failure"
	case Skipped:
		return "skipped"
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Outcome is the result of a user-triggered mutation. Reason is set for
// failures only.
type Outcome struct {
	Status Status
	Reason string
}

func success() Outcome              { return Outcome{Status: Succeeded} }
func failure(reason string) Outcome { return Outcome{Status: Failed, Reason: reason} }
func skipped() Outcome              { return Outcome{Status: Skipped} }

// HandleSource yields the service handle of the current session.
type HandleSource interface {
	Handle() client.Service
}

// Actions runs appreciate and delete requests with one single-flight guard
// per entry shared by both actions. It never panics and never returns an
// error: every failure becomes an Outcome.
type Actions struct {
	src HandleSource
	log logging.Logger

	mu       sync.Mutex
	inFlight map[uint64]struct{}
}

func NewActions(src HandleSource, log logging.Logger) *Actions {
	return &Actions{
		src:      src,
		log:      log.With("module", "actions"),
		inFlight: make(map[uint64]struct{}),
	}
}

// RequestAppreciate endorses entry id on behalf of the current identity.
func (a *Actions) RequestAppreciate(ctx context.Context, id uint64) Outcome {
	return a.run(ctx, id, failedAppreciate, func(s client.Service) error {
		return s.AppreciateEntry(ctx, id)
	})
}

// RequestDelete removes entry id. Asking the user for confirmation is the
// caller's job.
func (a *Actions) RequestDelete(ctx context.Context, id uint64) Outcome {
	return a.run(ctx, id, failedDelete, func(s client.Service) error {
		return s.DeleteEntry(ctx, id)
	})
}

// Busy reports whether any action on entry id is in flight.
func (a *Actions) Busy(id uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	_, ok := a.inFlight[id]
	return ok
}

func (a *Actions) acquire(id uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if _, ok := a.inFlight[id]; ok {
		return false
	}
	a.inFlight[id] = struct{}{}
	return true
}

func (a *Actions) release(id uint64) {
	a.mu.Lock()
	delete(a.inFlight, id)
	a.mu.Unlock()
}

func (a *Actions) run(ctx context.Context, id uint64, fallback string, call func(client.Service) error) (out Outcome) {
	if !a.acquire(id) {
		return skipped()
	}
	defer a.release(id)

	defer func() {
		if p := recover(); p != nil {
			a.log.Error(ctx, "action panicked", "entry_id", id, "panic", p)
			out = failure(fallback)
		}
	}()

	svc := a.src.Handle()
	if svc == nil {
		return failure(fallback)
	}

	err := call(svc)
	if err == nil {
		return success()
	}
	if reason, ok := client.Reason(err); ok {
		return failure(reason)
	}
	a.log.Warn(ctx, "action failed", "entry_id", id, "error", err)
	return failure(fallback)
}
