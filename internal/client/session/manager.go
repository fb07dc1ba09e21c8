// Package session tracks who is signed in and owns the service handle bound
// to that identity. Every transition installs a fresh handle and bumps a
// generation counter, so callers can tell whether a response they are holding
// still belongs to the current session.
package session

import (
	"context"
	"fmt"
	"sync"

	"github.com/dmitrijs2005/gratilog/internal/client/client"
	"github.com/dmitrijs2005/gratilog/internal/client/models"
	"github.com/dmitrijs2005/gratilog/internal/logging"
)

type State int

const (
	Anonymous State = iota
	Authenticated
)

func (s State) String() string {
	if s == Authenticated {
		return "authenticated"
	}
	return "anonymous"
}

// IdentityProvider authenticates the user and remembers the result.
type IdentityProvider interface {
	Restore(ctx context.Context) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	IsAuthenticated() bool
	Identity() models.Identity
}

// HandleFactory builds a service handle for id. A zero id asks for an
// anonymous handle.
type HandleFactory func(id models.Identity) (client.Service, error)

// Snapshot is a consistent view of the session at one point in time.
type Snapshot struct {
	Ready      bool
	State      State
	Identity   models.Identity
	Handle     client.Service
	Generation uint64
}

type Manager struct {
	provider IdentityProvider
	factory  HandleFactory
	log      logging.Logger

	mu       sync.RWMutex
	ready    bool
	state    State
	identity models.Identity
	handle   client.Service
	gen      uint64

	subsMu sync.Mutex
	subs   []func(Snapshot)
}

func NewManager(p IdentityProvider, f HandleFactory, log logging.Logger) *Manager {
	return &Manager{
		provider: p,
		factory:  f,
		log:      log.With("module", "session"),
	}
}

// Init restores a previous session if there is one. A failed restore is
// logged and leaves the session anonymous; the manager is ready either way.
func (m *Manager) Init(ctx context.Context) error {
	if err := m.provider.Restore(ctx); err != nil {
		m.log.Warn(ctx, "session restore failed", "error", err)
	}
	return m.install(ctx)
}

// Login signs in. On failure the session is left as it was and the error is
// returned for the caller to show.
func (m *Manager) Login(ctx context.Context, username string, password []byte) error {
	if err := m.provider.Login(ctx, username, password); err != nil {
		m.log.Info(ctx, "login failed", "error", err)
		return err
	}
	return m.install(ctx)
}

// Logout always ends up anonymous. Provider failures are only logged.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.provider.Logout(ctx); err != nil {
		m.log.Warn(ctx, "logout cleanup failed", "error", err)
	}
	return m.install(ctx)
}

// install replaces the handle to match the provider's current identity.
func (m *Manager) install(ctx context.Context) error {
	id := models.Identity{}
	state := Anonymous
	if m.provider.IsAuthenticated() {
		id = m.provider.Identity()
		state = Authenticated
	}

	h, err := m.factory(id)
	if err != nil {
		m.log.Error(ctx, "failed to build service handle", "error", err)
		h = nil
	}

	m.mu.Lock()
	old := m.handle
	m.ready = true
	m.state = state
	m.identity = id
	m.handle = h
	m.gen++
	snap := m.snapshotLocked()
	m.mu.Unlock()

	if old != nil {
		if cerr := old.Close(); cerr != nil {
			m.log.Warn(ctx, "failed to close previous handle", "error", cerr)
		}
	}

	m.notify(snap)

	if err != nil {
		return fmt.Errorf("build handle: %w", err)
	}
	return nil
}

func (m *Manager) snapshotLocked() Snapshot {
	return Snapshot{
		Ready:      m.ready,
		State:      m.state,
		Identity:   m.identity,
		Handle:     m.handle,
		Generation: m.gen,
	}
}

func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.snapshotLocked()
}

// Handle returns the current service handle, nil before Init.
func (m *Manager) Handle() client.Service {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.handle
}

// IsCurrent reports whether gen is still the live generation.
func (m *Manager) IsCurrent(gen uint64) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.gen == gen
}

// Subscribe registers fn to be called after every transition.
func (m *Manager) Subscribe(fn func(Snapshot)) {
	m.subsMu.Lock()
	m.subs = append(m.subs, fn)
	m.subsMu.Unlock()
}

func (m *Manager) notify(s Snapshot) {
	m.subsMu.Lock()
	subs := append([]func(Snapshot){}, m.subs...)
	m.subsMu.Unlock()

	for _, fn := range subs {
		fn(s)
	}
}

// Close releases the current handle.
func (m *Manager) Close() error {
	m.mu.Lock()
	h := m.handle
	m.handle = nil
	m.mu.Unlock()

	if h == nil {
		return nil
	}
	return h.Close()
}
