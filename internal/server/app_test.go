package server

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gratilog/internal/logging"
	"github.com/dmitrijs2005/gratilog/internal/server/config"
	"github.com/dmitrijs2005/gratilog/internal/server/repositories/repomanager"
)

type fakeRunner struct {
	err     error
	stopped chan struct{}
}

func (f *fakeRunner) Run(ctx context.Context) error {
	if f.err != nil {
		return f.err
	}
	<-ctx.Done()
	close(f.stopped)
	return nil
}

func newMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	return db, mock
}

func testConfig() *config.Config {
	var c config.Config
	c.LoadDefaults()
	return &c
}

func TestNewApp_OpenError(t *testing.T) {
	orig := openDB
	t.Cleanup(func() { openDB = orig })
	openDB = func(context.Context, string) (*sql.DB, error) { return nil, errors.New("no route") }

	_, err := NewApp(context.Background(), testConfig(), logging.Nop{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db init error")
}

func TestNewApp_RegistersEndpoints(t *testing.T) {
	db, _ := newMockDB(t)
	m := repomanager.NewPostgresRepositoryManager()

	app := newApp(testConfig(), logging.Nop{}, db, m)
	assert.Contains(t, app.runners, "grpc")
	assert.Contains(t, app.runners, "http")

	c := testConfig()
	c.EndpointAddrHTTP = ""
	app = newApp(c, logging.Nop{}, db, m)
	assert.Contains(t, app.runners, "grpc")
	assert.NotContains(t, app.runners, "http")
}

func TestApp_Run_StopsOnCancel(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectClose()

	a := &fakeRunner{stopped: make(chan struct{})}
	b := &fakeRunner{stopped: make(chan struct{})}
	app := &App{config: testConfig(), logger: logging.Nop{}, db: db, runners: map[string]runner{"a": a, "b": b}}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(3 * time.Second):
		t.Fatal("app did not stop")
	}
	<-a.stopped
	<-b.stopped
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApp_Run_FailureStopsOthers(t *testing.T) {
	db, mock := newMockDB(t)
	mock.ExpectClose()

	ok := &fakeRunner{stopped: make(chan struct{})}
	bad := &fakeRunner{err: errors.New("address in use")}
	app := &App{config: testConfig(), logger: logging.Nop{}, db: db, runners: map[string]runner{"grpc": bad, "http": ok}}

	err := app.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "grpc: address in use")
	<-ok.stopped
	assert.NoError(t, mock.ExpectationsWereMet())
}
