package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/gratilog/internal/client/client"
	"github.com/dmitrijs2005/gratilog/internal/client/config"
	"github.com/dmitrijs2005/gratilog/internal/client/controller"
	"github.com/dmitrijs2005/gratilog/internal/client/models"
	"github.com/dmitrijs2005/gratilog/internal/client/session"
	"github.com/dmitrijs2005/gratilog/internal/journal"
	"github.com/dmitrijs2005/gratilog/internal/logging"
)

type fakeProvider struct {
	identity models.Identity
	loginErr error
}

func (p *fakeProvider) Restore(context.Context) error { return nil }
func (p *fakeProvider) Login(_ context.Context, username string, _ []byte) error {
	if p.loginErr != nil {
		return p.loginErr
	}
	p.identity = models.Identity{UserID: "uid-" + username, Username: username}
	return nil
}
func (p *fakeProvider) Logout(context.Context) error {
	p.identity = models.Identity{}
	return nil
}
func (p *fakeProvider) IsAuthenticated() bool     { return !p.identity.IsZero() }
func (p *fakeProvider) Identity() models.Identity { return p.identity }

type fakeRegistrar struct {
	user string
	pass []byte
	err  error
}

func (r *fakeRegistrar) Register(_ context.Context, username string, password []byte) error {
	r.user, r.pass = username, append([]byte(nil), password...)
	return r.err
}

type backend struct {
	mine        []journal.Entry
	public      []journal.Entry
	created     []journal.EntryInput
	appreciated []uint64
	deleted     []uint64
	pingErr     error
}

type fakeHandle struct {
	client.Service
	b *backend
}

func (h *fakeHandle) Close() error               { return nil }
func (h *fakeHandle) Ping(context.Context) error { return h.b.pingErr }

func (h *fakeHandle) GetMyEntries(context.Context) ([]journal.Entry, error) {
	return h.b.mine, nil
}

func (h *fakeHandle) GetPublicEntries(context.Context) ([]journal.Entry, error) {
	return h.b.public, nil
}

func (h *fakeHandle) GetMyStats(context.Context) (journal.UserStats, error) {
	return journal.UserStats{TotalEntries: uint64(len(h.b.mine)), AverageMood: 4}, nil
}

func (h *fakeHandle) GetSystemStats(context.Context) (journal.SystemStats, error) {
	return journal.SystemStats{TotalUsers: 2, TotalEntries: 5, TotalPublicEntries: 3, TotalAppreciations: 7}, nil
}

func (h *fakeHandle) CreateEntry(_ context.Context, in journal.EntryInput) (uint64, error) {
	h.b.created = append(h.b.created, in)
	return uint64(len(h.b.created)), nil
}

func (h *fakeHandle) AppreciateEntry(_ context.Context, id uint64) error {
	h.b.appreciated = append(h.b.appreciated, id)
	return nil
}

func (h *fakeHandle) DeleteEntry(_ context.Context, id uint64) error {
	h.b.deleted = append(h.b.deleted, id)
	return nil
}

func (h *fakeHandle) ExportMyEntries(context.Context) (string, error) {
	return "http://storage/export.json", nil
}

type testApp struct {
	*App
	b   *backend
	p   *fakeProvider
	reg *fakeRegistrar
	out *bytes.Buffer
}

func newTestApp(t *testing.T, input string) *testApp {
	t.Helper()

	b := &backend{}
	p := &fakeProvider{}
	reg := &fakeRegistrar{}
	m := session.NewManager(p, func(models.Identity) (client.Service, error) {
		return &fakeHandle{b: b}, nil
	}, logging.Nop{})

	cfg := &config.Config{}
	cfg.LoadDefaults()

	a := newApp(cfg, reg, m, logging.Nop{})
	out := &bytes.Buffer{}
	a.out = out
	a.reader = bufio.NewReader(strings.NewReader(input))
	a.color = false
	require.NoError(t, m.Init(context.Background()))

	orig := getPassword
	getPassword = func(io.Writer) ([]byte, error) { return []byte("secret"), nil }
	t.Cleanup(func() { getPassword = orig })

	return &testApp{App: a, b: b, p: p, reg: reg, out: out}
}

func TestApp_Register(t *testing.T) {
	a := newTestApp(t, "ann\n")

	require.NoError(t, a.Register(context.Background()))
	assert.Equal(t, "ann", a.reg.user)
	assert.Equal(t, []byte("secret"), a.reg.pass)
	assert.Contains(t, a.out.String(), "Success!")

	a.reader = bufio.NewReader(strings.NewReader("ann\n"))
	a.reg.err = &client.RejectedError{Reason: "username already taken"}
	assert.EqualError(t, a.Register(context.Background()), "registration unsuccessful: username already taken")
}

func TestApp_LoginShowsOwnJournal(t *testing.T) {
	a := newTestApp(t, "ann\n")

	require.NoError(t, a.Login(context.Background()))
	assert.True(t, a.isLoggedIn())
	assert.Equal(t, controller.TabMine, a.ctrl.Tab())

	out := a.out.String()
	assert.Contains(t, out, "Welcome, ann!")
	assert.Contains(t, out, "== My Journal ==")
	assert.Contains(t, out, "Start Your Gratitude Journey")
}

func TestApp_LoginFailure(t *testing.T) {
	a := newTestApp(t, "ann\n")
	a.p.loginErr = client.ErrUnauthorized

	err := a.Login(context.Background())
	assert.EqualError(t, err, "login unsuccessful: invalid username or password")
	assert.False(t, a.isLoggedIn())
}

func TestApp_Logout(t *testing.T) {
	a := newTestApp(t, "ann\n")
	ctx := context.Background()
	require.NoError(t, a.Login(ctx))

	require.NoError(t, a.Logout(ctx))
	assert.False(t, a.isLoggedIn())
	assert.Equal(t, controller.TabPublic, a.ctrl.Tab())
	assert.Contains(t, a.out.String(), "No Community Entries Yet")
}

func TestApp_NewEntry(t *testing.T) {
	a := newTestApp(t, "ann\n")
	ctx := context.Background()

	assert.ErrorIs(t, a.NewEntry(ctx), controller.ErrAuthRequired)
	assert.ErrorIs(t, a.ShowTab(ctx, controller.TabMine), controller.ErrAuthRequired)
	require.NoError(t, a.Login(ctx))

	a.reader = bufio.NewReader(strings.NewReader(strings.Join([]string{
		"Coffee",
		"A quiet cup",
		"before work",
		"",
		"3",
		"",
		"y",
	}, "\n") + "\n"))

	require.NoError(t, a.NewEntry(ctx))
	require.Len(t, a.b.created, 1)
	got := a.b.created[0]
	assert.Equal(t, "Coffee", got.Title)
	assert.Equal(t, "A quiet cup\nbefore work", got.Content)
	assert.Equal(t, journal.CategoryWork, got.Category)
	assert.Equal(t, journal.DefaultMood, got.MoodRating)
	assert.True(t, got.IsPublic)
	assert.Contains(t, a.out.String(), "Entry #1 saved.")
}

func TestApp_NewEntryValidation(t *testing.T) {
	a := newTestApp(t, "ann\n")
	ctx := context.Background()
	require.NoError(t, a.Login(ctx))

	a.reader = bufio.NewReader(strings.NewReader("   \ncontent\n\n\n\nn\n"))
	assert.EqualError(t, a.NewEntry(ctx), journal.ErrEmptyTitle.Error())
	assert.Empty(t, a.b.created)
}

func TestApp_Appreciate(t *testing.T) {
	a := newTestApp(t, "ann\n")
	ctx := context.Background()
	a.b.public = []journal.Entry{
		{ID: 1, Author: "uid-ann", Title: "Mine", IsPublic: true},
		{ID: 2, Author: "uid-bob", Title: "Bob's", IsPublic: true},
	}
	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.ShowTab(ctx, controller.TabPublic))

	assert.EqualError(t, a.Appreciate(ctx, 1), "entry 1 cannot be appreciated from here")
	assert.EqualError(t, a.Appreciate(ctx, 9), "entry 9 is not in the current list")

	require.NoError(t, a.Appreciate(ctx, 2))
	assert.Equal(t, []uint64{2}, a.b.appreciated)
	assert.Contains(t, a.out.String(), "Thank you for the appreciation!")
}

func TestApp_Delete(t *testing.T) {
	a := newTestApp(t, "ann\n")
	ctx := context.Background()
	a.b.mine = []journal.Entry{{ID: 4, Author: "uid-ann", Title: "Walk"}}
	require.NoError(t, a.Login(ctx))

	a.reader = bufio.NewReader(strings.NewReader("n\n"))
	require.NoError(t, a.Delete(ctx, 4))
	assert.Empty(t, a.b.deleted)

	a.reader = bufio.NewReader(strings.NewReader("y\n"))
	require.NoError(t, a.Delete(ctx, 4))
	assert.Equal(t, []uint64{4}, a.b.deleted)
	assert.Contains(t, a.out.String(), "Entry deleted.")
}

func TestApp_ExpandAndDismiss(t *testing.T) {
	a := newTestApp(t, "")
	ctx := context.Background()
	a.b.public = []journal.Entry{{ID: 7, Author: "x", Content: strings.Repeat("a", 210)}}
	require.NoError(t, a.ShowTab(ctx, controller.TabPublic))
	assert.Contains(t, a.out.String(), "(read more: expand 7)")

	a.out.Reset()
	require.NoError(t, a.Expand(ctx, 7))
	assert.Contains(t, a.out.String(), strings.Repeat("a", 210))
	assert.Contains(t, a.out.String(), "(show less: expand 7)")

	assert.Error(t, a.Expand(ctx, 8))
	require.NoError(t, a.Dismiss(ctx))
	assert.Empty(t, a.ctrl.Error())
}

func TestApp_Export(t *testing.T) {
	a := newTestApp(t, "ann\n")
	ctx := context.Background()

	assert.EqualError(t, a.Export(ctx, ""), "please log in first")
	require.NoError(t, a.Login(ctx))

	require.NoError(t, a.Export(ctx, ""))
	assert.Contains(t, a.out.String(), "http://storage/export.json")

	var gotURL, gotPath string
	a.download = func(_ context.Context, url, path string) (int64, error) {
		gotURL, gotPath = url, path
		return 42, nil
	}
	require.NoError(t, a.Export(ctx, "/tmp/me.json"))
	assert.Equal(t, "http://storage/export.json", gotURL)
	assert.Equal(t, "/tmp/me.json", gotPath)
	assert.Contains(t, a.out.String(), "Saved 42 bytes to /tmp/me.json")

	a.download = func(context.Context, string, string) (int64, error) { return 0, errors.New("disk full") }
	assert.EqualError(t, a.Export(ctx, "/tmp/me.json"), "download export: disk full")
}

func TestApp_ShowSystemAndStats(t *testing.T) {
	a := newTestApp(t, "ann\n")
	ctx := context.Background()

	require.NoError(t, a.ShowSystem(ctx))
	assert.Contains(t, a.out.String(), "Appreciations:    7")

	assert.ErrorIs(t, a.ShowTab(ctx, controller.TabStats), controller.ErrAuthRequired)

	a.b.mine = []journal.Entry{{ID: 1, Author: "uid-ann"}}
	require.NoError(t, a.Login(ctx))
	require.NoError(t, a.ShowTab(ctx, controller.TabStats))
	assert.Contains(t, a.out.String(), "Average mood:    4.0/5")
	assert.Contains(t, a.out.String(), "Mood trend:      Excellent")
}

func TestApp_StatusAndConnectivity(t *testing.T) {
	a := newTestApp(t, "ann\n")
	ctx := context.Background()

	a.checkOnline(ctx)
	assert.Equal(t, ModeOnline, a.Mode())
	assert.Equal(t, "(online Community)", a.getStatus())

	require.NoError(t, a.Login(ctx))
	a.b.pingErr = client.ErrUnavailable
	a.checkOnline(ctx)
	assert.Equal(t, ModeOffline, a.Mode())
	assert.Equal(t, "(ann offline My Journal)", a.getStatus())
}

func TestApp_OnlineStatusWatcherStops(t *testing.T) {
	a := newTestApp(t, "")
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		a.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return a.Mode() == ModeOnline }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}

	// disabled interval returns immediately
	a.StartOnlineStatusWatcher(context.Background(), 0)
}
