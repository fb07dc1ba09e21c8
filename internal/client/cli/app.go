package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"golang.org/x/term"

	"github.com/dmitrijs2005/gratilog/internal/client/client"
	"github.com/dmitrijs2005/gratilog/internal/client/config"
	"github.com/dmitrijs2005/gratilog/internal/client/controller"
	"github.com/dmitrijs2005/gratilog/internal/client/models"
	sessionrepo "github.com/dmitrijs2005/gratilog/internal/client/repositories/session"
	"github.com/dmitrijs2005/gratilog/internal/client/services"
	"github.com/dmitrijs2005/gratilog/internal/client/session"
	"github.com/dmitrijs2005/gratilog/internal/client/timefmt"
	"github.com/dmitrijs2005/gratilog/internal/client/utils"
	"github.com/dmitrijs2005/gratilog/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

// registrar creates accounts. Registration does not touch the session.
type registrar interface {
	Register(ctx context.Context, username string, password []byte) error
}

// sessions is the part of session.Manager the app drives.
type sessions interface {
	controller.Session
	Init(ctx context.Context) error
	Login(ctx context.Context, username string, password []byte) error
	Logout(ctx context.Context) error
	Close() error
}

type App struct {
	config *config.Config
	auth   registrar
	sess   sessions
	ctrl   *controller.Controller
	clock  timefmt.Formatter
	log    logging.Logger

	reader *bufio.Reader
	out    io.Writer
	color  bool

	download func(ctx context.Context, url, path string) (int64, error)
	closers  []func() error

	modeMu sync.Mutex
	mode   Mode
}

// NewApp opens the local session store and builds the services around it.
// Nothing is sent to the server until Run.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DBPath)
	if err != nil {
		log.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	authClient, err := client.New(c.ServerEndpointAddr,
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(log),
	)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	auth := services.NewAuthService(authClient, sessionrepo.NewSQLiteRepository(db), log)

	factory := func(id models.Identity) (client.Service, error) {
		opts := []client.Option{client.WithTimeout(c.RequestTimeout), client.WithLogger(log)}
		if !id.IsZero() {
			opts = append(opts, client.WithTokens(auth.Tokens()), client.WithTokenHook(auth.UpdateTokens))
		}
		cl, err := client.New(c.ServerEndpointAddr, opts...)
		if err != nil {
			return nil, err
		}
		return cl, nil
	}

	a := newApp(c, auth, session.NewManager(auth, factory, log), log)
	a.closers = append(a.closers, authClient.Close, db.Close)
	return a, nil
}

func newApp(c *config.Config, auth registrar, sess sessions, log logging.Logger) *App {
	return &App{
		config:   c,
		auth:     auth,
		sess:     sess,
		ctrl:     controller.New(sess, log),
		clock:    timefmt.New(),
		log:      log.With("module", "cli"),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
		color:    term.IsTerminal(int(os.Stdout.Fd())),
		download: utils.DownloadToFile,
	}
}

// Run restores the previous session, shows the landing tab and blocks in the
// REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to GratiLog (type 'help' for commands)")

	if err := a.sess.Init(ctx); err != nil {
		a.log.Warn(ctx, "session init failed", "error", err)
	}
	a.checkOnline(ctx)

	watchCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	go a.StartOnlineStatusWatcher(watchCtx, a.config.OnlineCheckInterval)

	a.refreshAndShow(ctx)
	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) Close() {
	if err := a.sess.Close(); err != nil {
		a.log.Warn(context.Background(), "failed to close service handle", "error", err)
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.log.Warn(context.Background(), "close failed", "error", err)
		}
	}
	a.closers = nil
}

func (a *App) isLoggedIn() bool {
	return a.sess.Snapshot().State == session.Authenticated
}

func (a *App) Mode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(ctx, "connectivity changed", "mode", string(mode))
	}
}

func (a *App) checkOnline(ctx context.Context) {
	h := a.sess.Handle()
	if h == nil {
		a.setMode(ctx, ModeOffline)
		return
	}

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	if err := h.Ping(ctx); err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}

// StartOnlineStatusWatcher pings the server every interval until ctx is
// done. A non-positive interval disables the watcher.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// getStatus renders the prompt prefix, e.g. "(ann online My Journal)".
func (a *App) getStatus() string {
	s := ""
	if snap := a.sess.Snapshot(); snap.State == session.Authenticated {
		s = snap.Identity.Username + " "
	}
	if m := a.Mode(); m != "" {
		s += string(m) + " "
	}
	s += a.ctrl.Tab().Label()
	return fmt.Sprintf("(%s)", s)
}
