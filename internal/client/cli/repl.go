package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrijs2005/gratilog/internal/client/controller"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	ShowTab(ctx context.Context, tab controller.Tab) error
	ShowSystem(ctx context.Context) error
	NewEntry(ctx context.Context) error
	Appreciate(ctx context.Context, id uint64) error
	Delete(ctx context.Context, id uint64) error
	Expand(ctx context.Context, id uint64) error
	Dismiss(ctx context.Context) error
	Export(ctx context.Context, path string) error
}

// runREPL reads one line at a time from reader and executes it through a
// command tree built for the current login state, so "help" lists only what
// is available right now. Command errors are printed and the loop goes on.
// The loop exits on EOF or when the user types "exit" or "quit".
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("gratilog %s > ", statusFn()))

		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "exit", "quit":
			printlnFn("Bye!")
			return
		}

		cmd := newCommandTree(ctx, a)
		cmd.SetArgs(parts)
		if err := cmd.Execute(); err != nil {
			printlnFn("Error:", err)
		}

		if errors.Is(err, io.EOF) {
			return
		}
	}
}

func parseID(s string) (uint64, error) {
	id, err := strconv.ParseUint(strings.TrimPrefix(s, "#"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid entry id %q", s)
	}
	return id, nil
}

// idCommand builds a command taking a single entry id.
func idCommand(use, short string, hidden bool, run func(id uint64) error) *cobra.Command {
	return &cobra.Command{
		Use:    use + " <id>",
		Short:  short,
		Hidden: hidden,
		Args:   cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return run(id)
		},
	}
}

// simpleCommand builds a command without arguments.
func simpleCommand(use, short string, hidden bool, run func() error, aliases ...string) *cobra.Command {
	return &cobra.Command{
		Use:     use,
		Short:   short,
		Hidden:  hidden,
		Aliases: aliases,
		Args:    cobra.NoArgs,
		RunE:    func(*cobra.Command, []string) error { return run() },
	}
}

func newCommandTree(ctx context.Context, a execIface) *cobra.Command {
	loggedIn := a.isLoggedIn()

	root := &cobra.Command{
		Use:           "gratilog",
		Short:         "GratiLog gratitude journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		simpleCommand("register", "create an account", loggedIn, func() error { return a.Register(ctx) }),
		simpleCommand("login", "sign in", loggedIn, func() error { return a.Login(ctx) }),
		simpleCommand("logout", "sign out", !loggedIn, func() error { return a.Logout(ctx) }),

		simpleCommand("mine", "show my journal", !loggedIn, func() error {
			return a.ShowTab(ctx, controller.TabMine)
		}, "my", "l", "list"),
		simpleCommand("public", "show community entries", false, func() error {
			return a.ShowTab(ctx, controller.TabPublic)
		}, "community"),
		simpleCommand("stats", "show my analytics", !loggedIn, func() error {
			return a.ShowTab(ctx, controller.TabStats)
		}, "analytics"),
		simpleCommand("system", "show community totals", false, func() error { return a.ShowSystem(ctx) }),

		simpleCommand("new", "write a new entry", !loggedIn, func() error { return a.NewEntry(ctx) }, "add"),
		idCommand("appreciate", "appreciate a community entry", !loggedIn, func(id uint64) error {
			return a.Appreciate(ctx, id)
		}),
		idCommand("delete", "delete one of my entries", !loggedIn, func(id uint64) error {
			return a.Delete(ctx, id)
		}),
		idCommand("expand", "read more or less of an entry", false, func(id uint64) error {
			return a.Expand(ctx, id)
		}),
		simpleCommand("dismiss", "clear the last error", false, func() error { return a.Dismiss(ctx) }),
		&cobra.Command{
			Use:    "export [path]",
			Short:  "export my entries as JSON",
			Hidden: !loggedIn,
			Args:   cobra.MaximumNArgs(1),
			RunE: func(_ *cobra.Command, args []string) error {
				path := ""
				if len(args) == 1 {
					path = args[0]
				}
				return a.Export(ctx, path)
			},
		},
	)

	return root
}
