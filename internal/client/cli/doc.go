// Package cli provides the interactive GratiLog terminal client.
//
// It wires configuration, the local session store, the identity provider,
// the session manager and the screen controller, then runs a
// read-eval-print loop. Each input line is dispatched through a cobra
// command tree built for the current login state.
//
// Commands:
//   - register / login / logout
//   - mine / public / stats: switch tab and fetch
//   - new: write an entry
//   - appreciate, delete, expand: act on an entry of the current list by id
//   - system: service-wide counters
//   - export [path]: download a JSON dump of one's own entries
//   - dismiss: clear the last error
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
