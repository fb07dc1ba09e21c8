package cli

import (
	"context"
	"errors"
	"fmt"
)

// ShowSystem prints the service-wide counters.
func (a *App) ShowSystem(ctx context.Context) error {
	s, ok := a.ctrl.SystemStats(ctx).Value()
	if !ok {
		return errors.New("failed to fetch community statistics")
	}
	renderSystem(a.out, s)
	return nil
}

// Export publishes the user's entries. With a path the dump is downloaded
// there, otherwise the link is printed.
func (a *App) Export(ctx context.Context, path string) error {
	r := a.ctrl.Export(ctx)
	url, ok := r.Value()
	if !ok {
		return errors.New(r.Reason())
	}

	if path == "" {
		fmt.Fprintf(a.out, "Your export is ready (link valid for a limited time):\n%s\n", url)
		return nil
	}

	n, err := a.download(ctx, url, path)
	if err != nil {
		return fmt.Errorf("download export: %w", err)
	}
	fmt.Fprintf(a.out, "Saved %d bytes to %s\n", n, path)
	return nil
}
