package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/gratilog/internal/client/client"
	"github.com/dmitrijs2005/gratilog/internal/common"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// describe turns a service error into a line for the user.
func describe(err error) string {
	if reason, ok := client.Reason(err); ok {
		return reason
	}
	switch {
	case errors.Is(err, client.ErrUnavailable):
		return "server unavailable, try again later"
	case errors.Is(err, client.ErrUnauthorized):
		return "invalid username or password"
	case errors.Is(err, common.ErrorInvalidLoginFormat):
		return "username must not be empty"
	}
	return err.Error()
}

// Register prompts for a username and password and creates the account.
// The password byte slice is wiped before returning.
func (a *App) Register(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.auth.Register(ctx, userName, password); err != nil {
		return fmt.Errorf("registration unsuccessful: %s", describe(err))
	}

	fmt.Fprintln(a.out, "Success! You can now log in.")
	return nil
}

// Login prompts for credentials and signs in. On success the view switches
// to the user's own journal.
func (a *App) Login(ctx context.Context) error {
	userName, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out)
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.sess.Login(ctx, userName, password); err != nil {
		return fmt.Errorf("login unsuccessful: %s", describe(err))
	}

	fmt.Fprintf(a.out, "Welcome, %s!\n", a.sess.Snapshot().Identity.Username)
	a.refreshAndShow(ctx)
	return nil
}

// Logout signs out. It cannot fail from the user's point of view.
func (a *App) Logout(ctx context.Context) error {
	if err := a.sess.Logout(ctx); err != nil {
		a.log.Warn(ctx, "logout", "error", err)
	}
	fmt.Fprintln(a.out, "Logged out.")
	a.refreshAndShow(ctx)
	return nil
}
