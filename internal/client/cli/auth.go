package cli

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/healthguard/internal/common"
)

// Login prompts for credentials and signs in. Failed attempts are reported
// through the alert the session manager publishes.
func (a *App) Login(ctx context.Context) error {
	if s := a.sessions.Current(); s != nil {
		a.printf("Already signed in as %s. Log out first.\n", s.User.Username)
		return nil
	}

	username, err := GetSimpleText(a.reader, "Username", a.out)
	if err != nil {
		a.log.Error(ctx, "read username", "error", err)
		return err
	}

	password, err := GetPassword(a.reader, a.out)
	if err != nil {
		a.log.Error(ctx, "read password", "error", err)
		return err
	}
	defer common.WipeByteArray(password)

	msg, err := a.sessions.Login(ctx, username, string(password))
	if err == nil {
		a.println(msg)
	}
	a.drainEvents(ctx)

	switch {
	case err == nil, errors.Is(err, common.ErrUnknownUser), errors.Is(err, common.ErrInvalidPassword):
	case errors.Is(err, common.ErrAlreadyAuthenticated):
		a.println("Already signed in. Log out first.")
	default:
		a.printf("Login is unavailable: %v\n", err)
	}
	return err
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if !a.isLoggedIn() {
		a.println("Not signed in.")
	}
	a.sessions.Logout(ctx)
	a.drainEvents(ctx)
	return nil
}

// WhoAmI prints the signed-in identity.
func (a *App) WhoAmI(ctx context.Context) error {
	s := a.sessions.Current()
	if s == nil {
		a.println("Not signed in.")
		return nil
	}
	a.printf("%s (%s), role %s, signed in %s\n",
		s.User.Name, s.User.Username, s.Role(), s.EstablishedAt.Local().Format("2006-01-02 15:04"))
	return nil
}
