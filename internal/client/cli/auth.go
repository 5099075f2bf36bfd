package cli

import (
	"context"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/router"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
	"github.com/dmitrijs2005/fictionalpotato/internal/common"
)

// getSimpleText, getPassword and confirm are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var (
	getSimpleText = GetSimpleText
	getPassword   = GetPassword
	confirm       = Confirm
)

// settled reports whether the active screen is not waiting on the network.
func settled(v router.View) bool {
	return !screens.InFlight(v.Screen)
}

// send delivers events to the router in order and waits until the resulting
// screen has settled.
func (a *App) send(ctx context.Context, events ...screens.Event) error {
	for _, ev := range events {
		if _, err := a.program.Do(ctx, router.Input(ev)); err != nil {
			return err
		}
	}
	_, err := a.program.Await(ctx, settled)
	return err
}

// Login prompts for an identifier and a password, fills the login form with
// them and submits it. Server errors end up in the form's error slots and are
// shown by the next render; only I/O and shutdown errors are returned.
func (a *App) Login(ctx context.Context) error {
	identifier, err := getSimpleText(a.reader, "Enter username or email", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	return a.send(ctx,
		screens.LoginIdentifierChanged{Value: identifier},
		screens.LoginPasswordChanged{Value: string(password)},
		screens.LoginSubmitted{},
	)
}

// Register prompts for a username, a password and its confirmation and
// submits the register form. Validation failures are shown by the next
// render.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter username", a.out)
	if err != nil {
		return err
	}

	password, err := getPassword(a.out, "Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	confirmation, err := getPassword(a.out, "Confirm password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(confirmation)

	return a.send(ctx,
		screens.RegisterUsernameChanged{Value: username},
		screens.RegisterPasswordChanged{Value: string(password)},
		screens.RegisterConfirmChanged{Value: string(confirmation)},
		screens.RegisterSubmitted{},
	)
}

func (a *App) ShowRegister(ctx context.Context) error {
	return a.send(ctx, screens.LoginSwitchToRegister{})
}

func (a *App) ShowLogin(ctx context.Context) error {
	return a.send(ctx, screens.RegisterSwitchToLogin{})
}

func (a *App) Focus(ctx context.Context, forward bool) error {
	var msg router.Msg = router.FocusPrevious{}
	if forward {
		msg = router.FocusNext{}
	}
	_, err := a.program.Do(ctx, msg)
	return err
}

// Logout opens the logout dialog and asks for confirmation. Declining closes
// the dialog again.
func (a *App) Logout(ctx context.Context) error {
	if err := a.send(ctx, screens.HomeShowDialog{Dialog: screens.DialogLogout}); err != nil {
		return err
	}

	ok, err := confirm(a.reader, "Log out?", a.out)
	if err != nil {
		return err
	}
	if !ok {
		return a.send(ctx, screens.HomeHideDialog{})
	}
	return a.send(ctx, screens.HomeLogoutConfirmed{})
}
