package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
)

var ErrUnknownModal = errors.New("unknown modal")

func (a *App) WhoAmI(_ context.Context) error {
	v := a.view()
	if !v.SignedIn() {
		printlnFn("Not signed in")
		return nil
	}

	u := v.Session.User
	printlnFn(fmt.Sprintf("%s (@%s, id %s)", u.Name(), u.Username, u.ID))
	if !v.Session.ExpiresAt.IsZero() {
		printlnFn("Access token expires at", v.Session.ExpiresAt.Local().Format("2006-01-02 15:04:05"))
	}
	return nil
}

func (a *App) OpenModal(ctx context.Context, name string) error {
	m, ok := screens.ParseModal(name)
	if !ok {
		return fmt.Errorf("%w %q, expected one of %s", ErrUnknownModal, name, strings.Join(screens.ModalNames(), ", "))
	}
	return a.send(ctx, screens.HomeShowModal{Modal: m})
}

// CloseOverlays closes whatever modal and dialog are open.
func (a *App) CloseOverlays(ctx context.Context) error {
	return a.send(ctx, screens.HomeHideDialog{}, screens.HomeHideModal{})
}
