package router

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/api"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
	"github.com/dmitrijs2005/fictionalpotato/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- fakes ----

type fakeAuth struct {
	mu sync.Mutex

	session    models.Session
	loginErr   error
	restoreErr error
	logoutErr  error

	logins    int
	registers int
	logouts   int
}

func (f *fakeAuth) Login(context.Context, string, string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logins++
	return f.session, f.loginErr
}

func (f *fakeAuth) Register(context.Context, string, string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registers++
	return f.session, f.loginErr
}

func (f *fakeAuth) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	return f.logoutErr
}

func (f *fakeAuth) Restore(context.Context) (models.Session, error) {
	return f.session, f.restoreErr
}

func aliceSession() models.Session {
	return models.Session{
		User:         models.PublicUser{ID: uuid.New(), Username: "alice"},
		AccessToken:  "access",
		RefreshToken: "refresh",
	}
}

// ---- helpers ----

// step runs msg and every command it produces synchronously.
func step(t *testing.T, r *Router, msg Msg) {
	t.Helper()
	for cmd := r.Update(msg); cmd != nil; {
		next := cmd(context.Background())
		if next == nil {
			return
		}
		cmd = r.Update(next)
	}
}

func newRouterAt(t *testing.T, auth *fakeAuth, restoreOK bool) *Router {
	t.Helper()
	r := New(auth, logging.Discard())
	if restoreOK {
		r.Update(SessionRestored{Session: auth.session})
	} else {
		r.Update(SessionRestored{Err: errors.New("no token")})
	}
	return r
}

// ---- tests ----

func TestRouter_StartsLoading(t *testing.T) {
	r := New(&fakeAuth{}, logging.Discard())
	v := r.View()

	assert.Equal(t, screens.Loading{}, v.Screen)
	assert.False(t, v.SignedIn())
	assert.NotNil(t, r.Init())
}

func TestRouter_RestoreFailureGoesToLogin(t *testing.T) {
	auth := &fakeAuth{restoreErr: errors.New("not authenticated")}
	r := New(auth, logging.Discard())

	step(t, r, r.Init()(context.Background()))

	assert.Equal(t, screens.NewLoginState(), r.View().Screen)
	assert.False(t, r.View().SignedIn())
	assert.Zero(t, auth.logins)
	assert.Zero(t, auth.registers)
}

func TestRouter_RestoreSuccessGoesHome(t *testing.T) {
	auth := &fakeAuth{session: aliceSession()}
	r := New(auth, logging.Discard())

	step(t, r, r.Init()(context.Background()))

	v := r.View()
	require.True(t, v.SignedIn())
	assert.Equal(t, "refresh", v.Session.RefreshToken)
	assert.Equal(t, screens.NewHomeState(auth.session.User), v.Screen)
}

func TestRouter_LateRestoreIgnored(t *testing.T) {
	auth := &fakeAuth{}
	r := newRouterAt(t, auth, false)
	before := r.View()

	r.Update(SessionRestored{Session: aliceSession()})

	assert.Equal(t, before, r.View())
}

func TestRouter_LoginSuccess(t *testing.T) {
	auth := &fakeAuth{session: aliceSession()}
	r := newRouterAt(t, auth, false)

	step(t, r, Input(screens.LoginIdentifierChanged{Value: "alice"}))
	step(t, r, Input(screens.LoginPasswordChanged{Value: "secret"}))
	step(t, r, Input(screens.LoginSubmitted{}))

	v := r.View()
	require.True(t, v.SignedIn())
	assert.NotEmpty(t, v.Session.RefreshToken)
	assert.Equal(t, screens.KindHome, v.Screen.Kind())
	assert.Equal(t, 1, auth.logins)
}

func TestRouter_LoginFailure(t *testing.T) {
	auth := &fakeAuth{loginErr: &api.ServerError{Status: 401, Message: "Invalid credentials"}}
	r := newRouterAt(t, auth, false)

	step(t, r, Input(screens.LoginSubmitted{}))

	v := r.View()
	assert.False(t, v.SignedIn())
	s, ok := v.Screen.(screens.LoginState)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", s.IdentifierError)
	assert.Equal(t, "Invalid credentials", s.PasswordError)
	assert.False(t, s.InFlight)
}

func TestRouter_EventForInactiveScreenIsInert(t *testing.T) {
	auth := &fakeAuth{session: aliceSession()}
	r := newRouterAt(t, auth, true)
	before := r.View()

	events := []screens.Event{
		screens.LoginIdentifierChanged{Value: "mallory"},
		screens.LoginSubmitted{},
		screens.LoginFailed{Message: "boom"},
		screens.RegisterSwitchToLogin{},
	}
	for _, ev := range events {
		assert.Nil(t, r.Update(Input(ev)))
		assert.Nil(t, r.Update(ScreenMsg{Event: ev, epoch: before.Epoch}))
	}

	assert.Equal(t, before, r.View())
	assert.Zero(t, auth.logins)
}

func TestRouter_SwitchRoundTripResetsState(t *testing.T) {
	auth := &fakeAuth{loginErr: &api.ServerError{Status: 409, Message: "Username taken"}}
	r := newRouterAt(t, auth, false)

	step(t, r, Input(screens.LoginIdentifierChanged{Value: "alice"}))
	step(t, r, Input(screens.LoginSubmitted{}))
	require.NotEmpty(t, r.View().Screen.(screens.LoginState).IdentifierError)

	step(t, r, Input(screens.LoginSwitchToRegister{}))
	assert.Equal(t, screens.NewRegisterState(), r.View().Screen)

	step(t, r, Input(screens.RegisterUsernameChanged{Value: "bob"}))
	step(t, r, Input(screens.RegisterPasswordChanged{Value: "password1"}))
	step(t, r, Input(screens.RegisterConfirmChanged{Value: "password1"}))
	step(t, r, Input(screens.RegisterSubmitted{}))
	require.Equal(t, "Username taken", r.View().Screen.(screens.RegisterState).UsernameError)

	step(t, r, Input(screens.RegisterSwitchToLogin{}))
	assert.Equal(t, screens.NewLoginState(), r.View().Screen)
}

func TestRouter_StaleResultDropped(t *testing.T) {
	auth := &fakeAuth{loginErr: &api.ServerError{Status: 401, Message: "Invalid credentials"}}
	r := newRouterAt(t, auth, false)

	cmd := r.Update(Input(screens.LoginSubmitted{}))
	require.NotNil(t, cmd)

	step(t, r, Input(screens.LoginSwitchToRegister{}))
	step(t, r, Input(screens.RegisterSwitchToLogin{}))
	fresh := r.View()

	// the first Login instance's result lands on the second
	assert.Nil(t, r.Update(cmd(context.Background())))
	assert.Equal(t, fresh, r.View())
	assert.Equal(t, screens.NewLoginState(), r.View().Screen)
}

func TestRouter_Focus(t *testing.T) {
	r := newRouterAt(t, &fakeAuth{}, false)
	assert.Equal(t, 0, r.View().Focus)

	r.Update(FocusPrevious{})
	assert.Equal(t, 3, r.View().Focus)

	for i := 0; i < 5; i++ {
		r.Update(FocusNext{})
	}
	assert.Equal(t, 0, r.View().Focus)

	r.Update(FocusNext{})
	r.Update(FocusNext{})
	require.Equal(t, 2, r.View().Focus)

	step(t, r, Input(screens.LoginSwitchToRegister{}))
	assert.Equal(t, 0, r.View().Focus)
}

func TestRouter_Logout(t *testing.T) {
	auth := &fakeAuth{session: aliceSession()}
	r := newRouterAt(t, auth, true)

	step(t, r, Input(screens.HomeShowDialog{Dialog: screens.DialogLogout}))
	step(t, r, Input(screens.HomeLogoutConfirmed{}))

	v := r.View()
	assert.False(t, v.SignedIn())
	assert.Equal(t, screens.NewLoginState(), v.Screen)
	assert.Equal(t, 1, auth.logouts)
}

func TestRouter_ViewIsSnapshot(t *testing.T) {
	r := newRouterAt(t, &fakeAuth{session: aliceSession()}, true)

	v := r.View()
	v.Session.RefreshToken = "tampered"

	assert.Equal(t, "refresh", r.View().Session.RefreshToken)
	assert.Greater(t, r.View().Seq, uint64(0))
}
