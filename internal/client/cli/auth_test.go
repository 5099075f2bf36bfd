package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"sync"
	"testing"
	"time"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/api"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/router"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
	"github.com/dmitrijs2005/fictionalpotato/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAuth struct {
	mu sync.Mutex

	session models.Session
	err     error

	user     string
	password string
	logouts  int
}

func (f *fakeAuth) Login(_ context.Context, identifier, password string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user, f.password = identifier, password
	return f.session, f.err
}

func (f *fakeAuth) Register(_ context.Context, username, password string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.user, f.password = username, password
	return f.session, f.err
}

func (f *fakeAuth) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logouts++
	return nil
}

func (f *fakeAuth) Restore(context.Context) (models.Session, error) {
	return models.Session{}, errors.New("no token")
}

func stubInputs(t *testing.T, text string, passwords ...string) {
	t.Helper()
	origST, origGP, origC := getSimpleText, getPassword, confirm
	t.Cleanup(func() {
		getSimpleText, getPassword, confirm = origST, origGP, origC
	})

	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) { return text, nil }
	getPassword = func(_ io.Writer, _ string) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, errors.New("no more passwords")
		}
		pw := passwords[0]
		passwords = passwords[1:]
		return []byte(pw), nil
	}
}

func stubConfirm(t *testing.T, answer bool) {
	t.Helper()
	orig := confirm
	t.Cleanup(func() { confirm = orig })
	confirm = func(*bufio.Reader, string, io.Writer) (bool, error) { return answer, nil }
}

// newTestApp runs a real router program over auth and waits for the Login
// screen.
func newTestApp(t *testing.T, auth router.Auth) *App {
	t.Helper()
	log := logging.Discard()
	p := router.NewProgram(router.New(auth, log), log)

	errCh := make(chan error, 1)
	go func() { errCh <- p.Run(context.Background()) }()
	t.Cleanup(func() {
		p.Quit()
		<-errCh
	})

	a := &App{log: log, program: p, out: &bytes.Buffer{}}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := p.Await(ctx, func(v router.View) bool { return v.Screen.Kind() == screens.KindLogin })
	require.NoError(t, err)
	return a
}

func testUser() models.PublicUser {
	return models.PublicUser{ID: uuid.New(), Username: "alice"}
}

func TestLogin_Success(t *testing.T) {
	f := &fakeAuth{session: models.Session{User: testUser(), RefreshToken: "r"}}
	a := newTestApp(t, f)
	stubInputs(t, "alice@example.org", "secret")

	require.NoError(t, a.Login(context.Background()))

	assert.Equal(t, "alice@example.org", f.user)
	assert.Equal(t, "secret", f.password)
	v := a.view()
	assert.Equal(t, screens.KindHome, v.Screen.Kind())
	assert.True(t, v.SignedIn())
}

func TestLogin_FailureShowsMessage(t *testing.T) {
	f := &fakeAuth{err: &api.ServerError{Status: 401, Message: "Invalid credentials"}}
	a := newTestApp(t, f)
	stubInputs(t, "alice", "wrong")

	require.NoError(t, a.Login(context.Background()))

	s, ok := a.view().Screen.(screens.LoginState)
	require.True(t, ok)
	assert.Equal(t, "Invalid credentials", s.IdentifierError)
	assert.Equal(t, "Invalid credentials", s.PasswordError)
	assert.Contains(t, Render(a.view()), "! Invalid credentials")
}

func TestLogin_InputErrorPropagates(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})
	stubInputs(t, "alice")

	assert.Error(t, a.Login(context.Background()))
	assert.Equal(t, screens.NewLoginState(), a.view().Screen)
}

func TestRegister_MismatchStaysLocal(t *testing.T) {
	f := &fakeAuth{}
	a := newTestApp(t, f)
	stubInputs(t, "bob", "password1", "password2")

	require.NoError(t, a.ShowRegister(context.Background()))
	require.NoError(t, a.Register(context.Background()))

	s, ok := a.view().Screen.(screens.RegisterState)
	require.True(t, ok)
	assert.Equal(t, screens.MsgPasswordMismatch, s.ConfirmError)
	assert.Empty(t, f.user, "no request expected")
}

func TestRegister_Success(t *testing.T) {
	f := &fakeAuth{session: models.Session{User: testUser(), RefreshToken: "r"}}
	a := newTestApp(t, f)
	stubInputs(t, " bob ", "password1", "password1")

	require.NoError(t, a.ShowRegister(context.Background()))
	require.NoError(t, a.Register(context.Background()))

	assert.Equal(t, "bob", f.user)
	assert.Equal(t, screens.KindHome, a.view().Screen.Kind())
}

func TestLogout(t *testing.T) {
	f := &fakeAuth{session: models.Session{User: testUser(), RefreshToken: "r"}}
	a := newTestApp(t, f)
	stubInputs(t, "alice", "secret")
	require.NoError(t, a.Login(context.Background()))

	stubConfirm(t, false)
	require.NoError(t, a.Logout(context.Background()))
	home, ok := a.view().Screen.(screens.HomeState)
	require.True(t, ok)
	assert.Equal(t, screens.DialogNone, home.Dialog)
	assert.Zero(t, f.logouts)

	stubConfirm(t, true)
	require.NoError(t, a.Logout(context.Background()))
	assert.Equal(t, screens.NewLoginState(), a.view().Screen)
	assert.False(t, a.view().SignedIn())
	assert.Equal(t, 1, f.logouts)
}

func TestOpenModal(t *testing.T) {
	f := &fakeAuth{session: models.Session{User: testUser(), RefreshToken: "r"}}
	a := newTestApp(t, f)
	stubInputs(t, "alice", "secret")
	require.NoError(t, a.Login(context.Background()))

	require.NoError(t, a.OpenModal(context.Background(), "create-channel"))
	assert.Equal(t, screens.ModalCreateChannel, a.view().Screen.(screens.HomeState).Modal)

	assert.ErrorIs(t, a.OpenModal(context.Background(), "bogus"), ErrUnknownModal)

	require.NoError(t, a.CloseOverlays(context.Background()))
	assert.Equal(t, screens.ModalNone, a.view().Screen.(screens.HomeState).Modal)
}

func TestFocus(t *testing.T) {
	a := newTestApp(t, &fakeAuth{})

	require.NoError(t, a.Focus(context.Background(), false))
	assert.Equal(t, 3, a.view().Focus)
	require.NoError(t, a.Focus(context.Background(), true))
	assert.Equal(t, 0, a.view().Focus)
}
