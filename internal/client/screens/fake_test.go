package screens

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
	"github.com/google/uuid"
)

type fakeAuth struct {
	mu sync.Mutex

	session models.Session
	err     error

	loginCalls    int
	registerCalls int
	logoutCalls   int

	lastUser     string
	lastPassword string
}

func (f *fakeAuth) Login(_ context.Context, identifier, password string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.loginCalls++
	f.lastUser, f.lastPassword = identifier, password
	return f.session, f.err
}

func (f *fakeAuth) Register(_ context.Context, username, password string) (models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.registerCalls++
	f.lastUser, f.lastPassword = username, password
	return f.session, f.err
}

func (f *fakeAuth) Logout(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.logoutCalls++
	return f.err
}

func testSession() models.Session {
	return models.Session{
		User:         models.PublicUser{ID: uuid.New(), Username: "alice"},
		RefreshToken: "refresh",
	}
}
