// Package screens holds the state and the update functions of every
// top-level screen: Loading, Login, Register and Home.
//
// Update functions are pure reducers. They take the current state and one
// event and return the new state plus at most one Effect for the router to
// carry out; they never block and never touch the network themselves.
// Network work is wrapped in a Task whose result comes back as another
// event for the same screen.
package screens

import (
	"context"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
)

// Kind tags a screen and every event addressed to it.
type Kind int

const (
	KindLoading Kind = iota
	KindLogin
	KindRegister
	KindHome
)

func (k Kind) String() string {
	switch k {
	case KindLoading:
		return "loading"
	case KindLogin:
		return "login"
	case KindRegister:
		return "register"
	case KindHome:
		return "home"
	default:
		return "unknown"
	}
}

// Screen is a closed union of Loading, LoginState, RegisterState and
// HomeState. Callers switch on the concrete type.
type Screen interface {
	Kind() Kind
	isScreen()
}

// Loading is shown while the stored session is being restored.
type Loading struct{}

func (Loading) Kind() Kind { return KindLoading }
func (Loading) isScreen()  {}

// Event is an input addressed to the screen of the same Kind.
type Event interface {
	Kind() Kind
	isEvent()
}

// Authenticator performs the network side of authentication on behalf of
// the screens.
type Authenticator interface {
	Login(ctx context.Context, identifier, password string) (models.Session, error)
	Register(ctx context.Context, username, password string) (models.Session, error)
	Logout(ctx context.Context) error
}

// InFlight reports whether s is waiting for a network result.
func InFlight(s Screen) bool {
	switch s := s.(type) {
	case Loading:
		return true
	case LoginState:
		return s.InFlight
	case RegisterState:
		return s.InFlight
	case HomeState:
		return s.InFlight
	default:
		return false
	}
}

// Focusables returns how many controls of s take keyboard focus, in tab
// order.
func Focusables(s Screen) int {
	switch s := s.(type) {
	case Loading:
		return 0
	case LoginState:
		return 4 // identifier, password, submit, register link
	case RegisterState:
		return 5 // username, password, confirmation, submit, login link
	case HomeState:
		if s.Modal != ModalNone || s.Dialog != DialogNone {
			return 2 // confirm, cancel
		}
		return 1 // conversation search
	default:
		return 0
	}
}
