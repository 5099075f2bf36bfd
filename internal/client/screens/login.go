package screens

import (
	"context"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/api"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
)

// LoginState is the login form. Empty error strings mean no error.
type LoginState struct {
	Identifier      string
	Password        string
	IdentifierError string
	PasswordError   string
	InFlight        bool
}

func NewLoginState() LoginState {
	return LoginState{}
}

func (LoginState) Kind() Kind { return KindLogin }
func (LoginState) isScreen()  {}

// LoginEvent is an Event addressed to the login screen.
type LoginEvent interface {
	Event
	isLoginEvent()
}

type loginTag struct{}

func (loginTag) Kind() Kind    { return KindLogin }
func (loginTag) isEvent()      {}
func (loginTag) isLoginEvent() {}

type (
	LoginIdentifierChanged struct {
		loginTag
		Value string
	}
	LoginPasswordChanged struct {
		loginTag
		Value string
	}
	LoginSubmitted struct {
		loginTag
	}
	LoginSucceeded struct {
		loginTag
		Session models.Session
	}
	LoginFailed struct {
		loginTag
		Message string
	}
	// LoginSwitchToRegister is the "create an account" link.
	LoginSwitchToRegister struct {
		loginTag
	}
)

// UpdateLogin is the login screen reducer.
func UpdateLogin(s LoginState, ev LoginEvent, auth Authenticator) (LoginState, Effect) {
	switch e := ev.(type) {
	case LoginIdentifierChanged:
		s.Identifier = e.Value
		s.IdentifierError = ""

	case LoginPasswordChanged:
		s.Password = e.Value
		s.PasswordError = ""

	case LoginSubmitted:
		if s.InFlight {
			return s, nil
		}
		s.InFlight = true
		identifier, password := s.Identifier, s.Password
		return s, Task{Run: func(ctx context.Context) Event {
			session, err := auth.Login(ctx, identifier, password)
			if err != nil {
				return LoginFailed{Message: api.Message(err)}
			}
			return LoginSucceeded{Session: session}
		}}

	case LoginSucceeded:
		s.InFlight = false
		return s, Authenticated{Session: e.Session}

	case LoginFailed:
		s.InFlight = false
		s.IdentifierError = e.Message
		s.PasswordError = e.Message

	case LoginSwitchToRegister:
		s.InFlight = false
		return s, Navigate{To: NewRegisterState()}
	}

	return s, nil
}
