package screens

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/api"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
)

// RegisterState is the account creation form. Empty error strings mean no
// error.
type RegisterState struct {
	Username      string
	Password      string
	Confirm       string
	UsernameError string
	PasswordError string
	ConfirmError  string
	InFlight      bool
}

func NewRegisterState() RegisterState {
	return RegisterState{}
}

func (RegisterState) Kind() Kind { return KindRegister }
func (RegisterState) isScreen()  {}

// RegisterEvent is an Event addressed to the register screen.
type RegisterEvent interface {
	Event
	isRegisterEvent()
}

type registerTag struct{}

func (registerTag) Kind() Kind       { return KindRegister }
func (registerTag) isEvent()         {}
func (registerTag) isRegisterEvent() {}

type (
	RegisterUsernameChanged struct {
		registerTag
		Value string
	}
	RegisterPasswordChanged struct {
		registerTag
		Value string
	}
	RegisterConfirmChanged struct {
		registerTag
		Value string
	}
	RegisterSubmitted struct {
		registerTag
	}
	RegisterSucceeded struct {
		registerTag
		Session models.Session
	}
	RegisterFailed struct {
		registerTag
		Message string
	}
	// RegisterSwitchToLogin is the "already have an account" link.
	RegisterSwitchToLogin struct {
		registerTag
	}
)

// UpdateRegister is the register screen reducer. Submissions that fail local
// validation never reach the network.
func UpdateRegister(s RegisterState, ev RegisterEvent, auth Authenticator) (RegisterState, Effect) {
	switch e := ev.(type) {
	case RegisterUsernameChanged:
		s.Username = e.Value
		s.UsernameError = ""

	case RegisterPasswordChanged:
		s.Password = e.Value
		s.PasswordError = ""

	case RegisterConfirmChanged:
		s.Confirm = e.Value
		s.ConfirmError = ""

	case RegisterSubmitted:
		if s.InFlight {
			return s, nil
		}

		username := strings.TrimSpace(s.Username)
		ferr := validateRegistration(username, s.Password, s.Confirm)
		if !ferr.empty() {
			s.UsernameError = ferr.Username
			s.PasswordError = ferr.Password
			s.ConfirmError = ferr.Confirm
			return s, nil
		}

		s.InFlight = true
		password := s.Password
		return s, Task{Run: func(ctx context.Context) Event {
			session, err := auth.Register(ctx, username, password)
			if err != nil {
				return RegisterFailed{Message: api.Message(err)}
			}
			return RegisterSucceeded{Session: session}
		}}

	case RegisterSucceeded:
		s.InFlight = false
		return s, Authenticated{Session: e.Session}

	case RegisterFailed:
		s.InFlight = false
		s.UsernameError = e.Message
		s.PasswordError = e.Message

	case RegisterSwitchToLogin:
		s.InFlight = false
		return s, Navigate{To: NewLoginState()}
	}

	return s, nil
}
