package screens

import (
	"context"
	"strings"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/api"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
)

// Modal is the full-screen overlay open on Home, if any.
type Modal int

const (
	ModalNone Modal = iota
	ModalCreateDM
	ModalAddFriendsToGroupDM
	ModalCreateGuild
	ModalCreateChannel
	ModalModifyUsername
	ModalModifyPassword
	ModalModifyEmail
	ModalModifyPhone
)

var modalNames = map[Modal]string{
	ModalNone:                "none",
	ModalCreateDM:            "create-dm",
	ModalAddFriendsToGroupDM: "add-friends",
	ModalCreateGuild:         "create-guild",
	ModalCreateChannel:       "create-channel",
	ModalModifyUsername:      "modify-username",
	ModalModifyPassword:      "modify-password",
	ModalModifyEmail:         "modify-email",
	ModalModifyPhone:         "modify-phone",
}

func (m Modal) String() string {
	if n, ok := modalNames[m]; ok {
		return n
	}
	return "unknown"
}

// ParseModal looks a modal up by its String form. ModalNone is not
// accepted.
func ParseModal(name string) (Modal, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for m, n := range modalNames {
		if m != ModalNone && n == name {
			return m, true
		}
	}
	return ModalNone, false
}

// ModalNames lists every openable modal in declaration order.
func ModalNames() []string {
	out := make([]string, 0, len(modalNames)-1)
	for m := ModalCreateDM; m <= ModalModifyPhone; m++ {
		out = append(out, m.String())
	}
	return out
}

// Dialog is the small confirmation box open on Home, if any.
type Dialog int

const (
	DialogNone Dialog = iota
	DialogLogout
	DialogLogoutAllDevices
	DialogCallIncoming
	DialogPinnedMessages
)

func (d Dialog) String() string {
	switch d {
	case DialogNone:
		return "none"
	case DialogLogout:
		return "logout"
	case DialogLogoutAllDevices:
		return "logout-all-devices"
	case DialogCallIncoming:
		return "call-incoming"
	case DialogPinnedMessages:
		return "pinned-messages"
	default:
		return "unknown"
	}
}

// HomeState is the signed-in application shell.
type HomeState struct {
	User     models.PublicUser
	Modal    Modal
	Dialog   Dialog
	InFlight bool
}

func NewHomeState(user models.PublicUser) HomeState {
	return HomeState{User: user}
}

func (HomeState) Kind() Kind { return KindHome }
func (HomeState) isScreen()  {}

// HomeEvent is an Event addressed to the home screen.
type HomeEvent interface {
	Event
	isHomeEvent()
}

type homeTag struct{}

func (homeTag) Kind() Kind   { return KindHome }
func (homeTag) isEvent()     {}
func (homeTag) isHomeEvent() {}

type (
	HomeShowModal struct {
		homeTag
		Modal Modal
	}
	HomeHideModal struct {
		homeTag
	}
	HomeShowDialog struct {
		homeTag
		Dialog Dialog
	}
	HomeHideDialog struct {
		homeTag
	}
	// HomeLogoutConfirmed is the confirm button of the logout dialog.
	HomeLogoutConfirmed struct {
		homeTag
	}
	HomeLoggedOut struct {
		homeTag
		Err string
	}
)

// UpdateHome is the home screen reducer.
func UpdateHome(s HomeState, ev HomeEvent, auth Authenticator) (HomeState, Effect) {
	switch e := ev.(type) {
	case HomeShowModal:
		if s.InFlight {
			return s, nil
		}
		s.Modal = e.Modal
		s.Dialog = DialogNone

	case HomeHideModal:
		if s.InFlight {
			return s, nil
		}
		s.Modal = ModalNone

	case HomeShowDialog:
		if s.InFlight {
			return s, nil
		}
		s.Dialog = e.Dialog

	case HomeHideDialog:
		if s.InFlight {
			return s, nil
		}
		s.Dialog = DialogNone

	case HomeLogoutConfirmed:
		if s.InFlight || s.Dialog != DialogLogout {
			return s, nil
		}
		s.InFlight = true
		return s, Task{Run: func(ctx context.Context) Event {
			if err := auth.Logout(ctx); err != nil {
				return HomeLoggedOut{Err: api.Message(err)}
			}
			return HomeLoggedOut{}
		}}

	case HomeLoggedOut:
		s.InFlight = false
		s.Dialog = DialogNone
		return s, SignedOut{Warning: e.Err}
	}

	return s, nil
}
