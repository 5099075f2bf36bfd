package cli

import (
	"testing"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/router"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
	"github.com/stretchr/testify/assert"
)

func TestRender_Login(t *testing.T) {
	got := Render(router.View{
		Screen: screens.LoginState{
			Identifier:      "alice",
			Password:        "pässword",
			IdentifierError: "Invalid credentials",
			PasswordError:   "Invalid credentials",
			InFlight:        true,
		},
		Focus: 2,
	})

	assert.Contains(t, got, "identifier: alice")
	assert.Contains(t, got, "password: ********\n")
	assert.Contains(t, got, "! Invalid credentials")
	assert.NotContains(t, got, "pässword")
	assert.Contains(t, got, "focus: log in")
	assert.Contains(t, got, "(working...)")
}

func TestRender_Register(t *testing.T) {
	got := Render(router.View{
		Screen: screens.RegisterState{ConfirmError: screens.MsgPasswordMismatch},
		Focus:  4,
	})

	assert.Contains(t, got, "Create an account")
	assert.Contains(t, got, screens.MsgPasswordMismatch)
	assert.Contains(t, got, "focus: back to login")
	assert.NotContains(t, got, "working")
}

func TestRender_Home(t *testing.T) {
	user := models.PublicUser{Username: "alice", DisplayName: "Alice"}
	got := Render(router.View{
		Screen:  screens.HomeState{User: user, Modal: screens.ModalCreateDM, Dialog: screens.DialogLogout},
		Session: &models.Session{User: user, RefreshToken: "r"},
	})

	assert.Contains(t, got, "Home: Alice")
	assert.Contains(t, got, "[modal] create-dm")
	assert.Contains(t, got, "[dialog] logout")
}

func TestRender_Loading(t *testing.T) {
	assert.Contains(t, Render(router.View{Screen: screens.Loading{}}), "Restoring session")
}
