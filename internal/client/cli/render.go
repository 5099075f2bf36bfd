package cli

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/router"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
)

var (
	loginControls    = []string{"identifier", "password", "log in", "create an account"}
	registerControls = []string{"username", "password", "confirm password", "register", "back to login"}
)

// Render draws the active screen as plain text: a title, the form fields
// with their error slots, the focused control and an in-flight line.
func Render(v router.View) string {
	var b strings.Builder

	switch s := v.Screen.(type) {
	case screens.Loading:
		b.WriteString("== Loading ==\n")
		b.WriteString("  Restoring session...\n")

	case screens.LoginState:
		b.WriteString("== Welcome back! ==\n")
		field(&b, "identifier", s.Identifier, s.IdentifierError)
		field(&b, "password", mask(s.Password), s.PasswordError)
		focus(&b, loginControls, v.Focus)

	case screens.RegisterState:
		b.WriteString("== Create an account ==\n")
		field(&b, "username", s.Username, s.UsernameError)
		field(&b, "password", mask(s.Password), s.PasswordError)
		field(&b, "confirm password", mask(s.Confirm), s.ConfirmError)
		focus(&b, registerControls, v.Focus)

	case screens.HomeState:
		fmt.Fprintf(&b, "== Home: %s ==\n", s.User.Name())
		if s.Modal != screens.ModalNone {
			fmt.Fprintf(&b, "  [modal] %s\n", s.Modal)
		}
		if s.Dialog != screens.DialogNone {
			fmt.Fprintf(&b, "  [dialog] %s\n", s.Dialog)
		}
	}

	if screens.InFlight(v.Screen) {
		b.WriteString("  (working...)\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func field(b *strings.Builder, label, value, errMsg string) {
	fmt.Fprintf(b, "  %s: %s\n", label, value)
	if errMsg != "" {
		fmt.Fprintf(b, "    ! %s\n", errMsg)
	}
}

func focus(b *strings.Builder, controls []string, i int) {
	if i >= 0 && i < len(controls) {
		fmt.Fprintf(b, "  focus: %s\n", controls[i])
	}
}

func mask(s string) string {
	return strings.Repeat("*", len([]rune(s)))
}
