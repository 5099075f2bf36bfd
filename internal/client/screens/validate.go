package screens

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

const (
	UsernameMinLen = 2
	UsernameMaxLen = 32
	PasswordMinLen = 8
	PasswordMaxLen = 128
)

const MsgPasswordMismatch = "Passwords need to match"

// registration mirrors the register form for validation. Lengths are counted
// in runes.
type registration struct {
	Username string
	Password string
	Confirm  string
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidationMapRules(map[string]string{
		"Username": fmt.Sprintf("min=%d,max=%d", UsernameMinLen, UsernameMaxLen),
		"Password": fmt.Sprintf("min=%d,max=%d", PasswordMinLen, PasswordMaxLen),
		"Confirm":  "eqfield=Password",
	}, registration{})
	return v
}

// fieldErrors holds one message per form field; empty means valid.
type fieldErrors struct {
	Username string
	Password string
	Confirm  string
}

func (f fieldErrors) empty() bool {
	return f.Username == "" && f.Password == "" && f.Confirm == ""
}

func validateRegistration(username, password, confirm string) fieldErrors {
	var out fieldErrors

	err := validate.Struct(registration{Username: username, Password: password, Confirm: confirm})
	if err == nil {
		return out
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on a broken struct definition.
		out.Username = err.Error()
		return out
	}

	for _, fe := range verrs {
		switch fe.StructField() {
		case "Username":
			out.Username = fmt.Sprintf("Username must be between %d and %d characters", UsernameMinLen, UsernameMaxLen)
		case "Password":
			out.Password = fmt.Sprintf("Password must be between %d and %d characters", PasswordMinLen, PasswordMaxLen)
		case "Confirm":
			out.Confirm = MsgPasswordMismatch
		}
	}
	return out
}
