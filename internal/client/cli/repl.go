package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/router"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	view() router.View
	Login(ctx context.Context) error
	Register(ctx context.Context) error
	ShowRegister(ctx context.Context) error
	ShowLogin(ctx context.Context) error
	Focus(ctx context.Context, forward bool) error
	WhoAmI(ctx context.Context) error
	OpenModal(ctx context.Context, name string) error
	CloseOverlays(ctx context.Context) error
	Logout(ctx context.Context) error
}

const (
	helpLogin    = "Available commands: login, register, next, prev, exit"
	helpRegister = "Available commands: register, login, next, prev, exit"
	helpHome     = "Available commands: whoami, modal <name>, close, logout, exit"
)

// runREPL starts a simple read–eval–print loop over the screen router.
//
// It reads a line from reader, parses the first token as the command and
// dispatches it according to the active screen. The same word can mean
// different things on different screens: "login" submits the form on the
// Login screen and switches back to it from Register. After every command
// the active screen is rendered. The loop exits on EOF or when the user
// types "exit" or "quit".
//
// Errors returned by command handlers are printed and otherwise ignored.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("fp %s> ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}

		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		if cmd == "exit" || cmd == "quit" {
			printlnFn("Bye!")
			return
		}

		kind := a.view().Screen.Kind()
		if cmd == "help" {
			printlnFn(helpFor(kind))
			continue
		}

		handled, cmdErr := dispatch(ctx, a, kind, cmd, args)
		if !handled {
			printlnFn("Unknown command:", cmd)
			continue
		}
		if cmdErr != nil {
			printlnFn("Error:", cmdErr)
		}
		printlnFn(Render(a.view()))
	}
}

func dispatch(ctx context.Context, a execIface, kind screens.Kind, cmd string, args []string) (bool, error) {
	switch kind {
	case screens.KindLogin:
		switch cmd {
		case "login":
			return true, a.Login(ctx)
		case "register":
			return true, a.ShowRegister(ctx)
		case "next":
			return true, a.Focus(ctx, true)
		case "prev":
			return true, a.Focus(ctx, false)
		}

	case screens.KindRegister:
		switch cmd {
		case "register":
			return true, a.Register(ctx)
		case "login":
			return true, a.ShowLogin(ctx)
		case "next":
			return true, a.Focus(ctx, true)
		case "prev":
			return true, a.Focus(ctx, false)
		}

	case screens.KindHome:
		switch cmd {
		case "whoami":
			return true, a.WhoAmI(ctx)
		case "modal":
			if len(args) == 0 {
				printlnFn("Usage: modal <name>; one of", strings.Join(screens.ModalNames(), ", "))
				return true, nil
			}
			return true, a.OpenModal(ctx, args[0])
		case "close":
			return true, a.CloseOverlays(ctx)
		case "logout":
			return true, a.Logout(ctx)
		}
	}
	return false, nil
}

func helpFor(kind screens.Kind) string {
	switch kind {
	case screens.KindLogin:
		return helpLogin
	case screens.KindRegister:
		return helpRegister
	case screens.KindHome:
		return helpHome
	default:
		return "Please wait, restoring session..."
	}
}
