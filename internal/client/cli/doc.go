// Package cli provides the interactive Fictional Potato terminal client.
//
// It wires configuration, the credential store, the auth API client and the
// screen router, then runs a REPL whose commands depend on the active
// screen. Each command turns into one or more screen events; after every
// command the active screen is rendered as text.
//
// Commands:
//   - Login screen: login, register, next, prev, help, exit
//   - Register screen: register, login, next, prev, help, exit
//   - Home screen: whoami, modal <name>, close, logout, help, exit
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
