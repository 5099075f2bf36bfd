package router

import (
	"context"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
)

// Msg is anything the router can be updated with.
type Msg any

// Cmd is deferred work whose result re-enters the router as a Msg. A nil
// result is ignored.
type Cmd func(ctx context.Context) Msg

// SessionRestored carries the outcome of the startup restore attempt.
type SessionRestored struct {
	Session models.Session
	Err     error
}

// ScreenMsg wraps every screen event. Results of a screen's own tasks are
// stamped with the epoch of the screen instance that started them.
type ScreenMsg struct {
	Event screens.Event
	epoch uint64
}

// Input wraps an event produced by the user for whatever screen is active
// when it is processed.
func Input(ev screens.Event) ScreenMsg {
	return ScreenMsg{Event: ev}
}

type (
	FocusNext     struct{}
	FocusPrevious struct{}
)

type quitMsg struct{}
