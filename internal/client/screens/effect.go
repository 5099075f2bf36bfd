package screens

import (
	"context"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
)

// Effect is what a reducer asks the router to do after an update.
// A nil Effect means nothing.
type Effect interface {
	isEffect()
}

// Task runs off the event loop. Its result is delivered back as an event
// for the screen instance that produced the Task.
type Task struct {
	Run func(ctx context.Context) Event
}

// Navigate replaces the active screen with To.
type Navigate struct {
	To Screen
}

// Authenticated hands a freshly established session to the router.
type Authenticated struct {
	Session models.Session
}

// SignedOut asks the router to drop the session. Warning, if set, explains
// a non-fatal problem met on the way out.
type SignedOut struct {
	Warning string
}

func (Task) isEffect()          {}
func (Navigate) isEffect()      {}
func (Authenticated) isEffect() {}
func (SignedOut) isEffect()     {}
