// Package router owns the active screen and performs every screen
// transition.
//
// The router is a single-owner state machine: the active screen is one of
// the screens union types, events are routed to the reducer matching their
// Kind, and the effects reducers return (navigation, authentication, sign
// out, background tasks) are interpreted here. Each transition starts a new
// screen instance identified by an epoch; results of tasks started by an
// earlier instance are dropped.
//
// Router is not safe for concurrent use. Program drives it from a single
// goroutine.
package router

import (
	"context"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/models"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
	"github.com/dmitrijs2005/fictionalpotato/internal/logging"
)

// Auth is the authentication backend: the operations screens need plus the
// startup restore.
type Auth interface {
	screens.Authenticator
	Restore(ctx context.Context) (models.Session, error)
}

// View is an immutable snapshot of the router for renderers.
type View struct {
	Screen  screens.Screen
	Session *models.Session
	Focus   int
	Epoch   uint64
	Seq     uint64
}

// SignedIn reports whether the snapshot holds a session.
func (v View) SignedIn() bool { return v.Session != nil }

type Router struct {
	auth Auth
	log  logging.Logger

	screen  screens.Screen
	session *models.Session
	focus   int
	epoch   uint64
	seq     uint64
}

// New returns a router showing the Loading screen.
func New(auth Auth, log logging.Logger) *Router {
	return &Router{
		auth:   auth,
		log:    log.With("component", "router"),
		screen: screens.Loading{},
		epoch:  1,
	}
}

// Init returns the silent re-authentication command.
func (r *Router) Init() Cmd {
	return func(ctx context.Context) Msg {
		s, err := r.auth.Restore(ctx)
		return SessionRestored{Session: s, Err: err}
	}
}

func (r *Router) Epoch() uint64 { return r.epoch }

func (r *Router) View() View {
	v := View{Screen: r.screen, Focus: r.focus, Epoch: r.epoch, Seq: r.seq}
	if r.session != nil {
		s := *r.session
		v.Session = &s
	}
	return v
}

// Update applies msg and returns the command to run next, if any. Seq
// advances only for messages the router accepts; dropped ones leave the
// view untouched.
func (r *Router) Update(msg Msg) Cmd {
	cmd, ok := r.update(msg)
	if ok {
		r.seq++
	}
	return cmd
}

func (r *Router) update(msg Msg) (Cmd, bool) {
	ctx := context.Background()

	switch m := msg.(type) {
	case SessionRestored:
		if _, ok := r.screen.(screens.Loading); !ok {
			r.log.Debug(ctx, "dropping late session restore", "screen", r.screen.Kind())
			return nil, false
		}
		if m.Err != nil {
			r.log.Info(ctx, "no stored session", "reason", m.Err)
			r.transition(screens.NewLoginState())
			return nil, true
		}
		r.signIn(m.Session)
		return nil, true

	case ScreenMsg:
		return r.dispatch(m)

	case FocusNext:
		r.moveFocus(1)
	case FocusPrevious:
		r.moveFocus(-1)

	default:
		r.log.Warn(ctx, "unknown message", "type", m)
		return nil, false
	}
	return nil, true
}

func (r *Router) dispatch(m ScreenMsg) (Cmd, bool) {
	ctx := context.Background()
	if m.Event == nil {
		return nil, false
	}
	if m.Event.Kind() != r.screen.Kind() {
		r.log.Debug(ctx, "dropping event for inactive screen", "event", m.Event.Kind(), "screen", r.screen.Kind())
		return nil, false
	}
	if m.epoch != 0 && m.epoch != r.epoch {
		r.log.Debug(ctx, "dropping stale result", "screen", r.screen.Kind(), "epoch", m.epoch, "current", r.epoch)
		return nil, false
	}

	var eff screens.Effect
	switch s := r.screen.(type) {
	case screens.LoginState:
		ev, ok := m.Event.(screens.LoginEvent)
		if !ok {
			return nil, false
		}
		r.screen, eff = screens.UpdateLogin(s, ev, r.auth)
	case screens.RegisterState:
		ev, ok := m.Event.(screens.RegisterEvent)
		if !ok {
			return nil, false
		}
		r.screen, eff = screens.UpdateRegister(s, ev, r.auth)
	case screens.HomeState:
		ev, ok := m.Event.(screens.HomeEvent)
		if !ok {
			return nil, false
		}
		r.screen, eff = screens.UpdateHome(s, ev, r.auth)
	case screens.Loading:
		return nil, false
	}

	if r.focus >= screens.Focusables(r.screen) {
		r.focus = 0
	}
	return r.apply(eff), true
}

func (r *Router) apply(eff screens.Effect) Cmd {
	switch e := eff.(type) {
	case nil:
		return nil
	case screens.Task:
		epoch := r.epoch
		return func(ctx context.Context) Msg {
			return ScreenMsg{Event: e.Run(ctx), epoch: epoch}
		}
	case screens.Navigate:
		r.transition(e.To)
	case screens.Authenticated:
		r.signIn(e.Session)
	case screens.SignedOut:
		ctx := context.Background()
		if e.Warning != "" {
			r.log.Warn(ctx, "sign out incomplete", "warning", e.Warning)
		}
		r.session = nil
		r.transition(screens.NewLoginState())
		r.log.Info(ctx, "signed out")
	}
	return nil
}

func (r *Router) signIn(s models.Session) {
	r.session = &s
	r.transition(screens.NewHomeState(s.User))
	r.log.Info(context.Background(), "signed in", "user", s.User.Username)
}

func (r *Router) transition(to screens.Screen) {
	r.log.Debug(context.Background(), "transition", "from", r.screen.Kind(), "to", to.Kind())
	r.screen = to
	r.epoch++
	r.focus = 0
}

func (r *Router) moveFocus(delta int) {
	n := screens.Focusables(r.screen)
	if n == 0 {
		r.focus = 0
		return
	}
	r.focus = ((r.focus+delta)%n + n) % n
}
