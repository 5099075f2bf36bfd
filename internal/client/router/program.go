package router

import (
	"context"
	"errors"
	"sync"

	"github.com/dmitrijs2005/fictionalpotato/internal/logging"
)

// ErrStopped is returned by Do and Await once the program has stopped.
var ErrStopped = errors.New("program stopped")

// Program runs a Router on a single event loop goroutine. Commands run on
// their own goroutines and feed their results back through the loop. Every
// screen instance gets its own context, cancelled as soon as the router
// moves to another screen.
type Program struct {
	router *Router
	log    logging.Logger

	msgs chan envelope
	done chan struct{}
	wg   sync.WaitGroup

	observers []func(View)

	mu      sync.Mutex
	latest  View
	changed chan struct{}
}

type envelope struct {
	msg   Msg
	reply chan View
}

type Option func(*Program)

// WithObserver registers fn to receive a View after every processed
// message. Observers run on the event loop and must not call Send or Do.
func WithObserver(fn func(View)) Option {
	return func(p *Program) { p.observers = append(p.observers, fn) }
}

func NewProgram(r *Router, log logging.Logger, opts ...Option) *Program {
	p := &Program{
		router:  r,
		log:     log.With("component", "program"),
		msgs:    make(chan envelope, 16),
		done:    make(chan struct{}),
		latest:  r.View(),
		changed: make(chan struct{}),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes messages until Quit is sent or ctx is done, then cancels
// outstanding commands and waits for them. It returns nil after Quit.
func (p *Program) Run(ctx context.Context) error {
	ctx, stop := context.WithCancel(ctx)
	defer stop()

	screenCtx, cancelScreen := context.WithCancel(ctx)
	defer func() {
		close(p.done)
		cancelScreen()
		p.wg.Wait()
	}()

	epoch := p.router.Epoch()
	p.exec(screenCtx, p.router.Init())
	p.publish(p.router.View())

	for {
		select {
		case <-ctx.Done():
			p.log.Info(ctx, "event loop stopped", "reason", ctx.Err())
			return ctx.Err()

		case env := <-p.msgs:
			if _, ok := env.msg.(quitMsg); ok {
				if env.reply != nil {
					env.reply <- p.router.View()
				}
				p.log.Info(ctx, "event loop stopped", "reason", "quit")
				return nil
			}

			cmd := p.router.Update(env.msg)
			if e := p.router.Epoch(); e != epoch {
				cancelScreen()
				screenCtx, cancelScreen = context.WithCancel(ctx)
				epoch = e
			}
			p.exec(screenCtx, cmd)

			v := p.router.View()
			p.publish(v)
			if env.reply != nil {
				env.reply <- v
			}
		}
	}
}

// Send queues msg. It returns without effect once the program has stopped.
func (p *Program) Send(msg Msg) {
	select {
	case p.msgs <- envelope{msg: msg}:
	case <-p.done:
	}
}

// Do queues msg and returns the view right after it was processed.
func (p *Program) Do(ctx context.Context, msg Msg) (View, error) {
	reply := make(chan View, 1)
	select {
	case p.msgs <- envelope{msg: msg, reply: reply}:
	case <-ctx.Done():
		return View{}, ctx.Err()
	case <-p.done:
		return View{}, ErrStopped
	}

	select {
	case v := <-reply:
		return v, nil
	case <-ctx.Done():
		return View{}, ctx.Err()
	case <-p.done:
		return View{}, ErrStopped
	}
}

// Await blocks until the latest view satisfies cond.
func (p *Program) Await(ctx context.Context, cond func(View) bool) (View, error) {
	for {
		p.mu.Lock()
		v, changed := p.latest, p.changed
		p.mu.Unlock()

		if cond(v) {
			return v, nil
		}

		select {
		case <-changed:
		case <-ctx.Done():
			return v, ctx.Err()
		case <-p.done:
			return v, ErrStopped
		}
	}
}

// View returns the latest published snapshot.
func (p *Program) View() View {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.latest
}

// Quit asks the event loop to stop.
func (p *Program) Quit() {
	p.Send(quitMsg{})
}

// Done is closed when Run stops processing messages.
func (p *Program) Done() <-chan struct{} {
	return p.done
}

func (p *Program) exec(ctx context.Context, cmd Cmd) {
	if cmd == nil {
		return
	}

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		msg := cmd(ctx)
		if msg == nil {
			return
		}
		select {
		case p.msgs <- envelope{msg: msg}:
		case <-p.done:
		}
	}()
}

func (p *Program) publish(v View) {
	p.mu.Lock()
	p.latest = v
	close(p.changed)
	p.changed = make(chan struct{})
	p.mu.Unlock()

	for _, fn := range p.observers {
		fn(v)
	}
}
