package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/router"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/screens"
	"github.com/dmitrijs2005/fictionalpotato/internal/common"
)

// startupWait bounds how long Root waits for the session restore before
// showing the prompt anyway.
const startupWait = 30 * time.Second

func (a *App) getStatus() string {
	v := a.view()
	s := v.Screen.Kind().String()
	if v.SignedIn() {
		s = v.Session.User.Name() + " " + s
	}
	return fmt.Sprintf("(%s)", s)
}

// Root waits for the startup screen to settle, then runs the REPL on the
// App's reader.
func (a *App) Root(ctx context.Context) {
	fmt.Fprintf(a.out, "Welcome to %s (type 'help' for commands)\n", common.AppName)

	waitCtx, cancel := context.WithTimeout(ctx, startupWait)
	v, err := a.program.Await(waitCtx, func(v router.View) bool {
		return v.Screen.Kind() != screens.KindLoading
	})
	cancel()
	if err != nil {
		a.log.Warn(ctx, "startup did not finish", "error", err)
	}
	printlnFn(Render(v))

	runREPL(ctx, a, a.getStatus, a.reader)
}
