package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/fictionalpotato/internal/client/api"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/config"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/router"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/services"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/tokenstore"
	"github.com/dmitrijs2005/fictionalpotato/internal/common"
	"github.com/dmitrijs2005/fictionalpotato/internal/logging"
)

type App struct {
	config  *config.Config
	log     logging.Logger
	program *router.Program
	closers []io.Closer
	reader  *bufio.Reader
	out     io.Writer
}

func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	apiClient, err := api.NewClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	store, closer, err := openStore(ctx, c)
	if err != nil {
		var se *tokenstore.Error
		if !errors.As(err, &se) {
			log.Error(ctx, "error opening credential store", "backend", c.CredentialBackend, "error", err)
			return nil, err
		}
		// The app still starts, signed out, and token writes are only logged.
		log.Warn(ctx, "credential store unavailable", "backend", c.CredentialBackend, "error", err)
		store, closer = tokenstore.Unavailable{Err: err}, nil
	}

	as := services.NewAuthService(apiClient, store, log)
	program := router.NewProgram(router.New(as, log), log)

	a := &App{
		config:  c,
		log:     log,
		program: program,
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	if closer != nil {
		a.closers = append(a.closers, closer)
	}
	return a, nil
}

// openStore builds the token store selected by c.CredentialBackend. The
// returned closer is nil when the store holds no resources.
func openStore(ctx context.Context, c *config.Config) (tokenstore.Store, io.Closer, error) {
	switch c.CredentialBackend {
	case config.BackendKeyring:
		s, err := tokenstore.NewKeyringStore(c.CredentialService, common.CredentialAccount)
		return s, nil, err
	case config.BackendFile:
		s, err := tokenstore.OpenFileStore(ctx, c.DataDir, c.CredentialService, common.CredentialAccount)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	default:
		return nil, nil, fmt.Errorf("unknown credential backend %q", c.CredentialBackend)
	}
}

// Run starts the event loop, runs the REPL until the user exits and shuts
// everything down.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	a.initSignalHandler(cancel)

	errCh := make(chan error, 1)
	go func() { errCh <- a.program.Run(ctx) }()

	a.Root(ctx)

	a.program.Quit()
	err := <-errCh
	if errors.Is(err, context.Canceled) {
		err = nil
	}

	for _, c := range a.closers {
		if cerr := c.Close(); cerr != nil {
			a.log.Warn(ctx, "close failed", "error", cerr)
		}
	}
	return err
}

func (a *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (a *App) view() router.View {
	return a.program.View()
}
