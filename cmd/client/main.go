package main

import (
	"context"
	"os"

	"github.com/dmitrijs2005/fictionalpotato/internal/buildinfo"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/cli"
	"github.com/dmitrijs2005/fictionalpotato/internal/client/config"
	"github.com/dmitrijs2005/fictionalpotato/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, cfg.LogLevel)

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		logger.Error(ctx, "startup failed", "error", err)
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil {
		logger.Error(ctx, "client stopped", "error", err)
		os.Exit(1)
	}
}
