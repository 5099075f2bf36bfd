package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/fictionalpotato/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Only -a, -t, -s, -d and -l are considered; everything else on the command
// line is filtered out by flagx.FilterArgs first. A malformed value panics.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-t", "-s", "-d", "-l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the authentication API")
	timeout := fs.Int("t", int(cfg.RequestTimeout.Seconds()), "request timeout (in seconds)")
	fs.StringVar(&cfg.CredentialBackend, "s", cfg.CredentialBackend, "credential backend (keyring|file)")
	fs.StringVar(&cfg.DataDir, "d", cfg.DataDir, "data directory for the file credential backend")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug|info|warn|error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	cfg.RequestTimeout = time.Duration(*timeout) * time.Second
}
