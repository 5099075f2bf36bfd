package config

import (
	"time"

	"github.com/dmitrijs2005/fictionalpotato/internal/common"
)

// Credential store backends.
const (
	BackendKeyring = "keyring"
	BackendFile    = "file"
)

// Config holds runtime settings for the client.
//
// Fields:
//   - ServerURL: base URL of the authentication HTTP API.
//   - RequestTimeout: per-request deadline for API calls.
//   - CredentialBackend: where the refresh token lives, "keyring" or "file".
//   - CredentialService: service name of the keyring entry.
//   - DataDir: directory for the file backend's vault.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerURL         string
	RequestTimeout    time.Duration
	CredentialBackend string
	CredentialService string
	DataDir           string
	LogLevel          string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:8080"
	c.RequestTimeout = 10 * time.Second
	c.CredentialBackend = BackendKeyring
	c.CredentialService = common.CredentialService
	c.DataDir = ".fictional-potato"
	c.LogLevel = "info"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
