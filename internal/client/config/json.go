package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/fictionalpotato/internal/flagx"
	"github.com/dmitrijs2005/fictionalpotato/internal/timex"
)

// JsonConfig is the on-disk shape of the config file. Pointer fields tell an
// absent key apart from an empty one.
type JsonConfig struct {
	ServerURL         *string         `json:"server_url"`
	RequestTimeout    *timex.Duration `json:"request_timeout"`
	CredentialBackend *string         `json:"credential_backend"`
	CredentialService *string         `json:"credential_service"`
	DataDir           *string         `json:"data_dir"`
	LogLevel          *string         `json:"log_level"`
}

// parseJson overlays cfg with the JSON file named by -c/-config, if any.
// Read and decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath(os.Args[1:])
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	jc.apply(cfg)
}

func (jc *JsonConfig) apply(cfg *Config) {
	if jc.ServerURL != nil {
		cfg.ServerURL = *jc.ServerURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.CredentialBackend != nil {
		cfg.CredentialBackend = *jc.CredentialBackend
	}
	if jc.CredentialService != nil {
		cfg.CredentialService = *jc.CredentialService
	}
	if jc.DataDir != nil {
		cfg.DataDir = *jc.DataDir
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
}
