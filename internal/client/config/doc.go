// Package config loads runtime configuration for the Fictional Potato client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the authentication API
//	-t int      request timeout (seconds)
//	-s string   credential backend: keyring or file
//	-d string   data directory for the file backend
//	-l string   log level: debug, info, warn, error
//
// # JSON schema
//
// Durations go through timex.Duration, so values can be either strings like
// "10s" or integer nanoseconds. Missing keys keep their previous value:
//
//	{
//	  "server_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "credential_backend": "keyring",
//	  "credential_service": "fictional-potato",
//	  "data_dir": ".fictional-potato",
//	  "log_level": "info"
//	}
package config
