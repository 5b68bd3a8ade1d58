// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-env-keeper application. It aggregates all sub-configurations and is
// populated by merging values from environment variables, an optional JSON
// file, and built-in defaults.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings such as the default export
	// dialect and the application version.
	App App `envPrefix:"ENVKEEPER_APP_"`

	// Provider holds configuration for the external encryption provider.
	Provider Provider `envPrefix:"ENVKEEPER_PROVIDER_"`

	// Storage holds the location of the encrypted secret store file.
	Storage Storage `envPrefix:"ENVKEEPER_STORAGE_"`

	// Daemon holds the daemon handle paths and IPC timeouts.
	Daemon Daemon `envPrefix:"ENVKEEPER_DAEMON_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged under the values
	// already loaded from environment variables.
	// Env: ENVKEEPER_CONFIG
	JSONFilePath string `env:"ENVKEEPER_CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// DefaultShell is the export dialect used when `export` is invoked
	// without --shell (bash, zsh, fish or csh).
	// Env: ENVKEEPER_APP_DEFAULT_SHELL
	DefaultShell string `env:"DEFAULT_SHELL"`

	// Version is the semantic version string of the running application.
	// Env: ENVKEEPER_APP_VERSION
	Version string `env:"VERSION"`
}

// Provider holds the external encryption provider settings.
type Provider struct {
	// KeyPath is the path to the user's private key file (PEM or OpenSSH).
	// The key must already exist; the application never generates keys.
	// Env: ENVKEEPER_PROVIDER_KEY_PATH
	KeyPath string `env:"KEY_PATH"`
}

// Storage holds the on-disk location of the encrypted store.
type Storage struct {
	// StoreFile is the path of the single encrypted blob holding the
	// whole secret store.
	// Env: ENVKEEPER_STORAGE_STORE_FILE
	StoreFile string `env:"STORE_FILE"`
}

// Daemon holds the daemon handle paths and the IPC timeouts shared by the
// server and the client.
type Daemon struct {
	// SocketPath is the unix socket the daemon listens on and clients
	// probe. Lives under the user's runtime directory.
	// Env: ENVKEEPER_DAEMON_SOCKET
	SocketPath string `env:"SOCKET"`

	// PIDFile is the liveness marker written by the daemon process.
	// Env: ENVKEEPER_DAEMON_PID_FILE
	PIDFile string `env:"PID_FILE"`

	// LogFile is where the detached daemon process writes its JSON logs.
	// Env: ENVKEEPER_DAEMON_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// ProbeTimeout bounds the client's reachability probe. On expiry the
	// daemon is treated as unreachable and the client falls back to
	// direct mode; the CLI never blocks on a wedged daemon.
	// Env: ENVKEEPER_DAEMON_PROBE_TIMEOUT
	ProbeTimeout time.Duration `env:"PROBE_TIMEOUT"`

	// RequestTimeout is the maximum duration of a single IPC exchange.
	// Env: ENVKEEPER_DAEMON_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Environment variables
//  2. JSON file (path resolved from source 1)
//  3. Built-in defaults (user config and runtime directories)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withJSON().
		withDefaults().
		build()
}
