// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const (
	defaultProbeTimeout   = 250 * time.Millisecond
	defaultRequestTimeout = 15 * time.Second

	// defaultShell matches the original default of the export command.
	defaultShell = "fish"
)

// defaultConfig returns the built-in configuration layer, merged last so
// that environment variables and the JSON file always win.
//
// Path conventions:
//   - encrypted store:    <user config dir>/envkeeper/secrets.enc
//   - daemon handle:      <runtime dir>/envkeeper.sock, envkeeper.pid
//   - daemon log:         <runtime dir>/envkeeper-daemon.log
//   - provider key:       ~/.ssh/id_rsa
func defaultConfig() (*StructuredConfig, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving user config dir: %w", err)
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("error resolving user home dir: %w", err)
	}

	runDir := runtimeDir()

	return &StructuredConfig{
		App: App{
			DefaultShell: defaultShell,
		},
		Provider: Provider{
			KeyPath: filepath.Join(home, ".ssh", "id_rsa"),
		},
		Storage: Storage{
			StoreFile: filepath.Join(configDir, "envkeeper", "secrets.enc"),
		},
		Daemon: Daemon{
			SocketPath:     filepath.Join(runDir, "envkeeper.sock"),
			PIDFile:        filepath.Join(runDir, "envkeeper.pid"),
			LogFile:        filepath.Join(runDir, "envkeeper-daemon.log"),
			ProbeTimeout:   defaultProbeTimeout,
			RequestTimeout: defaultRequestTimeout,
		},
	}, nil
}

// runtimeDir returns XDG_RUNTIME_DIR when set, falling back to the system
// temp dir. The handle must live on a local filesystem that supports unix
// sockets, which both locations guarantee.
func runtimeDir() string {
	if dir := os.Getenv("XDG_RUNTIME_DIR"); dir != "" {
		return dir
	}
	return os.TempDir()
}
