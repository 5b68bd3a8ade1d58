// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a sentinel error otherwise.
func (cfg *StructuredConfig) validate() error {
	if cfg.Storage.StoreFile == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Provider.KeyPath == "" {
		return ErrInvalidProviderConfigs
	}

	if cfg.Daemon.SocketPath == "" || cfg.Daemon.PIDFile == "" ||
		cfg.Daemon.ProbeTimeout <= 0 || cfg.Daemon.RequestTimeout <= 0 {
		return ErrInvalidDaemonConfigs
	}

	return nil
}
