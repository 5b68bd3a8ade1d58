package config

import "errors"

// Sentinel errors returned by [StructuredConfig.validate]. Callers should
// use [errors.Is] to match against these values.
var (
	// ErrInvalidStorageConfigs is returned when the encrypted store file
	// path is empty after merging all configuration sources.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidProviderConfigs is returned when no provider key path is
	// configured.
	ErrInvalidProviderConfigs = errors.New("invalid provider configs")

	// ErrInvalidDaemonConfigs is returned when the daemon handle paths are
	// empty or a timeout is non-positive.
	ErrInvalidDaemonConfigs = errors.New("invalid daemon configs")
)
