package provider

import "errors"

// Sentinel errors returned by provider implementations to signal well-known
// failure conditions. Callers should use [errors.Is] to match against these
// values.
var (
	// ErrNoKey is returned when the configured key file does not exist or
	// does not contain a usable private key.
	ErrNoKey = errors.New("no usable encryption key")

	// ErrUnavailable is returned when the provider cannot operate at all,
	// e.g. the key file exists but cannot be read.
	ErrUnavailable = errors.New("encryption provider unavailable")

	// ErrIntegrity is returned when a decrypt fails: wrong or missing key,
	// or corrupted ciphertext. Retrying cannot succeed.
	ErrIntegrity = errors.New("decryption integrity failure")
)
