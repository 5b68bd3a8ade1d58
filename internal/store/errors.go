package store

import "errors"

// Sentinel errors returned by store methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrStoreNotFound is returned by Load when no encrypted store file
	// exists yet. Callers treat this as an empty store on first use.
	ErrStoreNotFound = errors.New("secret store file not found")

	// ErrSecretNotFound is returned when an operation targets a key that
	// is not present in the store.
	ErrSecretNotFound = errors.New("secret not found")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrStoreNotFound)
}
