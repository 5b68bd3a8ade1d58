package adapter

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/ipc_client_mock.go -package=mock

// IPCClient is the client side of the daemon's request/response protocol.
// Every CLI invocation constructs one, probes reachability once, and either
// drives the daemon through it or falls back to direct mode.
type IPCClient interface {
	// Reachable reports whether a live daemon answers on the socket within
	// the configured probe timeout. A stale socket file with no listener
	// behind it reports false.
	Reachable() bool

	// Add creates or overwrites a secret and returns the daemon's
	// acknowledgement message. The daemon persists the change before
	// acknowledging (write-through).
	Add(ctx context.Context, key, value string) (string, error)

	// Remove deletes a secret and returns the daemon's acknowledgement
	// message.
	Remove(ctx context.Context, key string) (string, error)

	// Get returns the value of a single secret.
	Get(ctx context.Context, key string) (string, error)

	// List returns the secret keys in store order.
	List(ctx context.Context) ([]string, error)

	// Snapshot returns all secrets in store order.
	Snapshot(ctx context.Context) ([]models.Secret, error)

	// Status returns the daemon session state.
	Status(ctx context.Context) (models.StatusResponse, error)

	// Stop asks the daemon to shut down and returns its farewell message.
	Stop(ctx context.Context) (string, error)
}
