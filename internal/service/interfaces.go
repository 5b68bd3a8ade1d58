package service

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_mock.go -package=mock

// Backend is the store access surface the CLI commands program against.
// Two implementations exist: one that drives a running daemon over IPC and
// one that opens the encrypted file directly. Both expose identical
// semantics and error taxonomy, so command code never branches on the mode.
type Backend interface {
	// Mode names the active backend ("daemon" or "direct") for status
	// output and logging.
	Mode() string

	// Add creates or overwrites a secret and returns a confirmation
	// message. The change is durable before Add returns.
	Add(ctx context.Context, key, value string) (string, error)

	// Remove deletes a secret and returns a confirmation message.
	Remove(ctx context.Context, key string) (string, error)

	// Get returns the value of a single secret.
	Get(ctx context.Context, key string) (string, error)

	// List returns the secret keys in store order.
	List(ctx context.Context) ([]string, error)

	// Snapshot returns all secrets in store order.
	Snapshot(ctx context.Context) ([]models.Secret, error)
}
