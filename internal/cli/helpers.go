package cli

import (
	"context"
	"fmt"
	"io"
	stdlog "log"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/provider"
	"github.com/MKhiriev/go-env-keeper/internal/service"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

// exactArgs mirrors cobra.ExactArgs but marks the failure as a usage error
// so it maps to the usage exit code.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %q accepts %d arg(s), received %d", ErrUsage, cmd.Name(), n, len(args))
		}
		return nil
	}
}

// requireKey rejects an empty <key> argument before any backend is touched,
// so daemon and direct mode cannot diverge on it.
func requireKey(pos int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if pos < len(args) && args[pos] == "" {
			return fmt.Errorf("%w: key must not be empty", ErrUsage)
		}
		return nil
	}
}

func newIPCClient() adapter.IPCClient {
	return adapter.NewIPCClient(cfg.Daemon)
}

// openFileStore parses the private key and wraps the encrypted store file.
// Only the direct path and the daemon process call it; daemon-served
// commands never need the key.
func openFileStore() (*store.FileStore, error) {
	p, err := provider.NewKeypairProvider(cfg.Provider.KeyPath)
	if err != nil {
		return nil, err
	}
	return store.New(cfg.Storage.StoreFile, p), nil
}

func resolveBackend() (service.Backend, error) {
	return service.Resolve(newIPCClient(), openFileStore, log)
}

// requestContext bounds one IPC exchange or direct-mode operation.
func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), cfg.Daemon.RequestTimeout)
}

// startSpinner shows a progress spinner on stderr-adjacent terminal output.
// In verbose mode the spinner would interleave with log lines, so it stays
// off and the messages speak for themselves.
func startSpinner(message string) (*spinner.Spinner, func()) {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond)
	s.Suffix = " " + message

	// Ignore color errors - continue without colored spinner if it fails.
	_ = s.Color("cyan")

	if !verbose {
		s.Start()
		stdlog.SetOutput(io.Discard)
	}

	cleanup := func() {
		if !verbose {
			s.Stop()
		}
	}
	return s, cleanup
}
