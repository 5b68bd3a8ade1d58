// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"errors"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/provider"
	"github.com/MKhiriev/go-env-keeper/internal/store"
)

// Exit codes. A scripting caller can distinguish "the key does not exist"
// from "the store could not be decrypted" without parsing messages.
const (
	ExitOK       = 0
	ExitFailure  = 1
	ExitUsage    = 2
	ExitProvider = 3
	ExitStore    = 4
	ExitProtocol = 5
)

// ExitCode maps an error from [Execute] to the process exit code.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, ErrUsage):
		return ExitUsage
	case errors.Is(err, provider.ErrNoKey),
		errors.Is(err, provider.ErrIntegrity),
		errors.Is(err, provider.ErrUnavailable),
		errors.Is(err, adapter.ErrProviderFailure):
		return ExitProvider
	case errors.Is(err, store.ErrSecretNotFound),
		errors.Is(err, store.ErrStoreNotFound):
		return ExitStore
	case errors.Is(err, adapter.ErrBadRequest),
		errors.Is(err, adapter.ErrDaemonStopped),
		errors.Is(err, adapter.ErrInternalServerError):
		return ExitProtocol
	default:
		return ExitFailure
	}
}
