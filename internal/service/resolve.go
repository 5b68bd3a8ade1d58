// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/store"
)

// Resolve picks the backend for this invocation: the daemon when one answers
// on the socket, the encrypted file directly otherwise. openStore is called
// only on the direct path, so a missing private key never blocks an
// operation the daemon can serve from memory.
//
// The probe happens once per CLI run; a daemon appearing or vanishing
// mid-run surfaces through the per-request error paths, not by re-probing.
func Resolve(client adapter.IPCClient, openStore func() (*store.FileStore, error), log *logger.Logger) (Backend, error) {
	if client.Reachable() {
		log.Debug().Msg("daemon reachable, using IPC backend")
		return newDaemonBackend(client), nil
	}

	log.Debug().Msg("daemon not reachable, using direct backend")
	files, err := openStore()
	if err != nil {
		return nil, err
	}
	return newDirectBackend(files), nil
}
