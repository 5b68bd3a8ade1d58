// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/models"
)

// daemonBackend delegates every operation to a live daemon over IPC. The
// daemon keeps the store decrypted in memory, so no operation here touches
// the encryption provider in this process.
type daemonBackend struct {
	client adapter.IPCClient
}

func newDaemonBackend(client adapter.IPCClient) Backend {
	return &daemonBackend{client: client}
}

func (b *daemonBackend) Mode() string { return "daemon" }

func (b *daemonBackend) Add(ctx context.Context, key, value string) (string, error) {
	return b.client.Add(ctx, key, value)
}

func (b *daemonBackend) Remove(ctx context.Context, key string) (string, error) {
	return b.client.Remove(ctx, key)
}

func (b *daemonBackend) Get(ctx context.Context, key string) (string, error) {
	return b.client.Get(ctx, key)
}

func (b *daemonBackend) List(ctx context.Context) ([]string, error) {
	return b.client.List(ctx)
}

func (b *daemonBackend) Snapshot(ctx context.Context) ([]models.Secret, error) {
	return b.client.Snapshot(ctx)
}
