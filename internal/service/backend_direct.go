// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
)

// directBackend operates on the encrypted file without a daemon. Every
// operation pays a full decrypt, and every mutation a full decrypt-encrypt
// cycle; correctness matches the daemon path exactly, only the cost differs.
type directBackend struct {
	files *store.FileStore
}

func newDirectBackend(files *store.FileStore) Backend {
	return &directBackend{files: files}
}

func (b *directBackend) Mode() string { return "direct" }

func (b *directBackend) Add(_ context.Context, key, value string) (string, error) {
	if err := b.files.Add(key, value); err != nil {
		return "", err
	}
	return "Added secret: " + key, nil
}

func (b *directBackend) Remove(_ context.Context, key string) (string, error) {
	if err := b.files.Remove(key); err != nil {
		return "", err
	}
	return "Removed secret: " + key, nil
}

func (b *directBackend) Get(_ context.Context, key string) (string, error) {
	return b.files.Get(key)
}

func (b *directBackend) List(_ context.Context) ([]string, error) {
	return b.files.List()
}

func (b *directBackend) Snapshot(_ context.Context) ([]models.Secret, error) {
	return b.files.Snapshot()
}
