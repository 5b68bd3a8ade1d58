// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-env-keeper/internal/provider"
	"github.com/MKhiriev/go-env-keeper/models"
)

// FileStore owns the canonical encrypted secret file on disk. It is the only
// component that touches that file: it serializes the store, encrypts the
// payload through the provider, and replaces the file atomically so that a
// concurrent reader can never observe a half-written blob.
//
// The convenience mutators (Add, Remove) exist for direct mode, where no
// daemon is running: each is a full load-mutate-save cycle, i.e. one provider
// decrypt plus one provider encrypt per invocation. That cost is exactly why
// the daemon exists. Two racing direct-mode saves resolve last-write-wins on
// rename; funneling operations through a running daemon removes that race.
type FileStore struct {
	path     string
	provider provider.Provider
}

// New constructs a FileStore over the encrypted file at path, using p to
// encrypt and decrypt the payload.
func New(path string, p provider.Provider) *FileStore {
	return &FileStore{path: path, provider: p}
}

// Load reads the encrypted file, decrypts it via the provider and
// deserializes the store. Returns ErrStoreNotFound when no store file exists
// yet; callers must treat that as an empty store on first use, not a fatal
// error.
func (f *FileStore) Load() (*models.Store, error) {
	blob, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrStoreNotFound, f.path)
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	plaintext, err := f.provider.Decrypt(blob)
	if err != nil {
		return nil, fmt.Errorf("decrypt store: %w", err)
	}

	st := models.NewStore()
	if err := json.Unmarshal(plaintext, st); err != nil {
		return nil, fmt.Errorf("deserialize store: %w", err)
	}
	return st, nil
}

// LoadOrEmpty is Load with the first-use case folded in: a missing store
// file yields an empty store. Every other error propagates.
func (f *FileStore) LoadOrEmpty() (*models.Store, error) {
	st, err := f.Load()
	if err != nil {
		if isNotFound(err) {
			return models.NewStore(), nil
		}
		return nil, err
	}
	return st, nil
}

// Save serializes st, encrypts it and atomically replaces the on-disk file
// (write to a temp file in the same directory, fsync, rename). A crash at
// any point leaves either the old blob or the new blob, never a mix.
func (f *FileStore) Save(st *models.Store) error {
	plaintext, err := json.Marshal(st)
	if err != nil {
		return fmt.Errorf("serialize store: %w", err)
	}

	blob, err := f.provider.Encrypt(plaintext)
	if err != nil {
		return fmt.Errorf("encrypt store: %w", err)
	}

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create store dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".secrets-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp store file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op after a successful rename

	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod temp store file: %w", err)
	}
	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("write temp store file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync temp store file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store file: %w", err)
	}

	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("replace store file: %w", err)
	}
	return nil
}

// Add sets key to value through a full load-mutate-save cycle. An existing
// key is overwritten silently (last write wins).
func (f *FileStore) Add(key, value string) error {
	st, err := f.LoadOrEmpty()
	if err != nil {
		return err
	}
	st.Set(key, value)
	return f.Save(st)
}

// Remove deletes key through a full load-mutate-save cycle. Returns
// ErrSecretNotFound if the key is absent; the file is left untouched.
func (f *FileStore) Remove(key string) error {
	st, err := f.LoadOrEmpty()
	if err != nil {
		return err
	}
	if !st.Delete(key) {
		return fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}
	return f.Save(st)
}

// Get returns the value for key after a one-shot decrypt. Returns
// ErrSecretNotFound if the key is absent.
func (f *FileStore) Get(key string) (string, error) {
	st, err := f.LoadOrEmpty()
	if err != nil {
		return "", err
	}
	v, ok := st.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrSecretNotFound, key)
	}
	return v, nil
}

// List returns the secret keys in store order after a one-shot decrypt.
func (f *FileStore) List() ([]string, error) {
	st, err := f.LoadOrEmpty()
	if err != nil {
		return nil, err
	}
	return st.Keys(), nil
}

// Snapshot returns all secrets in store order after a one-shot decrypt.
func (f *FileStore) Snapshot() ([]models.Secret, error) {
	st, err := f.LoadOrEmpty()
	if err != nil {
		return nil, err
	}
	return st.Snapshot(), nil
}
