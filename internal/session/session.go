// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
)

// Session owns the decrypted store for the lifetime of one daemon process.
// It is the single concurrency-control point of the system: every IPC
// request is serialized through its mutex, so one logical operation —
// including its write-through persist — completes before the next begins.
//
// Lifecycle: Stopped → Unlocking → Unlocked → Stopped. Unlocked is entered
// at most once per process; the transition back to Stopped happens on an
// explicit stop or on process termination of any kind. No durable session
// state survives a crash; the encrypted file remains the source of truth.
type Session struct {
	mu    sync.Mutex
	state models.SessionState

	files     *store.FileStore
	st        *models.Store
	startedAt time.Time

	log *logger.Logger
}

// New constructs a stopped session over the given file store.
func New(files *store.FileStore, log *logger.Logger) *Session {
	return &Session{
		state: models.SessionStopped,
		files: files,
		log:   log,
	}
}

// Unlock decrypts the store once and enters Unlocked. A missing store file
// counts as an empty store. Calling Unlock on an already unlocked session is
// a no-op reporting the existing session (idempotent, no double decrypt).
// On failure the session returns to Stopped and the error propagates to the
// caller; no half-unlocked state is left behind.
func (s *Session) Unlock() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == models.SessionUnlocked {
		s.log.Debug().Msg("unlock requested on an already unlocked session")
		return nil
	}

	s.state = models.SessionUnlocking
	st, err := s.files.LoadOrEmpty()
	if err != nil {
		s.state = models.SessionStopped
		return fmt.Errorf("unlock session: %w", err)
	}

	s.st = st
	s.startedAt = time.Now()
	s.state = models.SessionUnlocked
	s.log.Info().Int("secrets", st.Len()).Msg("session unlocked")
	return nil
}

// Stop drops the in-memory store and returns the session to Stopped.
func (s *Session) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.st = nil
	s.startedAt = time.Time{}
	s.state = models.SessionStopped
	s.log.Info().Msg("session stopped")
}

// Status reports the session state without ever touching disk or triggering
// a decrypt.
func (s *Session) Status() models.StatusResponse {
	s.mu.Lock()
	defer s.mu.Unlock()

	resp := models.StatusResponse{State: s.state, PID: os.Getpid()}
	if s.state == models.SessionUnlocked {
		resp.StartedAt = s.startedAt
		resp.SecretCount = s.st.Len()
	}
	return resp
}

// Add creates or overwrites a secret. The mutation is applied to a copy of
// the in-memory store and persisted before the cache is swapped, so a
// failed save leaves both the file and the cache exactly as they were and
// the client is never told a lost write succeeded (write-through).
func (s *Session) Add(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureUnlocked(); err != nil {
		return err
	}

	next := cloneStore(s.st)
	next.Set(key, value)
	if err := s.files.Save(next); err != nil {
		return fmt.Errorf("persist add: %w", err)
	}

	s.st = next
	s.log.Info().Str("key", key).Msg("secret added")
	return nil
}

// Remove deletes a secret with the same write-through discipline as Add.
// Returns [store.ErrSecretNotFound] if the key is absent; nothing is
// persisted in that case.
func (s *Session) Remove(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureUnlocked(); err != nil {
		return err
	}

	next := cloneStore(s.st)
	if !next.Delete(key) {
		return fmt.Errorf("%w: %s", store.ErrSecretNotFound, key)
	}
	if err := s.files.Save(next); err != nil {
		return fmt.Errorf("persist remove: %w", err)
	}

	s.st = next
	s.log.Info().Str("key", key).Msg("secret removed")
	return nil
}

// Get returns the value for key from the in-memory store.
func (s *Session) Get(key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureUnlocked(); err != nil {
		return "", err
	}
	v, ok := s.st.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", store.ErrSecretNotFound, key)
	}
	return v, nil
}

// Keys returns the secret keys in store order from the in-memory store.
func (s *Session) Keys() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureUnlocked(); err != nil {
		return nil, err
	}
	return s.st.Keys(), nil
}

// Snapshot returns all secrets in store order from the in-memory store.
func (s *Session) Snapshot() ([]models.Secret, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.ensureUnlocked(); err != nil {
		return nil, err
	}
	return s.st.Snapshot(), nil
}

func (s *Session) ensureUnlocked() error {
	if s.state != models.SessionUnlocked {
		return fmt.Errorf("%w: session is %s", ErrNotUnlocked, s.state)
	}
	return nil
}

func cloneStore(st *models.Store) *models.Store {
	next := models.NewStore()
	for _, sec := range st.Snapshot() {
		next.Set(sec.Key, sec.Value)
	}
	return next
}
