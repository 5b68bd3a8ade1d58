// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Secret is a single key/value pair held in the user's store, e.g. an API
// token exposed to the shell as an environment variable.
type Secret struct {
	// Key is the environment variable name. Unique within a store.
	Key string `json:"key"`

	// Value is the plaintext secret. It only ever exists in memory;
	// at rest the whole store is one encrypted blob.
	Value string `json:"value"`
}

// Store is the decrypted content of one user's secret file: an ordered
// key→value mapping. Insertion order is preserved so that list and export
// output is deterministic across sessions.
//
// Store is not safe for concurrent use; the session serializes access.
type Store struct {
	keys   []string
	values map[string]string
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{values: make(map[string]string)}
}

// Set inserts or overwrites the value for key. Overwriting keeps the key's
// original position; new keys append. Last write wins by design, matching
// the overwrite-on-save semantics of the encrypted file.
func (s *Store) Set(key, value string) {
	if s.values == nil {
		s.values = make(map[string]string)
	}
	if _, ok := s.values[key]; !ok {
		s.keys = append(s.keys, key)
	}
	s.values[key] = value
}

// Get returns the value for key and whether the key exists.
func (s *Store) Get(key string) (string, bool) {
	v, ok := s.values[key]
	return v, ok
}

// Delete removes key from the store. It reports whether the key existed.
func (s *Store) Delete(key string) bool {
	if _, ok := s.values[key]; !ok {
		return false
	}
	delete(s.values, key)
	for i, k := range s.keys {
		if k == key {
			s.keys = append(s.keys[:i], s.keys[i+1:]...)
			break
		}
	}
	return true
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (s *Store) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of secrets in the store.
func (s *Store) Len() int {
	return len(s.keys)
}

// Snapshot returns all secrets in insertion order. The returned slice is
// detached from the store and safe to hand to other components.
func (s *Store) Snapshot() []Secret {
	out := make([]Secret, 0, len(s.keys))
	for _, k := range s.keys {
		out = append(out, Secret{Key: k, Value: s.values[k]})
	}
	return out
}

// MarshalJSON serializes the store as a JSON array of secrets so that the
// key order survives the encrypt/decrypt round trip. An empty store
// serializes as "[]".
func (s *Store) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Snapshot())
}

// UnmarshalJSON restores a store from the array form produced by
// [Store.MarshalJSON]. A duplicate key keeps the last value, consistent with
// [Store.Set].
func (s *Store) UnmarshalJSON(data []byte) error {
	var secrets []Secret
	if err := json.Unmarshal(data, &secrets); err != nil {
		return fmt.Errorf("unmarshal store: %w", err)
	}
	s.keys = nil
	s.values = make(map[string]string, len(secrets))
	for _, sec := range secrets {
		s.Set(sec.Key, sec.Value)
	}
	return nil
}
