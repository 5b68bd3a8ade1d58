// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// SessionState names a daemon lifecycle state as reported over IPC.
type SessionState string

const (
	// SessionStopped means no daemon is running; clients operate in
	// direct mode against the encrypted file.
	SessionStopped SessionState = "stopped"

	// SessionUnlocking is the transient state while the daemon decrypts
	// the store during startup.
	SessionUnlocking SessionState = "unlocking"

	// SessionUnlocked means the daemon holds the decrypted store in
	// memory and is serving requests.
	SessionUnlocked SessionState = "unlocked"
)

// AddSecretRequest is the request body for creating or overwriting a secret.
type AddSecretRequest struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// SecretsResponse carries a full ordered snapshot of the store.
type SecretsResponse struct {
	Secrets []Secret `json:"secrets"`
}

// KeysResponse carries the secret keys in store order, without values.
type KeysResponse struct {
	Keys []string `json:"keys"`
}

// SecretResponse carries a single secret value.
type SecretResponse struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// StatusResponse describes the daemon session.
type StatusResponse struct {
	// State is the current session state.
	State SessionState `json:"state"`

	// StartedAt is the time the session entered Unlocked.
	// Zero when State is not "unlocked".
	StartedAt time.Time `json:"started_at,omitzero"`

	// PID is the daemon process id, for diagnostics only.
	PID int `json:"pid,omitempty"`

	// SecretCount is the number of secrets held in the in-memory store.
	SecretCount int `json:"secret_count"`
}

// MessageResponse acknowledges a mutating request with a human-readable
// message that the CLI prints verbatim.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the uniform error envelope for every non-2xx reply.
type ErrorResponse struct {
	Error string `json:"error"`
}
