// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/session"
	"github.com/MKhiriev/go-env-keeper/models"
)

// Handler decodes one IPC request per exchange, dispatches it to the
// session, and encodes exactly one response. All concurrency control lives
// in the session; handlers are free of locking.
type Handler struct {
	session  *session.Session
	logger   *logger.Logger
	shutdown func()
}

// NewHandler constructs the IPC handler. shutdown is invoked when a client
// requests the daemon to stop; the server wires it to its own graceful
// shutdown.
func NewHandler(sess *session.Session, shutdown func(), log *logger.Logger) *Handler {
	return &Handler{
		session:  sess,
		logger:   log,
		shutdown: shutdown,
	}
}

func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.session.Status())
}

func (h *Handler) snapshot(w http.ResponseWriter, r *http.Request) {
	secrets, err := h.session.Snapshot()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SecretsResponse{Secrets: secrets})
}

func (h *Handler) keys(w http.ResponseWriter, r *http.Request) {
	keys, err := h.session.Keys()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.KeysResponse{Keys: keys})
}

func (h *Handler) getSecret(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeProtocolError(w, "key query parameter is required")
		return
	}

	value, err := h.session.Get(key)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.SecretResponse{Key: key, Value: value})
}

func (h *Handler) add(w http.ResponseWriter, r *http.Request) {
	var req models.AddSecretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeProtocolError(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Key == "" {
		writeProtocolError(w, "key must not be empty")
		return
	}

	if err := h.session.Add(req.Key, req.Value); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Added secret: " + req.Key})
}

func (h *Handler) remove(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		writeProtocolError(w, "key query parameter is required")
		return
	}

	if err := h.session.Remove(key); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Removed secret: " + key})
}

func (h *Handler) stop(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Info().Msg("stop requested over IPC")
	writeJSON(w, http.StatusOK, models.MessageResponse{Message: "Daemon shutting down"})

	// The graceful shutdown waits for in-flight requests, this one
	// included, so it must not run on the handler goroutine.
	go h.shutdown()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeProtocolError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: msg})
}
