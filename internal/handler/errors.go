// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package handler

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/provider"
	"github.com/MKhiriev/go-env-keeper/internal/session"
	"github.com/MKhiriev/go-env-keeper/internal/store"
	"github.com/MKhiriev/go-env-keeper/models"
)

// writeError maps a dispatch error onto the wire. The client-side adapter
// performs the inverse mapping, so the error taxonomy survives the IPC hop:
//
//	unknown key            → 404
//	session not unlocked   → 503
//	provider failure       → 502
//	anything else          → 500
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromRequest(r).Error().Err(err).Msg("request failed")

	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrSecretNotFound):
		status = http.StatusNotFound
	case errors.Is(err, session.ErrNotUnlocked):
		status = http.StatusServiceUnavailable
	case errors.Is(err, provider.ErrIntegrity),
		errors.Is(err, provider.ErrNoKey),
		errors.Is(err, provider.ErrUnavailable):
		status = http.StatusBadGateway
	}

	writeJSON(w, status, models.ErrorResponse{Error: err.Error()})
}
