// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

var (
	// ErrBadRequest means the daemon rejected the request as malformed.
	ErrBadRequest = errors.New("daemon rejected request")

	// ErrDaemonStopped means the daemon answered but holds no unlocked
	// session.
	ErrDaemonStopped = errors.New("daemon session is not unlocked")

	// ErrProviderFailure means the daemon's encryption provider failed
	// while persisting or reading the store.
	ErrProviderFailure = errors.New("daemon provider failure")

	// ErrInternalServerError covers unclassified daemon-side failures.
	ErrInternalServerError = errors.New("daemon internal error")
)
