// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import "errors"

var (
	// ErrUsage marks argument and flag errors so main can exit with the
	// usage code instead of the generic failure code.
	ErrUsage = errors.New("usage error")

	// ErrUnlockTimeout means the spawned daemon did not report an unlocked
	// session before the polling deadline.
	ErrUnlockTimeout = errors.New("daemon did not come up in time")
)
