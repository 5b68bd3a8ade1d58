// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the secret store as a single encrypted blob file,
// replaced atomically on every save. It also provides the direct-mode
// load-mutate-save operations used when no daemon is running.
package store
