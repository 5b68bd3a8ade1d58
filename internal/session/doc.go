// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session implements the daemon core: the in-memory decrypted store
// with its Stopped/Unlocking/Unlocked lifecycle, write-through mutations,
// and the filesystem handle that advertises a running daemon.
package session
