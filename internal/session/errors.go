package session

import "errors"

var (
	// ErrNotUnlocked is returned when an operation reaches a session that
	// is not in the Unlocked state.
	ErrNotUnlocked = errors.New("session not unlocked")

	// ErrAlreadyRunning is returned when a daemon start finds a live
	// daemon already answering on the handle.
	ErrAlreadyRunning = errors.New("daemon is already running")
)
