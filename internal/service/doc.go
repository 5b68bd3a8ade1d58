// Package service selects and implements the two store access modes: the
// daemon-backed IPC mode and the daemonless direct mode. Callers receive a
// [Backend] and cannot observe which mode serves them beyond its name.
package service
