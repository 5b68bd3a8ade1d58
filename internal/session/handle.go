// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// Handle is the filesystem-visible daemon marker: the unix socket address
// plus a pid file under the runtime directory. Its existence means "a daemon
// may be listening here" — only a successful connect proves one actually is.
type Handle struct {
	SocketPath string
	PIDFile    string
}

// Exists reports whether the socket file is present on disk.
func (h Handle) Exists() bool {
	_, err := os.Stat(h.SocketPath)
	return err == nil
}

// Probe attempts to connect to the socket within timeout. Only a successful
// connect counts as a live daemon; refusals, timeouts and a missing socket
// all report false.
func (h Handle) Probe(timeout time.Duration) bool {
	conn, err := net.DialTimeout("unix", h.SocketPath, timeout)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

// Stale reports whether the socket file exists but no daemon answers on it,
// i.e. a leftover from an unclean shutdown that must be removed before a
// fresh daemon can bind.
func (h Handle) Stale(timeout time.Duration) bool {
	return h.Exists() && !h.Probe(timeout)
}

// WritePID records the current process id in the pid file.
func (h Handle) WritePID() error {
	pid := strconv.Itoa(os.Getpid()) + "\n"
	if err := os.WriteFile(h.PIDFile, []byte(pid), 0o600); err != nil {
		return fmt.Errorf("write pid file: %w", err)
	}
	return nil
}

// ReadPID returns the process id recorded in the pid file.
func (h Handle) ReadPID() (int, error) {
	data, err := os.ReadFile(h.PIDFile)
	if err != nil {
		return 0, fmt.Errorf("read pid file: %w", err)
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid pid file contents: %w", err)
	}
	return pid, nil
}

// ProcessAlive reports whether the process recorded in the pid file still
// exists, using signal 0 as the liveness check. A missing or malformed pid
// file reports false.
func (h Handle) ProcessAlive() bool {
	pid, err := h.ReadPID()
	if err != nil {
		return false
	}
	proc, err := os.FindProcess(pid)
	if err != nil {
		return false
	}
	return proc.Signal(syscall.Signal(0)) == nil
}

// Remove deletes both marker files. Missing files are not an error; Remove
// is called on every shutdown path, clean or not.
func (h Handle) Remove() {
	_ = os.Remove(h.SocketPath)
	_ = os.Remove(h.PIDFile)
}
