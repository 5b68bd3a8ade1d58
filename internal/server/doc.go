// Package server wires and runs the daemon's IPC server.
//
// It owns the daemon handle on disk: binding the unix socket, restricting
// its permissions, writing the pid file, and removing both on shutdown.
// Stale handles left by an unclean shutdown are detected and reclaimed.
package server
