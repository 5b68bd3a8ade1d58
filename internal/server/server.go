// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/handler"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/session"
)

// Server defines the lifecycle contract for the daemon's IPC server.
//
// RunServer blocks until the server stops, either on a termination signal or
// after a client-requested stop.
type Server interface {
	// RunServer binds the unix socket, serves IPC requests and blocks
	// until shutdown.
	RunServer() error

	// Shutdown gracefully stops the server and removes the daemon handle.
	Shutdown()
}

type ipcServer struct {
	handle   session.Handle
	session  *session.Session
	server   *http.Server
	listener net.Listener

	probeTimeout  time.Duration
	stopRequested chan struct{}
	logger        *logger.Logger
}

// NewServer prepares the IPC server over the configured unix socket. The
// socket is not bound yet; that happens in RunServer, after the caller has
// unlocked the session.
func NewServer(sess *session.Session, cfg config.Daemon, log *logger.Logger) Server {
	log.Info().Str("socket", cfg.SocketPath).Msg("creating IPC server...")

	s := &ipcServer{
		handle:        session.Handle{SocketPath: cfg.SocketPath, PIDFile: cfg.PIDFile},
		session:       sess,
		probeTimeout:  cfg.ProbeTimeout,
		stopRequested: make(chan struct{}),
		logger:        log,
	}

	h := handler.NewHandler(sess, s.requestStop, log)
	s.server = &http.Server{Handler: h.Init()}

	return s
}

func (s *ipcServer) RunServer() error {
	if err := s.bind(); err != nil {
		return err
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals and client stop requests
	go func() {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("termination signal received")
		case <-s.stopRequested:
			s.logger.Info().Msg("stop requested by client")
		}

		s.Shutdown()
		close(idleConnectionsClosed)
	}()

	s.logger.Info().Msg("launching IPC server")
	if err := s.server.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error().Msgf("IPC server Serve: %v", err)
	}

	<-idleConnectionsClosed
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}

func (s *ipcServer) Shutdown() {
	if err := s.server.Shutdown(context.Background()); err != nil {
		s.logger.Error().Msgf("IPC server Shutdown: %v", err)
	}
	s.session.Stop()
	s.handle.Remove()
}

// bind claims the daemon handle. A live daemon on the socket means a second
// instance is being started and binding is refused; a stale socket left by
// an unclean shutdown is removed and the handle is claimed fresh.
func (s *ipcServer) bind() error {
	if s.handle.Exists() {
		if s.handle.Probe(s.probeTimeout) {
			return fmt.Errorf("%w: socket %s is live", session.ErrAlreadyRunning, s.handle.SocketPath)
		}
		s.logger.Warn().Str("socket", s.handle.SocketPath).Msg("removing stale daemon handle")
		s.handle.Remove()
	}

	listener, err := net.Listen("unix", s.handle.SocketPath)
	if err != nil {
		return fmt.Errorf("bind unix socket: %w", err)
	}

	// Other local users must not reach the unlocked store.
	if err := os.Chmod(s.handle.SocketPath, 0o600); err != nil {
		listener.Close()
		s.handle.Remove()
		return fmt.Errorf("restrict socket permissions: %w", err)
	}

	if err := s.handle.WritePID(); err != nil {
		listener.Close()
		s.handle.Remove()
		return err
	}

	s.listener = listener
	return nil
}

func (s *ipcServer) requestStop() {
	select {
	case <-s.stopRequested:
	default:
		close(s.stopRequested)
	}
}
