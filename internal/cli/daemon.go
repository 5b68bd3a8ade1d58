// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/MKhiriev/go-env-keeper/internal/server"
	"github.com/MKhiriev/go-env-keeper/internal/session"
	"github.com/spf13/cobra"
)

// daemonCmd runs the daemon in the foreground of the current process. It is
// hidden: users reach it through `unlock`, which spawns it detached. Running
// it by hand is still supported for debugging.
var daemonCmd = &cobra.Command{
	Use:    "daemon",
	Hidden: true,
	Short:  "Run the secrets daemon in the foreground",
	Args:   exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		dlog := logger.NewDaemonLogger("daemon", cfg.Daemon.LogFile)

		files, err := openFileStore()
		if err != nil {
			dlog.Error().Err(err).Msg("open store failed")
			return err
		}

		sess := session.New(files, dlog)

		// Unlock before binding the socket: a reachable socket promises
		// an unlocked session, which is what unlock's polling relies on.
		if err := sess.Unlock(); err != nil {
			dlog.Error().Err(err).Msg("unlock failed")
			return err
		}

		srv := server.NewServer(sess, cfg.Daemon, dlog)
		return srv.RunServer()
	},
}
