// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"

	"github.com/MKhiriev/go-env-keeper/internal/adapter"
	"github.com/MKhiriev/go-env-keeper/internal/provider"
	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

const (
	unlockTimeout      = 10 * time.Second
	unlockPollInterval = 100 * time.Millisecond
)

var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Start the daemon and decrypt the store into its memory",
	Long:  "Spawns the daemon as a detached process, waits until it reports an\nunlocked session, and returns. Running unlock while a daemon is already\nup is a no-op.",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newIPCClient()
		if client.Reachable() {
			fmt.Fprintln(cmd.OutOrStdout(), "Daemon already running")
			return nil
		}

		// Parse the key before spawning so a missing or unreadable key
		// fails here with a real error instead of a poll timeout.
		if _, err := provider.NewKeypairProvider(cfg.Provider.KeyPath); err != nil {
			return err
		}

		s, cleanup := startSpinner("Unlocking secrets...")
		defer cleanup()

		if err := spawnDaemon(); err != nil {
			return err
		}

		count, err := waitUnlocked(client)
		if err != nil {
			return err
		}

		s.FinalMSG = fmt.Sprintf("%s Unlocked (%d secrets)\n", color.GreenString("✓"), count)
		return nil
	},
}

// spawnDaemon re-executes this binary with the hidden daemon command in a
// new session, fully detached from the terminal. The daemon owns its handle
// files; this process never writes them.
func spawnDaemon() error {
	exe, err := os.Executable()
	if err != nil {
		return fmt.Errorf("locate own binary: %w", err)
	}

	daemon := exec.Command(exe, "daemon")
	daemon.SysProcAttr = &syscall.SysProcAttr{Setsid: true}
	// Stdin, Stdout and Stderr stay nil: the child reads from and writes
	// to the null device. Daemon logs go to the configured log file.

	if err := daemon.Start(); err != nil {
		return fmt.Errorf("spawn daemon: %w", err)
	}
	if err := daemon.Process.Release(); err != nil {
		return fmt.Errorf("release daemon process: %w", err)
	}

	log.Debug().Str("binary", exe).Msg("daemon spawned")
	return nil
}

// waitUnlocked polls the daemon until it reports an unlocked session and
// returns the secret count it holds. The daemon binds its socket only after
// a successful decrypt, so reachability alone is close to sufficient; the
// status check makes it exact.
func waitUnlocked(client adapter.IPCClient) (int, error) {
	deadline := time.Now().Add(unlockTimeout)
	for time.Now().Before(deadline) {
		if client.Reachable() {
			ctx, cancel := requestContext()
			st, err := client.Status(ctx)
			cancel()
			if err == nil && st.State == models.SessionUnlocked {
				return st.SecretCount, nil
			}
		}
		time.Sleep(unlockPollInterval)
	}

	return 0, fmt.Errorf("%w after %s; check the daemon log at %s",
		ErrUnlockTimeout, unlockTimeout, cfg.Daemon.LogFile)
}
