// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package cli

import (
	"fmt"

	"github.com/MKhiriev/go-env-keeper/internal/config"
	"github.com/MKhiriev/go-env-keeper/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	verbose bool

	cfg *config.StructuredConfig
	log *logger.Logger

	rootCmd = &cobra.Command{
		Use:           "envkeeper",
		Short:         "Keep encrypted environment secrets and export them to your shell",
		Long:          "envkeeper stores secret environment variables in a single encrypted file\nand exports them as eval-able statements for bash, zsh, fish and csh.\nA per-user daemon keeps the store decrypted in memory between commands;\nwithout one, every command opens the encrypted file directly.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.GetStructuredConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			log = logger.NewLogger("cli")
			if verbose {
				log = log.SetLevel(zerolog.DebugLevel)
			} else {
				log = log.SetLevel(zerolog.WarnLevel)
			}
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging to stderr")

	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%w: %v", ErrUsage, err)
	})

	rootCmd.AddCommand(
		addCmd,
		removeCmd,
		getCmd,
		listCmd,
		exportCmd,
		unlockCmd,
		statusCmd,
		stopCmd,
		daemonCmd,
	)
}

// Execute runs the command tree. The returned error has already been mapped
// through the package sentinels; main converts it to an exit code with
// [ExitCode].
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}
