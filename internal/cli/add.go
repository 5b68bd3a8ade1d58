package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <key> <value>",
	Short: "Add a secret, or overwrite an existing one",
	Args:  cobra.MatchAll(exactArgs(2), requireKey(0)),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := resolveBackend()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		msg, err := backend.Add(ctx, args[0], args[1])
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}
