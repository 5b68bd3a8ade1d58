package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List secret keys in store order",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := resolveBackend()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		keys, err := backend.List(ctx)
		if err != nil {
			return err
		}

		if len(keys) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "No secrets found")
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Secrets:")
		for _, key := range keys {
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", key)
		}
		return nil
	},
}
