package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var stopCmd = &cobra.Command{
	Use:   "stop",
	Short: "Stop the running daemon",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newIPCClient()
		if !client.Reachable() {
			fmt.Fprintln(cmd.OutOrStdout(), "Daemon is not running")
			return nil
		}

		ctx, cancel := requestContext()
		defer cancel()

		msg, err := client.Stop(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintln(cmd.OutOrStdout(), msg)
		return nil
	},
}
