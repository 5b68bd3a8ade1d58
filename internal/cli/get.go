package cli

import (
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
)

var getCopy bool

func init() {
	getCmd.Flags().BoolVarP(&getCopy, "copy", "c", false, "copy the value to the clipboard instead of printing it")
}

var getCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Print the value of one secret",
	Args:  cobra.MatchAll(exactArgs(1), requireKey(0)),
	RunE: func(cmd *cobra.Command, args []string) error {
		backend, err := resolveBackend()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		value, err := backend.Get(ctx, args[0])
		if err != nil {
			return err
		}

		if getCopy {
			if err := clipboard.WriteAll(value); err != nil {
				return fmt.Errorf("copy to clipboard: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Copied %s to clipboard\n", args[0])
			return nil
		}

		fmt.Fprintln(cmd.OutOrStdout(), value)
		return nil
	},
}
