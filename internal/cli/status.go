package cli

import (
	"fmt"
	"time"

	"github.com/MKhiriev/go-env-keeper/models"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show whether the daemon is running and holding an unlocked session",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newIPCClient()
		if !client.Reachable() {
			fmt.Fprintln(cmd.OutOrStdout(), color.RedString("●")+" Daemon not running; commands use direct mode")
			return nil
		}

		ctx, cancel := requestContext()
		defer cancel()

		st, err := client.Status(ctx)
		if err != nil {
			return err
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s Daemon running (pid %d)\n", color.GreenString("●"), st.PID)
		if st.State == models.SessionUnlocked {
			fmt.Fprintf(cmd.OutOrStdout(), "  Session: unlocked since %s\n", st.StartedAt.Format(time.RFC3339))
			fmt.Fprintf(cmd.OutOrStdout(), "  Secrets: %d\n", st.SecretCount)
		} else {
			fmt.Fprintf(cmd.OutOrStdout(), "  Session: %s\n", st.State)
		}
		return nil
	},
}
