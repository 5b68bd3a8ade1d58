package cli

import (
	"fmt"

	"github.com/MKhiriev/go-env-keeper/internal/shell"
	"github.com/spf13/cobra"
)

var exportShell string

func init() {
	exportCmd.Flags().StringVarP(&exportShell, "shell", "s", "", "target shell dialect (bash, zsh, fish or csh)")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Print eval-able export statements for all secrets",
	Long:  "Prints one assignment per secret in store order, quoted for the target\nshell. Only the statements go to stdout, so the output is safe to eval:\n\n  eval (envkeeper export | string collect)   # fish\n  eval \"$(envkeeper export --shell bash)\"    # bash/zsh",
	Args:  exactArgs(0),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := exportShell
		if name == "" {
			name = cfg.App.DefaultShell
		}
		dialect, err := shell.ParseDialect(name)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrUsage, err)
		}

		backend, err := resolveBackend()
		if err != nil {
			return err
		}

		ctx, cancel := requestContext()
		defer cancel()

		secrets, err := backend.Snapshot(ctx)
		if err != nil {
			return err
		}

		script, err := dialect.ExportLines(secrets)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), script)
		return nil
	},
}
