package cli

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Empty keys are rejected before any backend is resolved, so the daemon and
// the direct path can never disagree on them.
func TestKeyCommandsRejectEmptyKey(t *testing.T) {
	tests := []struct {
		cmd  *cobra.Command
		args []string
	}{
		{addCmd, []string{"", "value"}},
		{removeCmd, []string{""}},
		{getCmd, []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.cmd.Name(), func(t *testing.T) {
			err := tt.cmd.Args(tt.cmd, tt.args)
			require.ErrorIs(t, err, ErrUsage)
			assert.Equal(t, ExitUsage, ExitCode(err))
		})
	}
}

func TestKeyCommandsAcceptNonEmptyKey(t *testing.T) {
	require.NoError(t, addCmd.Args(addCmd, []string{"TOKEN", "value"}))
	require.NoError(t, removeCmd.Args(removeCmd, []string{"TOKEN"}))
	require.NoError(t, getCmd.Args(getCmd, []string{"TOKEN"}))

	// The empty value side of add stays legal; only the key is constrained.
	require.NoError(t, addCmd.Args(addCmd, []string{"TOKEN", ""}))
}
