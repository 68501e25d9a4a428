package completion_test

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentstation/brickline/cmd/brickline/cmd/completion"
	"github.com/agentstation/brickline/internal/cmd/constants"
)

func TestCompletion(t *testing.T) {
	for _, shell := range constants.Shells() {
		t.Run(shell, func(t *testing.T) {
			root := &cobra.Command{Use: "brickline"}
			root.AddCommand(&cobra.Command{Use: "merge", Run: func(*cobra.Command, []string) {}})
			root.AddCommand(completion.NewCommand())

			var out bytes.Buffer
			root.SetOut(&out)
			root.SetArgs([]string{"completion", shell})
			require.NoError(t, root.Execute())
			assert.Contains(t, out.String(), "brickline")
		})
	}
}

func TestCompletionRejectsUnknownShell(t *testing.T) {
	root := &cobra.Command{Use: "brickline", SilenceErrors: true, SilenceUsage: true}
	root.AddCommand(completion.NewCommand())
	root.SetArgs([]string{"completion", "tcsh"})
	assert.Error(t, root.Execute())
}
