package finder

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExecFinder_ReturnsSelectedLine(t *testing.T) {
	// head -n1 stands in for an interactive matcher that picks the first line.
	f := &ExecFinder{Command: "head", Args: []string{"-n", "1"}}

	selected, err := f.Pick(context.Background(), []string{"😀 grinning face", "🏁 chequered flag"})
	require.NoError(t, err)
	assert.Equal(t, "😀 grinning face", selected)
}

func TestExecFinder_ExitCodeOneMeansNoSelection(t *testing.T) {
	// fzf exits 1 when nothing matched; that is not an error.
	f := &ExecFinder{Command: "false"}

	selected, err := f.Pick(context.Background(), []string{"😀 grinning face"})
	require.NoError(t, err)
	assert.Equal(t, "", selected)
}

func TestExecFinder_MissingCommandFails(t *testing.T) {
	f := &ExecFinder{Command: "definitely-not-a-fuzzy-finder"}

	_, err := f.Pick(context.Background(), []string{"😀 grinning face"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fuzzy finder")
}

func TestNewExecFinder_UsesConfiguredCommand(t *testing.T) {
	f := NewExecFinder(Config{Command: "fzf"})
	assert.Equal(t, "fzf", f.Command)
}
