package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRootCmd_SolveRunsEndToEnd(t *testing.T) {
	path := writeProblem(t, singleEdgeProblem)

	root := NewRootCmd()
	root.SetArgs([]string{"solve", "--file", path, "--log-level", "error"})

	require.NoError(t, root.Execute())
}

func TestNewRootCmd_SolveRequiresFile(t *testing.T) {
	root := NewRootCmd()
	root.SetArgs([]string{"solve"})

	assert.Error(t, root.Execute())
}
