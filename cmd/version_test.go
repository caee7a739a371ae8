package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCommand(t *testing.T) {
	installFakeWorkflow(t)

	out, err := executeCommand(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "version")
}
