package cli

import (
	"net"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListRemote(t *testing.T) {
	server := mockDaemon(t, "/addresses", `{"addresses":["10.0.0.7","192.0.2.33"]}`)

	cmd := NewListCommand()
	cmd.SetArgs([]string{"--remote", server.URL})
	output, err := captureOutput(t, cmd.Execute)
	require.NoError(t, err)

	lines := strings.Fields(output)
	assert.Equal(t, []string{"10.0.0.7", "192.0.2.33"}, lines)
}

func TestListRemoteYAML(t *testing.T) {
	server := mockDaemon(t, "/addresses", `{"addresses":["10.0.0.7","192.0.2.33"]}`)

	cmd := NewListCommand()
	cmd.SetArgs([]string{"--remote", server.URL, "--output", "yaml"})
	output, err := captureOutput(t, cmd.Execute)
	require.NoError(t, err)
	assert.Contains(t, output, "addresses:")
	assert.Contains(t, output, "- 10.0.0.7")
	assert.Contains(t, output, "- 192.0.2.33")
}

func TestListLocal(t *testing.T) {
	cmd := NewListCommand()
	cmd.SetArgs([]string{})
	output, err := captureOutput(t, cmd.Execute)
	require.NoError(t, err)

	lines := strings.Fields(output)
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.NotNil(t, net.ParseIP(strings.Trim(line, "[]")), "got %q", line)
	}
}
