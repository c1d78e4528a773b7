package cmd

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/potomac-dev/potomac/internal/types"
)

// chdir mirrors t.Chdir (Go 1.24+), unavailable on the Go 1.21 toolchain.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() {
		require.NoError(t, os.Chdir(wd))
	})
}

func TestParseKind(t *testing.T) {
	for _, valid := range []string{"theme", "plugin", "core"} {
		kind, ok := parseKind(valid)
		assert.True(t, ok)
		assert.Equal(t, valid, kind.String())
	}

	_, ok := parseKind("widget")
	assert.False(t, ok)
}

func TestRootCommand_HasSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"inspect", "check", "path", "watch", "version"} {
		assert.True(t, names[want], "missing subcommand %q", want)
	}
}

func TestInspect_UnknownKind(t *testing.T) {
	err := runInspect(inspectCmd, []string{"widget", "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown package kind")
}

func TestInspect_MissingPackage(t *testing.T) {
	chdir(t, t.TempDir())

	err := runInspect(inspectCmd, []string{string(types.KindTheme), "ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
