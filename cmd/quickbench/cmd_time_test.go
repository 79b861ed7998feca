package main

import (
	"os/exec"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not found")
	}
}

func TestTimeCommand(t *testing.T) {
	requireShell(t)

	stdout, stderr, err := executeCommand(t, "time", "--", "sh", "-c", "echo hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", stdout)
	assert.Contains(t, stderr, "⏱️  [sh] finished in ")
}

func TestTimeCommand_Label(t *testing.T) {
	requireShell(t)

	_, stderr, err := executeCommand(t, "time", "--label", "greeting", "--", "sh", "-c", "true")
	require.NoError(t, err)
	assert.Contains(t, stderr, "⏱️  [greeting] finished in ")
}

func TestTimeCommand_FailureStillReports(t *testing.T) {
	requireShell(t)

	_, stderr, err := executeCommand(t, "time", "--", "sh", "-c", "exit 3")
	require.Error(t, err)

	var exitErr *exec.ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.Equal(t, 3, exitErr.ExitCode())
	assert.Contains(t, stderr, "⏱️  [sh] finished in ")
}

func TestTimeCommand_RequiresCommand(t *testing.T) {
	_, _, err := executeCommand(t, "time")
	require.Error(t, err)
}
