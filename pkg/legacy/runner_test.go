package legacy

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFakeExec installs a shell script standing in for the legacy
// executable. It copies the input file to the output file so the test can
// check the full round trip.
func writeFakeExec(t *testing.T, dir, name, script string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
}

func TestExecRunnerRoundTrip(t *testing.T) {
	dir := t.TempDir()
	writeFakeExec(t, dir, "incollege", "cp InCollege-Input.txt InCollege-Output.txt\n")

	runner := NewExecRunner(dir, "incollege")
	out, err := runner.Run(context.Background(), []string{"1", "jdoe", "Pass123!", "10"})
	require.NoError(t, err)
	assert.Equal(t, "1\njdoe\nPass123!\n10\n", out)

	// The scripted input landed in the working directory.
	data, err := os.ReadFile(filepath.Join(dir, inputFile))
	require.NoError(t, err)
	assert.Equal(t, "1\njdoe\nPass123!\n10\n", string(data))
}

func TestExecRunnerClearsStaleOutput(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, outputFile), []byte("stale\n"), 0o644))
	writeFakeExec(t, dir, "incollege", "printf 'fresh\\n' > InCollege-Output.txt\n")

	runner := NewExecRunner(dir, "incollege")
	out, err := runner.Run(context.Background(), []string{"10"})
	require.NoError(t, err)
	assert.Equal(t, "fresh\n", out)
}

func TestExecRunnerTimesOutWithoutOutput(t *testing.T) {
	dir := t.TempDir()
	// Executable exits cleanly but never writes the output file.
	writeFakeExec(t, dir, "incollege", "exit 0\n")

	runner := NewExecRunner(dir, "incollege")
	start := time.Now()
	_, err := runner.Run(context.Background(), []string{"10"})
	assert.ErrorIs(t, err, ErrOutputTimeout)
	// Polling window is about two seconds; leave slack for slow machines.
	assert.Less(t, time.Since(start), 10*time.Second)
}

func TestExecRunnerMissingExecutable(t *testing.T) {
	runner := NewExecRunner(t.TempDir(), "incollege")
	_, err := runner.Run(context.Background(), []string{"10"})
	assert.Error(t, err)
}
