// Package legacy drives the original batch executable that still owns the
// account store. The service scripts its menus through an input file and
// pattern-matches the text it writes back; that string contract is fragile
// by nature, so it is isolated behind the Runner interface and nothing
// else in the system sees raw output.
package legacy

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"
)

// File names the executable reads and writes in its working directory.
const (
	inputFile  = "InCollege-Input.txt"
	outputFile = "InCollege-Output.txt"
)

const (
	pollAttempts = 20
	pollInterval = 100 * time.Millisecond
)

// ErrOutputTimeout means the executable ran but never produced its output
// file within the polling window.
var ErrOutputTimeout = errors.New("legacy: no output file after execution")

// Runner executes the legacy program against a list of scripted input
// lines and returns its raw text output.
type Runner interface {
	Run(ctx context.Context, lines []string) (string, error)
}

// ExecRunner runs the real executable in its working directory.
type ExecRunner struct {
	dir      string
	execName string
}

func NewExecRunner(dir, execName string) *ExecRunner {
	return &ExecRunner{dir: dir, execName: execName}
}

// Run writes the scripted lines to the input file, clears any stale output
// file, invokes the executable, and polls for the output file to appear
// (at most pollAttempts * pollInterval, about two seconds).
func (r *ExecRunner) Run(ctx context.Context, lines []string) (string, error) {
	input := strings.Join(lines, "\n") + "\n"
	if err := os.WriteFile(filepath.Join(r.dir, inputFile), []byte(input), 0o644); err != nil {
		return "", fmt.Errorf("legacy: write input: %w", err)
	}
	outputPath := filepath.Join(r.dir, outputFile)
	if err := os.Remove(outputPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return "", fmt.Errorf("legacy: clear output: %w", err)
	}

	cmd := exec.CommandContext(ctx, "./"+r.execName)
	cmd.Dir = r.dir
	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("legacy: run %s: %w", r.execName, err)
	}

	for attempt := 0; attempt < pollAttempts; attempt++ {
		data, err := os.ReadFile(outputPath)
		if err == nil {
			return string(data), nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("legacy: read output: %w", err)
		}
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(pollInterval):
		}
	}
	return "", ErrOutputTimeout
}
