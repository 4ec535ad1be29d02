package spooler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// ExecRunner runs commands with os/exec
type ExecRunner struct{}

// Output runs name with args and returns stdout. A non-zero exit is returned
// as an error carrying the command's stderr.
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	var stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = &stderr

	out, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && msg != "" {
			return out, fmt.Errorf("%s exited with status %d: %s", name, exitErr.ExitCode(), msg)
		}

		return out, fmt.Errorf("%s failed: %w", name, err)
	}

	return out, nil
}
