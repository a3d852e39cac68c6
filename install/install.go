// Package install runs the package manager inside a freshly generated project.
package install

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"tscdk/project"
)

// ErrInstall is returned when the dependency install fails.
var ErrInstall = errors.New("dependency install failed")

// Runner wraps calls to the package manager binary.
type Runner struct {
	// Dir is the project directory the install runs in.
	Dir string

	// Stdout and Stderr receive the package manager output. When both are
	// nil the output is captured and attached to the error on failure.
	Stdout io.Writer
	Stderr io.Writer

	run func(cmd *exec.Cmd) error
}

// NewRunner creates a Runner for the project in dir.
func NewRunner(dir string) *Runner {
	return &Runner{
		Dir: dir,
		run: (*exec.Cmd).Run,
	}
}

// Install runs `<package manager> install`.
func (r *Runner) Install(ctx context.Context, pm project.PackageManager) error {
	args := []string{"install"}
	cmd := exec.CommandContext(ctx, pm.Executable(), args...)
	cmd.Dir = r.Dir

	var captured bytes.Buffer
	if r.Stdout == nil && r.Stderr == nil {
		cmd.Stdout = &captured
		cmd.Stderr = &captured
	} else {
		cmd.Stdout = r.Stdout
		cmd.Stderr = r.Stderr
	}

	if err := r.run(cmd); err != nil {
		line := pm.Executable() + " " + strings.Join(args, " ")
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			err = fmt.Errorf("%w: %s exited with code %d", ErrInstall, line, exitErr.ExitCode())
		} else {
			err = fmt.Errorf("%w: %s: %v", ErrInstall, line, err)
		}
		if out := strings.TrimSpace(captured.String()); out != "" {
			err = fmt.Errorf("%w\n%s", err, out)
		}
		return err
	}
	return nil
}
