package hyprctl

import (
	"bytes"
	"context"
	"os/exec"
	"strings"

	"github.com/pkg/errors"
)

// Runner executes an external program with the given arguments and returns its standard output. The arguments
// are passed to the program as-is (no shell is involved).
type Runner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// RunnerFunc is an adapter to allow the use of ordinary functions as Runner.
type RunnerFunc func(ctx context.Context, name string, args ...string) ([]byte, error)

// Run calls f(ctx, name, args...).
func (f RunnerFunc) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return f(ctx, name, args...)
}

// ExecRunner runs programs using os/exec.
type ExecRunner struct{}

var _ Runner = ExecRunner{} // ensure interface is implemented

// Run starts the program, waits for it and returns the standard output. Non-zero exit codes (as well as the
// failures to start the program) are reported as *CommandError with the standard error output attached.
func (ExecRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	var (
		cmd            = exec.CommandContext(ctx, name, args...)
		stdout, stderr bytes.Buffer
	)

	cmd.Stdout, cmd.Stderr = &stdout, &stderr

	if err := cmd.Run(); err != nil {
		var cmdErr = &CommandError{
			Command: commandLine(name, args),
			Stderr:  strings.TrimSpace(stderr.String()),
			cause:   err,
		}

		var exitErr *exec.ExitError

		if errors.As(err, &exitErr) {
			cmdErr.ExitCode = exitErr.ExitCode()
		} else {
			cmdErr.ExitCode = -1
		}

		if ctxErr := ctx.Err(); ctxErr != nil {
			cmdErr.cause = errors.Wrap(ctxErr, err.Error())
		}

		return stdout.Bytes(), cmdErr
	}

	return stdout.Bytes(), nil
}

// commandLine formats the command for the humans (error messages and logs).
func commandLine(name string, args []string) string {
	var b strings.Builder

	b.WriteString(name)

	for _, arg := range args {
		b.WriteRune(' ')

		if arg == "" || strings.ContainsAny(arg, " \t\n\"'\\$`") {
			b.WriteString(`"` + strings.ReplaceAll(arg, `"`, `\"`) + `"`)
		} else {
			b.WriteString(arg)
		}
	}

	return b.String()
}
