package execx

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
)

// RunOptions controls where a command runs and where its output goes.
type RunOptions struct {
	Dir    string
	Env    []string
	Stdout io.Writer
	Stderr io.Writer
}

// RunResult captures the trimmed stdout/stderr emitted by a command run.
type RunResult struct {
	Stdout string
	Stderr string
}

// Runner abstracts process execution and PATH lookup so callers can be
// exercised without spawning real commands.
type Runner interface {
	Run(ctx context.Context, name string, args []string, opts RunOptions) (RunResult, error)
	LookPath(file string) (string, error)
}

// CmdRunner executes commands with os/exec, wiring the command's
// stdout/stderr through to the parent process while collecting the output
// for later inspection.
type CmdRunner struct{}

var _ Runner = CmdRunner{}

func (CmdRunner) Run(ctx context.Context, name string, args []string, opts RunOptions) (RunResult, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	if opts.Dir != "" {
		cmd.Dir = opts.Dir
	}
	if len(opts.Env) > 0 {
		cmd.Env = append(os.Environ(), opts.Env...)
	}

	var stdoutBuf, stderrBuf bytes.Buffer

	stdoutTarget := io.Writer(os.Stdout)
	if opts.Stdout != nil {
		stdoutTarget = opts.Stdout
	}
	stderrTarget := io.Writer(os.Stderr)
	if opts.Stderr != nil {
		stderrTarget = opts.Stderr
	}

	cmd.Stdout = io.MultiWriter(stdoutTarget, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderrTarget, &stderrBuf)

	err := cmd.Run()

	return RunResult{
		Stdout: strings.TrimSpace(stdoutBuf.String()),
		Stderr: strings.TrimSpace(stderrBuf.String()),
	}, err
}

func (CmdRunner) LookPath(file string) (string, error) {
	return exec.LookPath(file)
}

// PrimaryOutput returns stderr if present, otherwise stdout.
func PrimaryOutput(res RunResult) string {
	if res.Stderr != "" {
		return res.Stderr
	}
	return res.Stdout
}

// ExitCode extracts the exit status carried by err, or -1 when the command
// never ran or err is not an exit error.
func ExitCode(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}
