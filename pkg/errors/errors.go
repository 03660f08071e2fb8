package errors

import (
	"fmt"
	"strings"
)

// PlatformError reports a host platform with no install directive.
type PlatformError struct {
	Platform string
}

// NewPlatformError constructs a PlatformError.
func NewPlatformError(platform string) error {
	return &PlatformError{Platform: platform}
}

func (e *PlatformError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("unsupported platform: %s", e.Platform)
}

// MissingToolError reports a prerequisite executable absent from PATH.
type MissingToolError struct {
	Tool string
	Err  error
}

// NewMissingToolError constructs a MissingToolError.
func NewMissingToolError(tool string, err error) error {
	return &MissingToolError{Tool: tool, Err: err}
}

func (e *MissingToolError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("could not find %s in PATH", e.Tool)
}

// Unwrap exposes the underlying lookup error.
func (e *MissingToolError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CommandError represents an external command that could not run or exited
// non-zero. ExitCode is -1 when the command never started.
type CommandError struct {
	Args     []string
	ExitCode int
	Output   string
	Err      error
}

// NewCommandError constructs a CommandError.
func NewCommandError(args []string, exitCode int, output string, err error) error {
	return &CommandError{Args: args, ExitCode: exitCode, Output: output, Err: err}
}

func (e *CommandError) Error() string {
	if e == nil {
		return ""
	}
	msg := fmt.Sprintf("command %q failed: %v", strings.Join(e.Args, " "), e.Err)
	if e.Output != "" {
		msg = fmt.Sprintf("%s: %s", msg, e.Output)
	}
	return msg
}

// Unwrap exposes the underlying exec error.
func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// UnimplementedError marks a subcommand that is accepted but has no
// implementation yet.
type UnimplementedError struct {
	Command string
}

// NewUnimplementedError constructs an UnimplementedError.
func NewUnimplementedError(command string) error {
	return &UnimplementedError{Command: command}
}

func (e *UnimplementedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%q command is not implemented", e.Command)
}
