package runner

import (
	"fmt"
	"strings"
)

type CommandNotFoundError struct {
	Name  string
	Cause error
}

func (e CommandNotFoundError) Error() string {
	return fmt.Sprintf("Command '%s' not found. Is it installed and in your PATH?", e.Name)
}

type CommandFailedError struct {
	Command      Command
	ErrorMessage string
	Result       CommandResult
}

func (e CommandFailedError) Error() string {
	msg := e.ErrorMessage
	if msg == "" {
		msg = fmt.Sprintf("Command exited with status %d", e.Result.ExitStatus)
	}

	return fmt.Sprintf(
		"%s\nCommand: %s\nStdout:\n%s\nStderr:\n%s",
		msg, e.Command, e.Result.Stdout, e.Result.Stderr,
	)
}

type MissingPrerequisiteError struct {
	Missing []string
}

func (e MissingPrerequisiteError) Error() string {
	return fmt.Sprintf(
		"Required command(s) '%s' not found. Please install them.",
		strings.Join(e.Missing, "', '"),
	)
}
