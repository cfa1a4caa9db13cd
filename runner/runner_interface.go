package runner

import "strings"

type Command struct {
	Name string
	Args []string

	// ErrorMessage describes the failure when the command exits non-zero.
	ErrorMessage string

	// ConfirmMessage, when set, is shown before running and the operator
	// has to press Enter. It is advisory and not a destructive-action gate.
	ConfirmMessage string

	// AllowFailure hands a non-zero exit status back to the caller instead
	// of failing. A command that cannot be started still fails.
	AllowFailure bool
}

func (c Command) String() string {
	return strings.Join(append([]string{c.Name}, c.Args...), " ")
}

type CommandResult struct {
	Stdout     string
	Stderr     string
	ExitStatus int
}

func (r CommandResult) Succeeded() bool {
	return r.ExitStatus == 0
}

type Runner interface {
	Run(cmd Command) (CommandResult, error)
	CheckPrerequisites(names ...string) error
}
