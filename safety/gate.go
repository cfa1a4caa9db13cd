package safety

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/cloudfoundry/lvm-expander/ui"
)

const (
	dangerAnswer  = "YES"
	warningAnswer = "yes"
)

// Gate asks the operator before anything irreversible happens. Every refusal
// is returned as ConfirmationRefusedError and callers must stop.
type Gate interface {
	// ConfirmDanger accepts only the exact literal "YES".
	ConfirmDanger(message string) error
	// ConfirmWarning accepts only the exact literal "yes".
	ConfirmWarning(message, abortMessage string) error
}

type ConfirmationRefusedError struct {
	Message string
}

func (e ConfirmationRefusedError) Error() string {
	return e.Message
}

type promptGate struct {
	prompter ui.Prompter
	output   ui.Output
	logger   boshlog.Logger
	logTag   string
}

func NewPromptGate(prompter ui.Prompter, output ui.Output, logger boshlog.Logger) Gate {
	return promptGate{
		prompter: prompter,
		output:   output,
		logger:   logger,
		logTag:   "safetyGate",
	}
}

func (g promptGate) ConfirmDanger(message string) error {
	g.output.Say("")
	g.output.Say("!!! DANGER !!!")
	g.output.Say(message)

	answer, err := g.prompter.Ask("Type 'YES' (in capitals) to confirm: ")
	if err != nil {
		return bosherr.WrapError(err, "Asking for confirmation")
	}

	if answer != dangerAnswer {
		g.logger.Warn(g.logTag, "Dangerous operation refused with answer '%s'", answer)
		return ConfirmationRefusedError{Message: "Confirmation failed. Aborting to prevent data loss."}
	}

	g.logger.Info(g.logTag, "Dangerous operation confirmed")
	return nil
}

func (g promptGate) ConfirmWarning(message, abortMessage string) error {
	g.output.Sayf("Warning: %s", message)

	answer, err := g.prompter.Ask("Are you sure you want to proceed? Type 'yes' to continue: ")
	if err != nil {
		return bosherr.WrapError(err, "Asking for confirmation")
	}

	if answer != warningAnswer {
		g.logger.Warn(g.logTag, "Warning refused with answer '%s'", answer)
		return ConfirmationRefusedError{Message: abortMessage}
	}

	return nil
}
