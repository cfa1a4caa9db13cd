package runner

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/cloudfoundry/lvm-expander/ui"
)

const acknowledgePrompt = "Press Enter to continue, or Ctrl+C to abort."

// RequiredCommands are the external tools the expansion needs.
var RequiredCommands = []string{
	"lsblk", "pvcreate", "vgextend", "lvextend",
	"resize2fs", "xfs_growfs", "pvs", "vgs", "lvs",
	"df", "findmnt", "parted",
}

type runner struct {
	cmdRunner boshsys.CmdRunner
	prompter  ui.Prompter
	output    ui.Output
	logger    boshlog.Logger
	logTag    string
}

func NewRunner(
	cmdRunner boshsys.CmdRunner,
	prompter ui.Prompter,
	output ui.Output,
	logger boshlog.Logger,
) Runner {
	return runner{
		cmdRunner: cmdRunner,
		prompter:  prompter,
		output:    output,
		logger:    logger,
		logTag:    "runner",
	}
}

func (r runner) Run(cmd Command) (CommandResult, error) {
	if cmd.ConfirmMessage != "" {
		r.output.Say(cmd.ConfirmMessage)
		if _, err := r.prompter.Ask(acknowledgePrompt); err != nil {
			return CommandResult{}, bosherr.WrapErrorf(err, "Waiting for acknowledgement to run '%s'", cmd)
		}
	}

	r.logger.Debug(r.logTag, "Running '%s'", cmd)

	stdout, stderr, exitStatus, err := r.cmdRunner.RunCommand(cmd.Name, cmd.Args...)

	result := CommandResult{
		Stdout:     strings.TrimSpace(stdout),
		Stderr:     strings.TrimSpace(stderr),
		ExitStatus: exitStatus,
	}

	r.logger.Debug(r.logTag, "'%s' exited with %d\nStdout:\n%s\nStderr:\n%s",
		cmd, result.ExitStatus, result.Stdout, result.Stderr)

	if err == nil {
		return result, nil
	}

	// bosh-utils reports -1 when the process could not be started at all
	if exitStatus == -1 {
		r.logger.Error(r.logTag, "Starting '%s': %s", cmd, err)
		return result, CommandNotFoundError{Name: cmd.Name, Cause: err}
	}

	if cmd.AllowFailure {
		return result, nil
	}

	r.logger.Error(r.logTag, "'%s' failed: %s", cmd, err)

	return result, CommandFailedError{
		Command:      cmd,
		ErrorMessage: cmd.ErrorMessage,
		Result:       result,
	}
}

func (r runner) CheckPrerequisites(names ...string) error {
	var missing []string

	for _, name := range names {
		if !r.cmdRunner.CommandExists(name) {
			r.logger.Error(r.logTag, "Required command '%s' is not available", name)
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return MissingPrerequisiteError{Missing: missing}
	}

	return nil
}
