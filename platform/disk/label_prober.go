package disk

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/cloudfoundry/lvm-expander/runner"
)

type LabelProber interface {
	// HasPartitionTable is a best-effort hint for the operator, not a
	// precondition.
	HasPartitionTable(devicePath string) (bool, error)
}

type partedLabelProber struct {
	runner runner.Runner
	logger boshlog.Logger
	logTag string
}

func NewPartedLabelProber(runner runner.Runner, logger boshlog.Logger) LabelProber {
	return partedLabelProber{
		runner: runner,
		logger: logger,
		logTag: "partedLabelProber",
	}
}

func (p partedLabelProber) HasPartitionTable(devicePath string) (bool, error) {
	result, err := p.runner.Run(runner.Command{
		Name:         "parted",
		Args:         []string{"-s", devicePath, "print"},
		AllowFailure: true,
	})
	if err != nil {
		return false, bosherr.WrapErrorf(err, "Probing partition table of '%s'", devicePath)
	}

	if !result.Succeeded() {
		return false, nil
	}

	// parted spells it both ways depending on version
	output := result.Stdout + "\n" + result.Stderr
	for _, marker := range []string{"Error", "unrecognised disk label", "unrecognized disk label"} {
		if strings.Contains(output, marker) {
			p.logger.Debug(p.logTag, "No partition table on '%s': found '%s'", devicePath, marker)
			return false, nil
		}
	}

	return true, nil
}
