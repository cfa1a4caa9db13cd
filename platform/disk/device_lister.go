package disk

import (
	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/cloudfoundry/lvm-expander/runner"
)

type DeviceLister interface {
	// ListCandidateDevices queries lsblk on every call and returns the
	// whole disks that have no mount point.
	ListCandidateDevices() ([]BlockDevice, error)
}

type lsblkDeviceLister struct {
	runner runner.Runner
	logger boshlog.Logger
	logTag string
}

func NewLsblkDeviceLister(runner runner.Runner, logger boshlog.Logger) DeviceLister {
	return lsblkDeviceLister{
		runner: runner,
		logger: logger,
		logTag: "lsblkDeviceLister",
	}
}

func (l lsblkDeviceLister) ListCandidateDevices() ([]BlockDevice, error) {
	result, err := l.runner.Run(runner.Command{
		Name:         "lsblk",
		Args:         []string{"-P", "-o", "NAME,SIZE,FSTYPE,MOUNTPOINT,TYPE,KNAME"},
		ErrorMessage: "Failed to list block devices.",
		AllowFailure: true,
	})
	if err != nil {
		return nil, bosherr.WrapError(err, "Listing block devices")
	}

	if !result.Succeeded() {
		l.logger.Warn(l.logTag, "lsblk exited with %d: %s", result.ExitStatus, result.Stderr)
	}

	var candidates []BlockDevice
	for _, device := range ParseBlockDevices(result.Stdout) {
		if device.IsCandidate() {
			candidates = append(candidates, device)
		}
	}

	l.logger.Debug(l.logTag, "Found %d candidate device(s)", len(candidates))

	return candidates, nil
}
