package disk

import (
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/cloudfoundry/lvm-expander/runner"
)

type MountPointFinder interface {
	// FindMountPoint returns "" when the device is not mounted.
	FindMountPoint(devicePath string) (string, error)
	FilesystemType(mountPoint string) (FileSystemType, error)
}

type cmdMountPointFinder struct {
	runner runner.Runner
	logger boshlog.Logger
	logTag string
}

func NewCmdMountPointFinder(runner runner.Runner, logger boshlog.Logger) MountPointFinder {
	return cmdMountPointFinder{
		runner: runner,
		logger: logger,
		logTag: "cmdMountPointFinder",
	}
}

func (f cmdMountPointFinder) FindMountPoint(devicePath string) (string, error) {
	result, err := f.runner.Run(runner.Command{
		Name:         "findmnt",
		Args:         []string{"-no", "TARGET", devicePath},
		AllowFailure: true,
	})
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Finding mount point of '%s'", devicePath)
	}

	if !result.Succeeded() || result.Stdout == "" {
		f.logger.Debug(f.logTag, "'%s' is not mounted", devicePath)
		return "", nil
	}

	// a device mounted in several places is listed once per target
	return strings.TrimSpace(strings.SplitN(result.Stdout, "\n", 2)[0]), nil
}

func (f cmdMountPointFinder) FilesystemType(mountPoint string) (FileSystemType, error) {
	result, err := f.runner.Run(runner.Command{
		Name:         "df",
		Args:         []string{"-PT", mountPoint},
		ErrorMessage: "Failed to get filesystem type.",
	})
	if err != nil {
		return "", err
	}

	// e.g.
	// Filesystem          Type 1024-blocks  Used Available Capacity Mounted on
	// /dev/mapper/vg0-lv0 ext4    10255636 36888   9678076       1% /data
	lines := strings.Split(result.Stdout, "\n")
	if len(lines) < 2 {
		return "", bosherr.Errorf("Parsing filesystem type of '%s' from df output '%s'", mountPoint, result.Stdout)
	}

	fields := strings.Fields(lines[1])
	if len(fields) < 2 {
		return "", bosherr.Errorf("Parsing filesystem type of '%s' from df output '%s'", mountPoint, result.Stdout)
	}

	return FileSystemType(fields[1]), nil
}
