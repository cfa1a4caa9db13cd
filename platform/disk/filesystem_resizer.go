package disk

import (
	"fmt"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/cloudfoundry/lvm-expander/runner"
)

type FilesystemResizer interface {
	Resize(fsType FileSystemType, devicePath, mountPoint string) error
}

type UnsupportedFilesystemError struct {
	Type       FileSystemType
	MountPoint string
}

func (e UnsupportedFilesystemError) Error() string {
	return fmt.Sprintf(
		"Unsupported filesystem type '%s' on '%s'. "+
			"You will need to manually resize the filesystem. Please consult documentation for '%s'.",
		e.Type, e.MountPoint, e.Type,
	)
}

type tableFilesystemResizer struct {
	extenders map[FileSystemType]FileSystemExtender
	logger    boshlog.Logger
	logTag    string
}

func NewFilesystemResizer(runner runner.Runner, logger boshlog.Logger) FilesystemResizer {
	ext := NewExtFileSystemExtender(runner)

	return tableFilesystemResizer{
		extenders: map[FileSystemType]FileSystemExtender{
			FileSystemExt2: ext,
			FileSystemExt3: ext,
			FileSystemExt4: ext,
			FileSystemXFS:  NewXfsFileSystemExtender(runner),
		},
		logger: logger,
		logTag: "filesystemResizer",
	}
}

func (r tableFilesystemResizer) Resize(fsType FileSystemType, devicePath, mountPoint string) error {
	extender, found := r.extenders[fsType]
	if !found {
		r.logger.Error(r.logTag, "No resize tool for '%s' on '%s'", fsType, mountPoint)
		return UnsupportedFilesystemError{Type: fsType, MountPoint: mountPoint}
	}

	r.logger.Info(r.logTag, "Growing %s filesystem of '%s' mounted at '%s'", fsType, devicePath, mountPoint)

	err := extender.Extend(devicePath, mountPoint)
	if err != nil {
		return bosherr.WrapErrorf(err, "Growing %s filesystem", fsType)
	}

	return nil
}
