package disk

import (
	"github.com/cloudfoundry/lvm-expander/runner"
)

// xfs_growfs only works on a mounted filesystem and takes the mount point.
type xfsFileSystemExtender struct {
	runner runner.Runner
}

func NewXfsFileSystemExtender(
	runner runner.Runner,
) FileSystemExtender {
	return xfsFileSystemExtender{
		runner: runner,
	}
}

func (e xfsFileSystemExtender) Extend(devicePath, mountPoint string) error {
	_, err := e.runner.Run(runner.Command{
		Name:         "xfs_growfs",
		Args:         []string{mountPoint},
		ErrorMessage: "xfs_growfs failed. Please check the filesystem for errors.",
	})

	return err
}
