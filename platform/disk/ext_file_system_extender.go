package disk

import (
	"github.com/cloudfoundry/lvm-expander/runner"
)

// resize2fs grows ext2/3/4 through the block device.
type extFileSystemExtender struct {
	runner runner.Runner
}

func NewExtFileSystemExtender(
	runner runner.Runner,
) FileSystemExtender {
	return extFileSystemExtender{
		runner: runner,
	}
}

func (e extFileSystemExtender) Extend(devicePath, mountPoint string) error {
	_, err := e.runner.Run(runner.Command{
		Name:         "resize2fs",
		Args:         []string{devicePath},
		ErrorMessage: "resize2fs failed. Please check the filesystem for errors.",
	})

	return err
}
