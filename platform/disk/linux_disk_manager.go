package disk

import (
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	"github.com/cloudfoundry/lvm-expander/runner"
)

type linuxDiskManager struct {
	deviceLister      DeviceLister
	labelProber       LabelProber
	mountsSearcher    MountsSearcher
	mountPointFinder  MountPointFinder
	filesystemResizer FilesystemResizer
}

func NewLinuxDiskManager(
	logger boshlog.Logger,
	runner runner.Runner,
	fs boshsys.FileSystem,
) Manager {
	return linuxDiskManager{
		deviceLister: NewLsblkDeviceLister(runner, logger),
		labelProber:  NewPartedLabelProber(runner, logger),
		// /proc/mounts is the most reliable source of mount information
		mountsSearcher:    NewProcMountsSearcher(fs),
		mountPointFinder:  NewCmdMountPointFinder(runner, logger),
		filesystemResizer: NewFilesystemResizer(runner, logger),
	}
}

func (m linuxDiskManager) GetDeviceLister() DeviceLister           { return m.deviceLister }
func (m linuxDiskManager) GetLabelProber() LabelProber             { return m.labelProber }
func (m linuxDiskManager) GetMountsSearcher() MountsSearcher       { return m.mountsSearcher }
func (m linuxDiskManager) GetMountPointFinder() MountPointFinder   { return m.mountPointFinder }
func (m linuxDiskManager) GetFilesystemResizer() FilesystemResizer { return m.filesystemResizer }
