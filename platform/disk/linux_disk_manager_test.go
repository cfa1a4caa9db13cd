package disk_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	"github.com/cloudfoundry/lvm-expander/platform/disk"
)

var _ = Describe("NewLinuxDiskManager", func() {
	var (
		fs     *fakesys.FakeFileSystem
		logger boshlog.Logger
	)

	BeforeEach(func() {
		fs = fakesys.NewFakeFileSystem()
		logger = boshlog.NewLogger(boshlog.LevelNone)
	})

	It("uses /proc/mounts to search mounts", func() {
		r := newTestRunner(fakesys.NewFakeCmdRunner(), logger)
		diskManager := disk.NewLinuxDiskManager(logger, r, fs)

		Expect(diskManager.GetMountsSearcher()).To(Equal(disk.NewProcMountsSearcher(fs)))
	})

	It("wires command based collaborators to the same runner", func() {
		r := newTestRunner(fakesys.NewFakeCmdRunner(), logger)
		diskManager := disk.NewLinuxDiskManager(logger, r, fs)

		Expect(diskManager.GetDeviceLister()).To(Equal(disk.NewLsblkDeviceLister(r, logger)))
		Expect(diskManager.GetLabelProber()).To(Equal(disk.NewPartedLabelProber(r, logger)))
		Expect(diskManager.GetMountPointFinder()).To(Equal(disk.NewCmdMountPointFinder(r, logger)))
		Expect(diskManager.GetFilesystemResizer()).To(Equal(disk.NewFilesystemResizer(r, logger)))
	})
})
