package disk_test

import (
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	fakesys "github.com/cloudfoundry/bosh-utils/system/fakes"

	. "github.com/cloudfoundry/lvm-expander/platform/disk"
)

const lsblkCmd = "lsblk -P -o NAME,SIZE,FSTYPE,MOUNTPOINT,TYPE,KNAME"

var _ = Describe("lsblkDeviceLister", func() {
	var (
		fakeCmdRunner *fakesys.FakeCmdRunner
		lister        DeviceLister
	)

	BeforeEach(func() {
		logger := boshlog.NewLogger(boshlog.LevelNone)
		fakeCmdRunner = fakesys.NewFakeCmdRunner()
		lister = NewLsblkDeviceLister(newTestRunner(fakeCmdRunner, logger), logger)
	})

	It("returns only unmounted whole disks", func() {
		fakeCmdRunner.AddCmdResult(lsblkCmd, fakesys.FakeCmdResult{Stdout: `NAME="sda" SIZE="20G" FSTYPE="" MOUNTPOINT="" TYPE="disk" KNAME="sda"
NAME="sda1" SIZE="500M" FSTYPE="ext4" MOUNTPOINT="/boot" TYPE="part" KNAME="sda1"
NAME="sda2" SIZE="19.5G" FSTYPE="LVM2_member" MOUNTPOINT="" TYPE="part" KNAME="sda2"
NAME="vg-lv_root" SIZE="15G" FSTYPE="ext4" MOUNTPOINT="/" TYPE="lvm" KNAME="dm-0"
NAME="sdb" SIZE="10G" FSTYPE="" MOUNTPOINT="" TYPE="disk" KNAME="sdb"
NAME="sdc" SIZE="5G" FSTYPE="xfs" MOUNTPOINT="/mnt" TYPE="disk" KNAME="sdc"
`})

		devices, err := lister.ListCandidateDevices()
		Expect(err).ToNot(HaveOccurred())
		Expect(devices).To(Equal([]BlockDevice{
			{Name: "sda", Size: "20G", FilesystemType: UnpartitionedMarker, DeviceType: "disk", KernelName: "sda"},
			{Name: "sdb", Size: "10G", FilesystemType: UnpartitionedMarker, DeviceType: "disk", KernelName: "sdb"},
		}))
	})

	It("queries lsblk on every call", func() {
		fakeCmdRunner.AddCmdResult(lsblkCmd, fakesys.FakeCmdResult{Stdout: `NAME="sdb" SIZE="10G" FSTYPE="" MOUNTPOINT="" TYPE="disk" KNAME="sdb"`})
		fakeCmdRunner.AddCmdResult(lsblkCmd, fakesys.FakeCmdResult{Stdout: ""})

		devices, err := lister.ListCandidateDevices()
		Expect(err).ToNot(HaveOccurred())
		Expect(devices).To(HaveLen(1))

		devices, err = lister.ListCandidateDevices()
		Expect(err).ToNot(HaveOccurred())
		Expect(devices).To(BeEmpty())

		Expect(fakeCmdRunner.RunCommands).To(HaveLen(2))
	})

	It("tolerates lsblk exiting non-zero", func() {
		fakeCmdRunner.AddCmdResult(lsblkCmd, fakesys.FakeCmdResult{
			Stdout:     `NAME="sdb" SIZE="10G" FSTYPE="" MOUNTPOINT="" TYPE="disk" KNAME="sdb"`,
			ExitStatus: 32,
			Error:      errors.New("fake-lsblk-error"),
		})

		devices, err := lister.ListCandidateDevices()
		Expect(err).ToNot(HaveOccurred())
		Expect(devices).To(HaveLen(1))
	})

	It("fails when lsblk is not installed", func() {
		fakeCmdRunner.AddCmdResult(lsblkCmd, fakesys.FakeCmdResult{ExitStatus: -1, Error: errors.New("fake-not-found")})

		_, err := lister.ListCandidateDevices()
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("Listing block devices"))
	})
})
