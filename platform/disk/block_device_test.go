package disk_test

import (
	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	. "github.com/cloudfoundry/lvm-expander/platform/disk"
)

var _ = Describe("BlockDevice", func() {
	Describe("ParseBlockDevices", func() {
		It("parses lsblk pairs and marks missing filesystem types", func() {
			output := `NAME="sda" SIZE="20G" FSTYPE="" MOUNTPOINT="" TYPE="disk" KNAME="sda"
NAME="sda1" SIZE="500M" FSTYPE="ext4" MOUNTPOINT="/boot" TYPE="part" KNAME="sda1"
NAME="vg-lv_swap" SIZE="4.5G" FSTYPE="swap" MOUNTPOINT="[SWAP]" TYPE="lvm" KNAME="dm-1"

NAME="sdb" SIZE="10G" FSTYPE="LVM2_member" MOUNTPOINT="" TYPE="disk" KNAME="sdb"`

			Expect(ParseBlockDevices(output)).To(Equal([]BlockDevice{
				{Name: "sda", Size: "20G", FilesystemType: "[UNPARTITIONED]", MountPoint: "", DeviceType: "disk", KernelName: "sda"},
				{Name: "sda1", Size: "500M", FilesystemType: "ext4", MountPoint: "/boot", DeviceType: "part", KernelName: "sda1"},
				{Name: "vg-lv_swap", Size: "4.5G", FilesystemType: "swap", MountPoint: "[SWAP]", DeviceType: "lvm", KernelName: "dm-1"},
				{Name: "sdb", Size: "10G", FilesystemType: "LVM2_member", MountPoint: "", DeviceType: "disk", KernelName: "sdb"},
			}))
		})

		It("skips rows without a kernel name", func() {
			Expect(ParseBlockDevices(`NAME="sda" SIZE="20G" TYPE="disk"`)).To(BeEmpty())
			Expect(ParseBlockDevices("garbage\n")).To(BeEmpty())
		})
	})

	DescribeTable("IsCandidate",
		func(deviceType, mountPoint string, expected bool) {
			device := BlockDevice{DeviceType: deviceType, MountPoint: mountPoint, KernelName: "sdx"}
			Expect(device.IsCandidate()).To(Equal(expected))
		},
		Entry("unmounted disk", "disk", "", true),
		Entry("mounted disk", "disk", "/data", false),
		Entry("unmounted partition", "part", "", false),
		Entry("logical volume", "lvm", "", false),
		Entry("rom", "rom", "", false),
		Entry("uppercase type", "DISK", "", false),
	)

	It("builds the device path from the kernel name", func() {
		Expect(BlockDevice{Name: "sdb", KernelName: "sdb"}.Path()).To(Equal("/dev/sdb"))
	})

	It("renders a table row", func() {
		device := BlockDevice{Name: "sdb", Size: "10G", FilesystemType: "[UNPARTITIONED]", DeviceType: "disk", KernelName: "sdb"}
		Expect(device.String()).To(Equal("sdb        10G        [UNPARTITIONED]            disk       sdb"))
		Expect(BlockDeviceTableHeader()).To(Equal("NAME       SIZE       FSTYPE          MOUNTPOINT TYPE       KNAME"))
	})
})
