package disk

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	DeviceTypeDisk = "disk"

	// UnpartitionedMarker is shown in place of an empty FSTYPE.
	UnpartitionedMarker = "[UNPARTITIONED]"

	blockDeviceRowFormat = "%-10s %-10s %-15s %-10s %-10s %s"
)

var lsblkPairRegexp = regexp.MustCompile(`([A-Z:-]+)="([^"]*)"`)

type BlockDevice struct {
	Name           string
	Size           string
	FilesystemType string
	MountPoint     string
	DeviceType     string
	KernelName     string
}

func (d BlockDevice) Path() string {
	return "/dev/" + d.KernelName
}

func (d BlockDevice) IsCandidate() bool {
	return d.DeviceType == DeviceTypeDisk && d.MountPoint == ""
}

func (d BlockDevice) String() string {
	return fmt.Sprintf(blockDeviceRowFormat,
		d.Name, d.Size, d.FilesystemType, d.MountPoint, d.DeviceType, d.KernelName)
}

// BlockDeviceTableHeader lines up with BlockDevice.String.
func BlockDeviceTableHeader() string {
	return fmt.Sprintf(blockDeviceRowFormat, "NAME", "SIZE", "FSTYPE", "MOUNTPOINT", "TYPE", "KNAME")
}

// ParseBlockDevices reads `lsblk -P` output, one KEY="value" row per line.
func ParseBlockDevices(output string) []BlockDevice {
	var devices []BlockDevice

	for _, line := range strings.Split(output, "\n") {
		matches := lsblkPairRegexp.FindAllStringSubmatch(line, -1)
		if len(matches) == 0 {
			continue
		}

		fields := map[string]string{}
		for _, match := range matches {
			fields[match[1]] = match[2]
		}

		kernelName, found := fields["KNAME"]
		if !found {
			continue
		}

		device := BlockDevice{
			Name:           fields["NAME"],
			Size:           fields["SIZE"],
			FilesystemType: fields["FSTYPE"],
			MountPoint:     fields["MOUNTPOINT"],
			DeviceType:     fields["TYPE"],
			KernelName:     kernelName,
		}
		if device.FilesystemType == "" {
			device.FilesystemType = UnpartitionedMarker
		}

		devices = append(devices, device)
	}

	return devices
}
