package disk

import "strings"

type Mount struct {
	PartitionPath string
	MountPoint    string
}

// Backs reports whether the mount is the device itself or one of its
// partitions (/dev/sdb1, /dev/nvme0n1p1).
func (m Mount) Backs(devicePath string) bool {
	if m.PartitionPath == devicePath {
		return true
	}

	if !strings.HasPrefix(m.PartitionPath, devicePath) {
		return false
	}

	suffix := strings.TrimPrefix(strings.TrimPrefix(m.PartitionPath, devicePath), "p")
	if suffix == "" {
		return false
	}

	for _, r := range suffix {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

type MountsSearcher interface {
	SearchMounts() ([]Mount, error)
}

// FindMountBacking returns the first mount served by the device or its partitions.
func FindMountBacking(mounts []Mount, devicePath string) (Mount, bool) {
	for _, mount := range mounts {
		if mount.Backs(devicePath) {
			return mount, true
		}
	}

	return Mount{}, false
}
