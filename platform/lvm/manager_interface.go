package lvm

type Manager interface {
	// HasPhysicalVolumeSignature is advisory; it never blocks pvcreate on its own.
	HasPhysicalVolumeSignature(devicePath string) (bool, error)
	CreatePhysicalVolume(devicePath string) error

	VolumeGroupExists(vgName string) (Existence, error)
	ExtendVolumeGroup(vgName, devicePath string) error
	VolumeGroupFreeMiB(vgName string) (uint64, error)

	LogicalVolumeExists(lvPath string) (Existence, error)
	ExtendLogicalVolume(lvPath string, size GrowthSize) error

	ListPhysicalVolumes() (string, error)
	ListVolumeGroups() (string, error)
	ListLogicalVolumes(target string) (string, error)
}

func LogicalVolumePath(vgName, lvName string) string {
	return "/dev/" + vgName + "/" + lvName
}
