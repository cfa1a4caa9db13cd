package expansion

type Stage int

const (
	NotStarted Stage = iota
	DeviceSelected
	PhysicalVolumeCreated
	GroupExtended
	VolumeExtended
	FilesystemResized
)

func (s Stage) String() string {
	switch s {
	case NotStarted:
		return "NotStarted"
	case DeviceSelected:
		return "DeviceSelected"
	case PhysicalVolumeCreated:
		return "PhysicalVolumeCreated"
	case GroupExtended:
		return "GroupExtended"
	case VolumeExtended:
		return "VolumeExtended"
	case FilesystemResized:
		return "FilesystemResized"
	default:
		return "Unknown"
	}
}
