package disk

// FileSystemExtender grows a mounted filesystem to fill its grown block device.
type FileSystemExtender interface {
	Extend(devicePath, mountPoint string) error
}
