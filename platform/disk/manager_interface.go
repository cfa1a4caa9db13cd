package disk

type Manager interface {
	GetDeviceLister() DeviceLister
	GetLabelProber() LabelProber
	GetMountsSearcher() MountsSearcher
	GetMountPointFinder() MountPointFinder
	GetFilesystemResizer() FilesystemResizer
}
