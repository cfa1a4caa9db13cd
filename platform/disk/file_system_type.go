package disk

type FileSystemType string

const (
	FileSystemExt2 FileSystemType = "ext2"
	FileSystemExt3 FileSystemType = "ext3"
	FileSystemExt4 FileSystemType = "ext4"
	FileSystemXFS  FileSystemType = "xfs"
)
