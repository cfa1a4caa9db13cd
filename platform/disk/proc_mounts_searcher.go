package disk

import (
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
)

const procMountsPath = "/proc/mounts"

type procMountsSearcher struct {
	fs boshsys.FileSystem
}

func NewProcMountsSearcher(fs boshsys.FileSystem) MountsSearcher {
	return procMountsSearcher{fs}
}

func (s procMountsSearcher) SearchMounts() ([]Mount, error) {
	mountInfo, err := s.fs.ReadFileString(procMountsPath)
	if err != nil {
		return []Mount{}, bosherr.WrapErrorf(err, "Reading %s", procMountsPath)
	}

	var mounts []Mount

	for _, mountEntry := range strings.Split(mountInfo, "\n") {
		mountFields := strings.Fields(mountEntry)
		if len(mountFields) < 2 {
			continue
		}

		mounts = append(mounts, Mount{
			PartitionPath: unescapeMountField(mountFields[0]),
			MountPoint:    unescapeMountField(mountFields[1]),
		})
	}

	return mounts, nil
}

// The kernel writes space, tab, newline and backslash as 3-digit octal escapes.
func unescapeMountField(field string) string {
	if !strings.Contains(field, `\`) {
		return field
	}

	var unescaped strings.Builder

	for i := 0; i < len(field); i++ {
		if field[i] == '\\' && i+3 < len(field) {
			if code, err := strconv.ParseUint(field[i+1:i+4], 8, 8); err == nil {
				unescaped.WriteByte(byte(code))
				i += 3
				continue
			}
		}
		unescaped.WriteByte(field[i])
	}

	return unescaped.String()
}
