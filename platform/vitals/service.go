package vitals

import (
	"fmt"

	sigar "github.com/cloudfoundry/gosigar"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"

	boshdisk "github.com/cloudfoundry/lvm-expander/platform/disk"
	"github.com/cloudfoundry/lvm-expander/runner"
)

type UsageCollector interface {
	GetFileSystemUsage(path string) (sigar.FileSystemUsage, error)
}

type sigarUsageCollector struct{}

func NewSigarUsageCollector() UsageCollector {
	return sigarUsageCollector{}
}

func (c sigarUsageCollector) GetFileSystemUsage(path string) (sigar.FileSystemUsage, error) {
	usage := sigar.FileSystemUsage{}
	err := usage.Get(path)
	return usage, err
}

type DiskVitals struct {
	TotalBytes uint64
	UsedBytes  uint64
	AvailBytes uint64
	Percent    string
	// Summary is the `df -hT` view of the mount point.
	Summary string
}

func (v DiskVitals) String() string {
	return fmt.Sprintf("Total: %s, Used: %s (%s%%), Available: %s",
		sigar.FormatSize(v.TotalBytes), sigar.FormatSize(v.UsedBytes), v.Percent, sigar.FormatSize(v.AvailBytes))
}

type Service interface {
	Get(mountPoint string) (vitals DiskVitals, err error)
}

type concreteService struct {
	collector UsageCollector
	runner    runner.Runner
}

func NewService(collector UsageCollector, runner runner.Runner) Service {
	return concreteService{
		collector: collector,
		runner:    runner,
	}
}

func (s concreteService) Get(mountPoint string) (DiskVitals, error) {
	result, err := s.runner.Run(runner.Command{
		Name:         "df",
		Args:         []string{"-hT", mountPoint},
		ErrorMessage: "Failed to summarize disk usage.",
	})
	if err != nil {
		return DiskVitals{}, bosherr.WrapErrorf(err, "Getting disk usage of '%s'", mountPoint)
	}

	usage, err := s.collector.GetFileSystemUsage(mountPoint)
	if err != nil {
		return DiskVitals{}, bosherr.WrapErrorf(err, "Getting filesystem usage of '%s'", mountPoint)
	}

	return DiskVitals{
		TotalBytes: boshdisk.ConvertFromKbToBytes(usage.Total),
		UsedBytes:  boshdisk.ConvertFromKbToBytes(usage.Used),
		AvailBytes: boshdisk.ConvertFromKbToBytes(usage.Avail),
		Percent:    fmt.Sprintf("%.0f", usage.UsePercent()),
		Summary:    result.Stdout,
	}, nil
}
