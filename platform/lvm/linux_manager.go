package lvm

import (
	"math"
	"strconv"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"

	"github.com/cloudfoundry/lvm-expander/runner"
)

type linuxManager struct {
	runner runner.Runner
	logger boshlog.Logger
	logTag string
}

func NewLinuxManager(runner runner.Runner, logger boshlog.Logger) Manager {
	return linuxManager{
		runner: runner,
		logger: logger,
		logTag: "lvmManager",
	}
}

func (m linuxManager) HasPhysicalVolumeSignature(devicePath string) (bool, error) {
	result, err := m.runner.Run(runner.Command{
		Name:         "pvs",
		Args:         []string{"--noheadings", devicePath},
		AllowFailure: true,
	})
	if err != nil {
		return false, bosherr.WrapErrorf(err, "Probing LVM signature of '%s'", devicePath)
	}

	output := result.Stdout + "\n" + result.Stderr
	if result.Succeeded() || strings.Contains(output, "is in use") {
		m.logger.Debug(m.logTag, "'%s' carries an LVM signature: %s", devicePath, output)
		return true, nil
	}

	return false, nil
}

func (m linuxManager) CreatePhysicalVolume(devicePath string) error {
	_, err := m.runner.Run(runner.Command{
		Name:         "pvcreate",
		Args:         []string{devicePath},
		ErrorMessage: "pvcreate failed.",
	})
	if err != nil {
		return err
	}

	m.logger.Info(m.logTag, "Created physical volume '%s'", devicePath)
	return nil
}

func (m linuxManager) VolumeGroupExists(vgName string) (Existence, error) {
	return m.exists("vgs", vgName)
}

func (m linuxManager) LogicalVolumeExists(lvPath string) (Existence, error) {
	return m.exists("lvs", lvPath)
}

func (m linuxManager) exists(cmdName, target string) (Existence, error) {
	result, err := m.runner.Run(runner.Command{
		Name:         cmdName,
		Args:         []string{target},
		AllowFailure: true,
	})
	if err != nil {
		return Unknown, bosherr.WrapErrorf(err, "Checking existence of '%s'", target)
	}

	if !result.Succeeded() {
		m.logger.Debug(m.logTag, "'%s' does not exist: %s", target, result.Stderr)
		return Absent, nil
	}

	return Exists, nil
}

func (m linuxManager) ExtendVolumeGroup(vgName, devicePath string) error {
	_, err := m.runner.Run(runner.Command{
		Name:           "vgextend",
		Args:           []string{vgName, devicePath},
		ErrorMessage:   "vgextend failed.",
		ConfirmMessage: "Adding '" + devicePath + "' to Volume Group '" + vgName + "'.",
	})
	if err != nil {
		return err
	}

	m.logger.Info(m.logTag, "Extended volume group '%s' with '%s'", vgName, devicePath)
	return nil
}

// VolumeGroupFreeMiB rounds down, so the figure never overstates what lvextend can use.
func (m linuxManager) VolumeGroupFreeMiB(vgName string) (uint64, error) {
	result, err := m.runner.Run(runner.Command{
		Name:         "vgs",
		Args:         []string{"--noheadings", "--nosuffix", "-o", "vg_free", "--units", "m", vgName},
		ErrorMessage: "Failed to query free space of Volume Group '" + vgName + "'.",
	})
	if err != nil {
		return 0, err
	}

	return ParseMiB(result.Stdout)
}

// ParseMiB reads the first number of vgs output such as "  1020.00",
// "1,020.00" or "1020,00m".
func ParseMiB(output string) (uint64, error) {
	fields := strings.Fields(output)
	if len(fields) == 0 {
		return 0, nil
	}

	value := strings.TrimRight(strings.ToLower(fields[0]), "m")
	if strings.Contains(value, ".") {
		value = strings.ReplaceAll(value, ",", "")
	} else {
		value = strings.ReplaceAll(value, ",", ".")
	}

	mib, err := strconv.ParseFloat(value, 64)
	if err != nil || mib < 0 {
		return 0, bosherr.Errorf("Parsing free space '%s'", fields[0])
	}

	return uint64(math.Floor(mib)), nil
}

func (m linuxManager) ExtendLogicalVolume(lvPath string, size GrowthSize) error {
	if err := size.validate(); err != nil {
		return err
	}

	args := append(size.LvextendArgs(), lvPath)

	_, err := m.runner.Run(runner.Command{
		Name:         "lvextend",
		Args:         args,
		ErrorMessage: "lvextend failed.",
	})
	if err != nil {
		return err
	}

	m.logger.Info(m.logTag, "Extended logical volume '%s' by %s", lvPath, size)
	return nil
}

func (m linuxManager) ListPhysicalVolumes() (string, error) {
	return m.list(runner.Command{Name: "pvs", ErrorMessage: "Failed to list Physical Volumes."})
}

func (m linuxManager) ListVolumeGroups() (string, error) {
	return m.list(runner.Command{Name: "vgs", ErrorMessage: "Failed to list Volume Groups."})
}

func (m linuxManager) ListLogicalVolumes(target string) (string, error) {
	return m.list(runner.Command{Name: "lvs", Args: []string{target}, ErrorMessage: "Failed to list Logical Volumes."})
}

func (m linuxManager) list(cmd runner.Command) (string, error) {
	result, err := m.runner.Run(cmd)
	if err != nil {
		return "", err
	}

	return result.Stdout, nil
}
