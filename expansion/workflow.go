package expansion

import (
	"fmt"
	"strings"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"

	boshdisk "github.com/cloudfoundry/lvm-expander/platform/disk"
	"github.com/cloudfoundry/lvm-expander/platform/lvm"
	"github.com/cloudfoundry/lvm-expander/platform/vitals"
	"github.com/cloudfoundry/lvm-expander/safety"
	"github.com/cloudfoundry/lvm-expander/ui"
)

type Result struct {
	Stage                Stage
	DevicePath           string
	VolumeGroup          string
	LogicalVolumePath    string
	MountPoint           string
	FilesystemType       boshdisk.FileSystemType
	ManualResizeRequired bool
}

// Workflow walks once through the five expansion stages. It never retries
// and never rolls back; a failure leaves the system at the last completed
// stage, which is reported in Result.Stage.
type Workflow struct {
	diskManager   boshdisk.Manager
	lvmManager    lvm.Manager
	vitalsService vitals.Service
	gate          safety.Gate
	prompter      ui.Prompter
	output        ui.Output
	fs            boshsys.FileSystem
	deviceDir     string
	logger        boshlog.Logger
	logTag        string

	result Result
}

func NewWorkflow(
	diskManager boshdisk.Manager,
	lvmManager lvm.Manager,
	vitalsService vitals.Service,
	gate safety.Gate,
	prompter ui.Prompter,
	output ui.Output,
	fs boshsys.FileSystem,
	deviceDir string,
	logger boshlog.Logger,
) *Workflow {
	return &Workflow{
		diskManager:   diskManager,
		lvmManager:    lvmManager,
		vitalsService: vitalsService,
		gate:          gate,
		prompter:      prompter,
		output:        output,
		fs:            fs,
		deviceDir:     strings.TrimSuffix(deviceDir, "/"),
		logger:        logger,
		logTag:        "expansionWorkflow",
	}
}

func (w *Workflow) Stage() Stage {
	return w.result.Stage
}

func (w *Workflow) Run() (Result, error) {
	if w.result.Stage != NotStarted {
		return w.result, bosherr.Errorf("Expansion already ran up to stage %s", w.result.Stage)
	}

	devicePath, err := w.selectDevice()
	if err != nil {
		return w.result, err
	}
	w.result.DevicePath = devicePath
	w.advance(DeviceSelected)

	err = w.createPhysicalVolume(devicePath)
	if err != nil {
		return w.result, err
	}
	w.advance(PhysicalVolumeCreated)

	vgName, err := w.extendVolumeGroup(devicePath)
	if err != nil {
		return w.result, err
	}
	w.result.VolumeGroup = vgName
	w.advance(GroupExtended)

	lvPath, err := w.extendLogicalVolume(vgName)
	if err != nil {
		return w.result, err
	}
	w.result.LogicalVolumePath = lvPath
	w.advance(VolumeExtended)

	resized, err := w.resizeFilesystem(lvPath)
	if err != nil || !resized {
		return w.result, err
	}
	w.advance(FilesystemResized)

	w.reportUsage(lvPath)

	return w.result, nil
}

func (w *Workflow) advance(to Stage) {
	if to != w.result.Stage+1 {
		panic(fmt.Sprintf("Invalid stage transition from %s to %s", w.result.Stage, to))
	}

	w.logger.Info(w.logTag, "Reached stage %s", to)
	w.result.Stage = to
}

func (w *Workflow) ask(question string) (string, error) {
	answer, err := w.prompter.Ask(question)
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(answer), nil
}

func (w *Workflow) selectDevice() (string, error) {
	w.output.Section("Step 1: Identify the new hard drive")
	w.output.Say("Listing potential new hard drives. Look for entries where TYPE is 'disk' and MOUNTPOINT is empty.")
	w.output.Sayf("If FSTYPE is also empty, it will be marked as '%s'.", boshdisk.UnpartitionedMarker)
	w.output.Rule()

	devices, err := w.diskManager.GetDeviceLister().ListCandidateDevices()
	if err != nil {
		return "", err
	}

	if len(devices) == 0 {
		w.output.Say("No potential unmounted disk drives found.")
	} else {
		w.output.Say(boshdisk.BlockDeviceTableHeader())
	}
	for _, device := range devices {
		w.output.Say(device.String())
	}
	w.output.Rule()

	kernelName, err := w.ask("Enter the KNAME of the new hard drive (e.g., sdb, sdc): ")
	if err != nil {
		return "", err
	}

	if kernelName == "" {
		return "", validationErrorf("No new drive name entered.")
	}

	if strings.Contains(kernelName, "/") {
		return "", validationErrorf("'%s' is not a kernel device name.", kernelName)
	}

	devicePath := w.deviceDir + "/" + kernelName

	if !w.fs.FileExists(devicePath) {
		return "", validationErrorf("Device '%s' does not exist. Please check the KNAME.", devicePath)
	}

	mounts, err := w.diskManager.GetMountsSearcher().SearchMounts()
	if err != nil {
		return "", bosherr.WrapErrorf(err, "Checking whether '%s' is mounted", devicePath)
	}

	if mount, found := boshdisk.FindMountBacking(mounts, devicePath); found {
		return "", validationErrorf("Device '%s' is in use: '%s' is mounted at '%s'.", devicePath, mount.PartitionPath, mount.MountPoint)
	}

	err = w.gate.ConfirmDanger(fmt.Sprintf(
		"You have selected '%s'.\nDOUBLE-CHECK THIS IS THE CORRECT, EMPTY DRIVE YOU INTEND TO USE.\nALL DATA ON THIS DRIVE WILL BE LOST.",
		devicePath,
	))
	if err != nil {
		return "", err
	}

	w.logger.Info(w.logTag, "Selected device '%s'", devicePath)

	return devicePath, nil
}

func (w *Workflow) createPhysicalVolume(devicePath string) error {
	w.output.Sayf("Checking for existing partitions or LVM signatures on %s...", devicePath)

	hasPartitionTable, err := w.diskManager.GetLabelProber().HasPartitionTable(devicePath)
	if err != nil {
		return err
	}

	if hasPartitionTable {
		err = w.gate.ConfirmWarning(
			fmt.Sprintf("'%s' appears to have existing partition table.", devicePath),
			"Aborting. Please ensure the drive is truly empty or back up its data.",
		)
		if err != nil {
			return err
		}
	}

	hasSignature, err := w.lvmManager.HasPhysicalVolumeSignature(devicePath)
	if err != nil {
		return err
	}

	if hasSignature {
		err = w.gate.ConfirmWarning(
			fmt.Sprintf("'%s' already appears to be an LVM Physical Volume or in use.", devicePath),
			"Aborting. Please ensure the drive is truly new or prepare it accordingly.",
		)
		if err != nil {
			return err
		}
	}

	w.output.Section("Step 2: Create a Physical Volume (PV)")
	w.output.Sayf("Initializing '%s' as an LVM Physical Volume.", devicePath)
	w.output.Sayf("This will wipe any existing data and partition tables on '%s'.", devicePath)

	err = w.lvmManager.CreatePhysicalVolume(devicePath)
	if err != nil {
		return err
	}

	w.output.Sayf("Physical Volume '%s' created successfully.", devicePath)

	return w.show(w.lvmManager.ListPhysicalVolumes())
}

func (w *Workflow) extendVolumeGroup(devicePath string) (string, error) {
	w.output.Section("Step 3: Extend an existing Volume Group (VG)")
	w.output.Say("Listing existing Volume Groups:")

	if err := w.show(w.lvmManager.ListVolumeGroups()); err != nil {
		return "", err
	}

	vgName, err := w.ask("Enter the name of the Volume Group (VG) to expand (e.g., vg_system): ")
	if err != nil {
		return "", err
	}

	if vgName == "" {
		return "", validationErrorf("No VG name entered.")
	}

	if !isVolumeName(vgName) {
		return "", validationErrorf("'%s' is not a Volume Group name.", vgName)
	}

	existence, err := w.lvmManager.VolumeGroupExists(vgName)
	if err != nil {
		return "", err
	}

	if existence != lvm.Exists {
		return "", validationErrorf("Volume Group '%s' does not exist.", vgName)
	}

	err = w.lvmManager.ExtendVolumeGroup(vgName, devicePath)
	if err != nil {
		return "", err
	}

	w.output.Sayf("Volume Group '%s' extended successfully.", vgName)

	return vgName, w.show(w.lvmManager.ListVolumeGroups())
}

func (w *Workflow) extendLogicalVolume(vgName string) (string, error) {
	w.output.Section("Step 4: Expand a Logical Volume (LV)")
	w.output.Sayf("Listing Logical Volumes in Volume Group '%s':", vgName)

	if err := w.show(w.lvmManager.ListLogicalVolumes(vgName)); err != nil {
		return "", err
	}

	lvName, err := w.ask("Enter the name of the Logical Volume (LV) to expand (e.g., lv_root): ")
	if err != nil {
		return "", err
	}

	if lvName == "" {
		return "", validationErrorf("No LV name entered.")
	}

	if !isVolumeName(lvName) {
		return "", validationErrorf("'%s' is not a Logical Volume name.", lvName)
	}

	lvPath := lvm.LogicalVolumePath(vgName, lvName)

	existence, err := w.lvmManager.LogicalVolumeExists(lvPath)
	if err != nil {
		return "", err
	}

	if existence != lvm.Exists {
		return "", validationErrorf("Logical Volume '%s' does not exist in VG '%s'.", lvPath, vgName)
	}

	w.output.Sayf("Logical Volume '%s' selected for expansion.", lvPath)

	freeMiB, err := w.lvmManager.VolumeGroupFreeMiB(vgName)
	if err != nil {
		return "", err
	}

	w.output.Sayf("Approximately %dMiB free in Volume Group '%s'.", freeMiB, vgName)

	token, err := w.ask(fmt.Sprintf(
		"How much space (e.g., 10G, 500M) do you want to add to '%s'? (Or type '%s' to use all available space): ",
		lvPath, lvm.AllFreeSpaceToken,
	))
	if err != nil {
		return "", err
	}

	size, err := lvm.ParseGrowthSize(token)
	if err != nil {
		return "", ValidationError{Message: err.Error()}
	}

	err = w.gate.ConfirmDanger(fmt.Sprintf(
		"About to add %s to Logical Volume '%s'.\nThis consumes free capacity of Volume Group '%s' and cannot be undone by this tool.",
		size, lvPath, vgName,
	))
	if err != nil {
		return "", err
	}

	if size.All {
		w.output.Sayf("Expanding Logical Volume '%s' to use all available space.", lvPath)
	} else {
		w.output.Sayf("Adding %s to Logical Volume '%s'.", size, lvPath)
	}

	err = w.lvmManager.ExtendLogicalVolume(lvPath, size)
	if err != nil {
		return "", err
	}

	w.output.Sayf("Logical Volume '%s' expanded successfully.", lvPath)

	return lvPath, w.show(w.lvmManager.ListLogicalVolumes(lvPath))
}

// resizeFilesystem reports false without error when nothing is mounted,
// leaving the resize to the operator.
func (w *Workflow) resizeFilesystem(lvPath string) (bool, error) {
	w.output.Section("Step 5: Resize the Filesystem")

	finder := w.diskManager.GetMountPointFinder()

	mountPoint, err := finder.FindMountPoint(lvPath)
	if err != nil {
		return false, err
	}

	if mountPoint == "" {
		w.logger.Warn(w.logTag, "No mount point for '%s', filesystem left for manual resize", lvPath)
		w.output.Sayf("Warning: Could not find mount point for '%s'.", lvPath)
		w.output.Say("You will need to manually resize the filesystem. Use 'df -hT' to find the mount point.")
		w.output.Sayf("Then use 'resize2fs %s' (for extX) or 'xfs_growfs /mount/point' (for XFS).", lvPath)
		w.output.Say("Script completed with a warning. Please resize filesystem manually.")
		w.result.ManualResizeRequired = true
		return false, nil
	}

	w.result.MountPoint = mountPoint
	w.output.Sayf("Logical Volume '%s' is mounted at '%s'.", lvPath, mountPoint)

	fsType, err := finder.FilesystemType(mountPoint)
	if err != nil {
		return false, err
	}
	w.result.FilesystemType = fsType

	w.output.Sayf("Filesystem type is %s. Resizing...", fsType)

	err = w.diskManager.GetFilesystemResizer().Resize(fsType, lvPath, mountPoint)
	if err != nil {
		return false, err
	}

	w.output.Say("Filesystem resized successfully!")

	return true, nil
}

func (w *Workflow) reportUsage(lvPath string) {
	w.output.Section("LVM Expansion Complete!")
	w.output.Sayf("The Logical Volume '%s' and its filesystem have been expanded.", lvPath)
	w.output.Say("Current disk usage:")

	usage, err := w.vitalsService.Get(w.result.MountPoint)
	if err != nil {
		w.logger.Warn(w.logTag, "Getting disk usage: %s", err)
		w.output.Sayf("Warning: Could not summarize disk usage: %s", err)
	} else {
		w.output.Say(usage.Summary)
		w.output.Say(usage.String())
	}

	w.output.Say("Please verify everything is as expected.")
}

// isVolumeName rejects names that would be read as a path or a command option.
func isVolumeName(name string) bool {
	return !strings.Contains(name, "/") && !strings.HasPrefix(name, "-")
}

func (w *Workflow) show(listing string, err error) error {
	if err != nil {
		return err
	}

	if listing != "" {
		w.output.Say(listing)
	}

	return nil
}
