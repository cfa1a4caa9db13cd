package app

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"code.cloudfoundry.org/clock"

	bosherr "github.com/cloudfoundry/bosh-utils/errors"
	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	boshuuid "github.com/cloudfoundry/bosh-utils/uuid"

	"github.com/cloudfoundry/lvm-expander/expansion"
	boshdisk "github.com/cloudfoundry/lvm-expander/platform/disk"
	"github.com/cloudfoundry/lvm-expander/platform/lvm"
	"github.com/cloudfoundry/lvm-expander/platform/vitals"
	"github.com/cloudfoundry/lvm-expander/runner"
	"github.com/cloudfoundry/lvm-expander/safety"
	"github.com/cloudfoundry/lvm-expander/ui"
)

const logFileTimeFormat = "20060102_150405"

type App interface {
	Setup(opts Options) error
	Run() error
	Close() error
	LogPath() string
}

type app struct {
	fs            boshsys.FileSystem
	cmdRunner     boshsys.CmdRunner
	timeService   clock.Clock
	uuidGenerator boshuuid.Generator
	euid          func() int
	stdin         io.Reader
	stdout        io.Writer

	config   Config
	logPath  string
	logFile  boshsys.File
	logger   boshlog.Logger
	output   ui.Output
	prompter ui.Prompter
	logTag   string
}

func New(
	fs boshsys.FileSystem,
	cmdRunner boshsys.CmdRunner,
	timeService clock.Clock,
	uuidGenerator boshuuid.Generator,
	euid func() int,
	stdin io.Reader,
	stdout io.Writer,
) App {
	return &app{
		fs:            fs,
		cmdRunner:     cmdRunner,
		timeService:   timeService,
		uuidGenerator: uuidGenerator,
		euid:          euid,
		stdin:         stdin,
		stdout:        stdout,
		logTag:        "App",
	}
}

func (app *app) Setup(opts Options) error {
	config, err := LoadConfigFromPath(app.fs, opts.ConfigPath)
	if err != nil {
		return bosherr.WrapErrorf(err, "Loading config '%s'", opts.ConfigPath)
	}
	app.config = config.WithOptions(opts)

	level, err := boshlog.Levelify(app.config.LogLevel)
	if err != nil {
		return bosherr.WrapError(err, "Parsing log level")
	}

	if app.euid() != 0 {
		return bosherr.Error("This tool must be run as root. Please use sudo.")
	}

	err = app.fs.MkdirAll(app.config.LogDir, os.FileMode(0750))
	if err != nil {
		return bosherr.WrapErrorf(err, "Creating log directory '%s'", app.config.LogDir)
	}

	app.logPath = filepath.Join(
		app.config.LogDir,
		fmt.Sprintf("lvm_expansion_%s.log", app.timeService.Now().Format(logFileTimeFormat)),
	)

	app.logFile, err = app.fs.OpenFile(app.logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, os.FileMode(0640))
	if err != nil {
		return bosherr.WrapErrorf(err, "Opening log file '%s'", app.logPath)
	}

	console := io.MultiWriter(app.stdout, app.logFile)

	app.logger = boshlog.NewWriterLogger(level, app.logFile)
	app.output = ui.NewWriterOutput(console)
	app.prompter = ui.NewLinePrompter(app.stdin, console, app.logger)

	sessionID, err := app.uuidGenerator.Generate()
	if err != nil {
		return bosherr.WrapError(err, "Generating session id")
	}

	app.logger.Info(app.logTag, "Session '%s' started, logging to '%s'", sessionID, app.logPath)
	app.output.Sayf("Logging to %s", app.logPath)

	return nil
}

func (app *app) Run() error {
	if app.logger == nil {
		return bosherr.Error("App is not set up")
	}

	defer app.logger.HandlePanic("App Run")

	app.output.Say("Starting LVM expansion.")

	commandRunner := runner.NewRunner(app.cmdRunner, app.prompter, app.output, app.logger)

	err := commandRunner.CheckPrerequisites(app.config.RequiredCommands...)
	if err != nil {
		app.logger.Error(app.logTag, "Checking prerequisites: %s", err)
		return app.recordFailure(err)
	}

	workflow := expansion.NewWorkflow(
		boshdisk.NewLinuxDiskManager(app.logger, commandRunner, app.fs),
		lvm.NewLinuxManager(commandRunner, app.logger),
		vitals.NewService(vitals.NewSigarUsageCollector(), commandRunner),
		safety.NewPromptGate(app.prompter, app.output, app.logger),
		app.prompter,
		app.output,
		app.fs,
		app.config.DeviceDir,
		app.logger,
	)

	result, err := workflow.Run()
	if err != nil {
		app.logger.Error(app.logTag, "Expansion stopped after stage %s: %s", result.Stage, err)
		return app.recordFailure(err)
	}

	if result.ManualResizeRequired {
		app.logger.Warn(app.logTag, "Expansion of '%s' finished without a filesystem resize", result.LogicalVolumePath)
		return nil
	}

	app.logger.Info(app.logTag, "Expansion of '%s' finished", result.LogicalVolumePath)

	return nil
}

// recordFailure puts the cause into the session log whatever the log level.
// The console copy is printed by the caller.
func (app *app) recordFailure(err error) error {
	_, writeErr := fmt.Fprintf(app.logFile, "Error: %s\n", err)
	if writeErr != nil {
		app.logger.Error(app.logTag, "Writing failure to '%s': %s", app.logPath, writeErr)
	}

	return err
}

func (app *app) Close() error {
	if app.logFile == nil {
		return nil
	}

	return app.logFile.Close()
}

func (app *app) LogPath() string {
	return app.logPath
}

// ExitCode maps the outcome of Setup or Run to the process exit status.
func ExitCode(err error) int {
	if err != nil {
		return 1
	}
	return 0
}
