package main

import (
	"os"

	"code.cloudfoundry.org/clock"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	boshlog "github.com/cloudfoundry/bosh-utils/logger"
	boshsys "github.com/cloudfoundry/bosh-utils/system"
	boshuuid "github.com/cloudfoundry/bosh-utils/uuid"

	boshapp "github.com/cloudfoundry/lvm-expander/app"
)

func main() {
	os.Exit(boshapp.ExitCode(newRootCommand().Execute()))
}

func newRootCommand() *cobra.Command {
	var opts boshapp.Options

	cmd := &cobra.Command{
		Use:   "lvm-expander",
		Short: "Add a new disk to an LVM volume group and grow a logical volume onto it",
		Long: `lvm-expander walks an operator through adding an unused disk to an existing
Volume Group, extending a Logical Volume and growing its ext2/3/4 or XFS filesystem.
Destructive steps require typed confirmation. Must be run as root.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a JSON config file")
	cmd.Flags().StringVar(&opts.LogDir, "log-dir", "", "directory for the session log (default \""+boshapp.DefaultLogDir+"\")")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "DEBUG, INFO, WARN, ERROR or NONE (default \""+boshapp.DefaultLogLevel+"\")")

	return cmd
}

func run(opts boshapp.Options, cmd *cobra.Command) error {
	// Commands are logged by the runner into the session log.
	quietLogger := boshlog.NewLogger(boshlog.LevelNone)

	app := boshapp.New(
		boshsys.NewOsFileSystem(quietLogger),
		boshsys.NewExecCmdRunner(quietLogger),
		clock.NewClock(),
		boshuuid.NewGenerator(),
		unix.Geteuid,
		cmd.InOrStdin(),
		cmd.OutOrStdout(),
	)
	defer app.Close()

	err := app.Setup(opts)
	if err != nil {
		return err
	}

	return app.Run()
}
