// Package cli implements the arbor command-line tool on top of the handle
// library.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/arborfs/arbor"
	"github.com/arborfs/arbor/internal/config"
	"github.com/arborfs/arbor/internal/logging"
)

// Execute runs the root command against the operating-system tree.
func Execute() error {
	cfg := config.LoadOrDefault()

	log, err := logging.New(logging.Config{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
	})
	if err != nil {
		log = logging.NewDefault()
	}
	defer log.Sync() //nolint:errcheck

	return newRootCmd(cfg, log).Execute()
}

func newRootCmd(cfg *config.Config, log *logging.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "arbor",
		Short:         "Typed file and folder operations",
		Long:          "arbor inspects and mutates a folder tree through validated, typed handles.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.AddCommand(
		newListCmd(cfg),
		newTreeCmd(cfg),
		newMkdirCmd(log),
		newTouchCmd(log),
		newRemoveCmd(log),
		newMoveCmd(log),
		newRenameCmd(log),
		newCatCmd(),
		newWriteCmd(log),
		newFindCmd(),
		newInfoCmd(),
		newZipCmd(log),
		newUnzipCmd(log),
	)
	return root
}

// folderArg opens the folder named by the first argument, defaulting to the
// working directory when absent.
func folderArg(args []string) (*arbor.Folder, error) {
	if len(args) == 0 {
		return arbor.Current()
	}
	return arbor.OpenFolder(args[0])
}
