package cli

import (
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arborfs/arbor"
	"github.com/arborfs/arbor/internal/logging"
)

func newCatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat <file>",
		Short: "Print a file's contents",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := arbor.OpenFile(args[0])
			if err != nil {
				return err
			}
			data, err := f.Read()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

func newWriteCmd(log *logging.Logger) *cobra.Command {
	var appendTo bool
	cmd := &cobra.Command{
		Use:   "write <file>",
		Short: "Write stdin to a file, creating it if needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, name, err := splitTarget(args[0])
			if err != nil {
				return err
			}
			f, err := parent.CreateFileIfNeeded(name)
			if err != nil {
				return err
			}
			data, err := io.ReadAll(cmd.InOrStdin())
			if err != nil {
				return err
			}
			if appendTo {
				err = f.Append(data)
			} else {
				err = f.Write(data)
			}
			if err != nil {
				return err
			}
			log.Debug("wrote file", zap.String("path", f.Path()), zap.Int("bytes", len(data)))
			return nil
		},
	}
	cmd.Flags().BoolVar(&appendTo, "append", false, "append instead of overwrite")
	return cmd
}
