package cli

import (
	gopath "path"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arborfs/arbor"
	"github.com/arborfs/arbor/internal/logging"
)

// splitTarget opens the parent folder of a not-yet-existing path and returns
// it with the final component.
func splitTarget(raw string) (*arbor.Folder, string, error) {
	dir, name := gopath.Split(raw)
	if dir == "" {
		parent, err := arbor.Current()
		return parent, name, err
	}
	parent, err := arbor.OpenFolder(dir)
	return parent, name, err
}

func newMkdirCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "mkdir <path>",
		Short: "Create a subfolder",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parent, name, err := splitTarget(args[0])
			if err != nil {
				return err
			}
			sub, err := parent.CreateSubfolder(name)
			if err != nil {
				return err
			}
			log.Debug("created folder", zap.String("path", sub.Path()))
			return nil
		},
	}
}

func newTouchCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "touch <path>",
		Short: "Create an empty file if it does not exist",
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
			log.Debug("touched file", zap.String("path", f.Path()))
			return nil
		},
	}
}

func newRemoveCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "rm <path>",
		Short: "Delete a file or folder (folders recursively)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, err := arbor.OpenFile(args[0]); err == nil {
				log.Debug("deleting file", zap.String("path", f.Path()))
				return f.Delete()
			}
			dir, err := arbor.OpenFolder(args[0])
			if err != nil {
				return err
			}
			log.Debug("deleting folder", zap.String("path", dir.Path()))
			return dir.Delete()
		},
	}
}

func newMoveCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "mv <source> <destination-folder>",
		Short: "Move a file or folder into another folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dest, err := arbor.OpenFolder(args[1])
			if err != nil {
				return err
			}
			var item arbor.Item
			if f, err := arbor.OpenFile(args[0]); err == nil {
				item = f
			} else if dir, err := arbor.OpenFolder(args[0]); err == nil {
				item = dir
			} else {
				return err
			}
			if err := item.MoveTo(dest); err != nil {
				return err
			}
			log.Debug("moved", zap.String("path", item.Path()))
			return nil
		},
	}
}

func newRenameCmd(log *logging.Logger) *cobra.Command {
	var exact bool
	cmd := &cobra.Command{
		Use:   "rename <path> <new-name>",
		Short: "Rename a file or folder in place",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if f, err := arbor.OpenFile(args[0]); err == nil {
				if exact {
					err = f.RenameExact(args[1])
				} else {
					err = f.Rename(args[1])
				}
				if err != nil {
					return err
				}
				log.Debug("renamed", zap.String("path", f.Path()))
				return nil
			}
			dir, err := arbor.OpenFolder(args[0])
			if err != nil {
				return err
			}
			if err := dir.Rename(args[1]); err != nil {
				return err
			}
			log.Debug("renamed", zap.String("path", dir.Path()))
			return nil
		},
	}
	cmd.Flags().BoolVar(&exact, "exact", false, "do not carry over the current file extension")
	return cmd
}
