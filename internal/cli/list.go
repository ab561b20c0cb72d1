package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arborfs/arbor"
	"github.com/arborfs/arbor/internal/config"
)

func newListCmd(cfg *config.Config) *cobra.Command {
	var (
		all       bool
		recursive bool
		folders   bool
	)
	cmd := &cobra.Command{
		Use:   "ls [folder]",
		Short: "List a folder's files or subfolders",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := folderArg(args)
			if err != nil {
				return err
			}
			if folders {
				seq := dir.Subfolders()
				if recursive {
					seq = seq.Recursive()
				}
				if all || cfg.Listing.IncludeHidden {
					seq = seq.IncludingHidden()
				}
				for sub := range seq.All() {
					fmt.Fprintln(cmd.OutOrStdout(), sub.Path())
				}
				return nil
			}
			seq := dir.Files()
			if recursive {
				seq = seq.Recursive()
			}
			if all || cfg.Listing.IncludeHidden {
				seq = seq.IncludingHidden()
			}
			for f := range seq.All() {
				fmt.Fprintln(cmd.OutOrStdout(), f.Path())
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include hidden entries")
	cmd.Flags().BoolVarP(&recursive, "recursive", "r", false, "descend into subfolders")
	cmd.Flags().BoolVarP(&folders, "folders", "d", false, "list subfolders instead of files")
	return cmd
}

func newTreeCmd(cfg *config.Config) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "tree [folder]",
		Short: "Print a folder's subtree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := folderArg(args)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dir.Path())
			return printTree(cmd, dir, "  ", all || cfg.Listing.IncludeHidden)
		},
	}
	cmd.Flags().BoolVarP(&all, "all", "a", false, "include hidden entries")
	return cmd
}

func printTree(cmd *cobra.Command, dir *arbor.Folder, indent string, hidden bool) error {
	files := dir.Files()
	subs := dir.Subfolders()
	if hidden {
		files = files.IncludingHidden()
		subs = subs.IncludingHidden()
	}
	for f := range files.All() {
		fmt.Fprintln(cmd.OutOrStdout(), indent+f.Name())
	}
	for sub := range subs.All() {
		fmt.Fprintln(cmd.OutOrStdout(), indent+sub.Name()+arbor.Separator)
		if err := printTree(cmd, sub, indent+"  ", hidden); err != nil {
			return err
		}
	}
	return nil
}
