package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arborfs/arbor"
)

func newFindCmd() *cobra.Command {
	var glob bool
	cmd := &cobra.Command{
		Use:   "find <folder> <pattern>",
		Short: "Find files by name pattern, or by path glob with --glob",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := arbor.OpenFolder(args[0])
			if err != nil {
				return err
			}
			if glob {
				matches, err := dir.Glob(args[1])
				if err != nil {
					return err
				}
				for _, f := range matches {
					fmt.Fprintln(cmd.OutOrStdout(), f.Path())
				}
				return nil
			}
			paths, err := dir.FindFiles(args[1])
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintln(cmd.OutOrStdout(), p)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&glob, "glob", false, "match the relative path with ** patterns")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <file>",
		Short: "Show a file's size, times and detected type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := arbor.OpenFile(args[0])
			if err != nil {
				return err
			}
			size, err := f.Size()
			if err != nil {
				return err
			}
			modTime, err := f.ModTime()
			if err != nil {
				return err
			}
			mime, err := f.MIMEType()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "path:      %s\n", f.Path())
			fmt.Fprintf(out, "name:      %s\n", f.Name())
			if ext := f.Extension(); ext != "" {
				fmt.Fprintf(out, "extension: %s\n", ext)
			}
			fmt.Fprintf(out, "size:      %d\n", size)
			fmt.Fprintf(out, "modified:  %s\n", modTime.Format("2006-01-02 15:04:05"))
			fmt.Fprintf(out, "type:      %s\n", strings.TrimSpace(mime))
			return nil
		},
	}
}
