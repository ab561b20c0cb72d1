package cli

import (
	"bytes"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arborfs/arbor"
	"github.com/arborfs/arbor/internal/logging"
)

func newZipCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "zip <folder> <output>",
		Short: "Pack a folder's subtree into a zip or tar.gz archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := arbor.OpenFolder(args[0])
			if err != nil {
				return err
			}
			parent, name, err := splitTarget(args[1])
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz") {
				err = dir.TarGz(&buf)
			} else {
				err = dir.Zip(&buf)
			}
			if err != nil {
				return err
			}
			out, err := parent.CreateFileIfNeeded(name)
			if err != nil {
				return err
			}
			if err := out.Write(buf.Bytes()); err != nil {
				return err
			}
			log.Debug("archived", zap.String("source", dir.Path()), zap.String("output", out.Path()))
			return nil
		},
	}
}

func newUnzipCmd(log *logging.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "unzip <archive> <folder>",
		Short: "Extract a zip or tar.gz archive into a folder",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := arbor.OpenFile(args[0])
			if err != nil {
				return err
			}
			data, err := f.Read()
			if err != nil {
				return err
			}
			dest, err := arbor.OpenFolder(args[1])
			if err != nil {
				return err
			}
			name := f.Name()
			if strings.HasSuffix(name, ".tar.gz") || strings.HasSuffix(name, ".tgz") {
				err = dest.UntarGz(bytes.NewReader(data))
			} else {
				err = dest.Unzip(bytes.NewReader(data), int64(len(data)))
			}
			if err != nil {
				return err
			}
			log.Debug("extracted", zap.String("archive", f.Path()), zap.String("into", dest.Path()))
			return nil
		},
	}
}
