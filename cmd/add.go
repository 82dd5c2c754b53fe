package cmd

import (
	"path/filepath"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"cpmdsk/cpm"
)

var (
	addFormat formatFlags
	addSYS    bool
	addUser   int
)

var addCmd = &cobra.Command{
	Use:                   "add [--sssd|--combo] [--sys] [--user N] DISK FILE...",
	Short:                 "Add one or more host files to a CP/M disk image",
	Long:                  `Reads each FILE from the host filesystem and adds it to the disk image under its own 8.3 name, at the given user number. Files that fail to add are reported but do not prevent the others from being added.`,
	Args:                  cobra.MinimumNArgs(2),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		files := args[1:]

		image, err := readImage(path)
		if err != nil {
			return err
		}

		format, err := addFormat.resolve(image)
		if err != nil {
			return err
		}
		container, region := regionFor(format, image)
		fsys := cpm.FS{G: container.Geometry()}

		var result *multierror.Error
		for _, hostPath := range files {
			data, err := afero.ReadFile(fs, hostPath)
			if err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "read %s", hostPath))
				continue
			}
			name := filepath.Base(hostPath)
			if err := fsys.Add(region, name, data, addSYS, addUser); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "add %s", hostPath))
				continue
			}
		}

		if err := writeImage(path, image); err != nil {
			result = multierror.Append(result, err)
		}

		return result.ErrorOrNil()
	},
}

func init() {
	addFormat.register(addCmd.Flags())
	addCmd.Flags().BoolVarP(&addSYS, "sys", "s", false, "set the SYS attribute on added files")
	addCmd.Flags().IntVarP(&addUser, "user", "u", 0, "user number to add files under")
	rootCmd.AddCommand(addCmd)
}
