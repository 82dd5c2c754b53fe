package cmd

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"cpmdsk/cpm"
)

var (
	deleteFormat formatFlags
	deleteUser   int
)

var deleteCmd = &cobra.Command{
	Use:                   "delete [--sssd|--combo] [--user N] DISK PATTERN...",
	Short:                 "Delete files from a CP/M disk image",
	Long:                  `Removes every live directory entry whose name matches PATTERN (CP/M 8.3 wildcards, e.g. "*.COM") at the given user number. A pattern that matches nothing is reported, not treated as an error.`,
	Args:                  cobra.MinimumNArgs(2),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		patterns := args[1:]

		image, err := readImage(path)
		if err != nil {
			return err
		}

		format, err := deleteFormat.resolve(image)
		if err != nil {
			return err
		}
		container, region := regionFor(format, image)
		fsys := cpm.FS{G: container.Geometry()}

		var result *multierror.Error
		anyDeleted := false
		for _, pattern := range patterns {
			n, err := fsys.Delete(region, pattern, deleteUser)
			if err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "delete %s", pattern))
				continue
			}
			if n == 0 {
				fmt.Printf("%s: no match\n", pattern)
				continue
			}
			anyDeleted = true
		}

		if anyDeleted {
			if err := writeImage(path, image); err != nil {
				result = multierror.Append(result, err)
			}
		}

		return result.ErrorOrNil()
	},
}

func init() {
	deleteFormat.register(deleteCmd.Flags())
	deleteCmd.Flags().IntVarP(&deleteUser, "user", "u", 0, "user number to delete files from")
	rootCmd.AddCommand(deleteCmd)
}
