package cmd

import (
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"cpmdsk/cpm"
)

var (
	extractFormat formatFlags
	extractUser   int
	extractOutDir string
)

var extractCmd = &cobra.Command{
	Use:                   "extract [--sssd|--combo] [--user N] [--output DIR] DISK FILE...",
	Short:                 "Extract files from a CP/M disk image to the host filesystem",
	Long:                  `Reads each FILE by exact name from the disk image at the given user number and writes it under DIR (default: current directory) on the host filesystem.`,
	Args:                  cobra.MinimumNArgs(2),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		names := args[1:]

		image, err := readImage(path)
		if err != nil {
			return err
		}

		format, err := extractFormat.resolve(image)
		if err != nil {
			return err
		}
		container, region := regionFor(format, image)
		fsys := cpm.FS{G: container.Geometry()}

		outDir := extractOutDir
		if outDir == "" {
			outDir = "."
		}
		if err := fs.MkdirAll(outDir, 0755); err != nil {
			return errors.Wrapf(err, "create %s", outDir)
		}

		var result *multierror.Error
		for _, name := range names {
			data, err := fsys.Extract(region, name, extractUser)
			if err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "extract %s", name))
				continue
			}
			outPath := filepath.Join(outDir, strings.ToLower(filepath.Base(name)))
			if err := afero.WriteFile(fs, outPath, data, 0644); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "write %s", outPath))
			}
		}

		return result.ErrorOrNil()
	},
}

func init() {
	extractFormat.register(extractCmd.Flags())
	extractCmd.Flags().IntVarP(&extractUser, "user", "u", 0, "user number to extract files from")
	extractCmd.Flags().StringVarP(&extractOutDir, "output", "o", "", "output directory (default: current directory)")
	rootCmd.AddCommand(extractCmd)
}
