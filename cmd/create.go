package cmd

import (
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"cpmdsk/cpm"
)

var (
	createSSSD  bool
	createCombo bool
	createForce bool
)

var createCmd = &cobra.Command{
	Use:                   "create [--sssd|--combo] DISK",
	Short:                 "Create a freshly formatted CP/M disk image",
	Long:                  `Creates a new disk image file, formatted and ready for files. Defaults to hd1k geometry; pass --sssd for an 8" floppy image or --combo for a 49 MiB multi-slice image.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		if createSSSD && createCombo {
			return errors.New("--sssd and --combo are mutually exclusive")
		}

		exists, err := afero.Exists(fs, path)
		if err != nil {
			return errors.Wrapf(err, "stat %s", path)
		}
		if exists && !createForce {
			return errors.Errorf("%s already exists (use --force to overwrite)", path)
		}

		var image []byte
		switch {
		case createSSSD:
			image, err = cpm.NewSSSDImage()
		case createCombo:
			image, err = cpm.NewComboImage()
		default:
			image, err = cpm.NewHD1KImage()
		}
		if err != nil {
			return errors.Wrap(err, "format image")
		}

		return writeImage(path, image)
	},
}

func init() {
	createCmd.Flags().BoolVar(&createSSSD, "sssd", false, "format as an 8\" SSSD floppy image")
	createCmd.Flags().BoolVar(&createCombo, "combo", false, "format as a 49 MiB combo image")
	createCmd.Flags().BoolVarP(&createForce, "force", "f", false, "overwrite an existing file")
	rootCmd.AddCommand(createCmd)
}
