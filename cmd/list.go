package cmd

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"cpmdsk/cpm"
)

var listFormat formatFlags

var listCmd = &cobra.Command{
	Use:                   "list [--sssd|--combo] DISK",
	Short:                 "List the files on a CP/M disk image",
	Long:                  `Reads the directory of a CP/M disk image and prints one row per file: user number, name, size in bytes, blocks used, and the SYS attribute.`,
	Args:                  cobra.ExactArgs(1),
	DisableFlagsInUseLine: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		image, err := readImage(path)
		if err != nil {
			return err
		}

		format, err := listFormat.resolve(image)
		if err != nil {
			return err
		}
		container, region := regionFor(format, image)

		fsys := cpm.FS{G: container.Geometry()}
		infos, err := fsys.List(region)
		if err != nil {
			return errors.Wrap(err, "list")
		}

		fmt.Printf("%-3s %-12s %8s %6s %s\n", "Usr", "Name", "Bytes", "Blks", "Sys")
		for _, fi := range infos {
			sys := ""
			if fi.SYS {
				sys = "sys"
			}
			fmt.Printf("%-3d %-12s %8d %6d %s\n", fi.User, fi.Name, fi.Size, fi.Blocks, sys)
		}
		return nil
	},
}

func init() {
	listFormat.register(listCmd.Flags())
	rootCmd.AddCommand(listCmd)
}
