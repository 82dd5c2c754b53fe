// Package cmd implements the cpmdsk command-line surface: one cobra
// command per file, wired to package cpm for the filesystem semantics
// and afero for host I/O (so the whole CLI is testable against an
// in-memory filesystem without touching disk).
package cmd

import (
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// fs is the host filesystem the CLI reads and writes images through.
// Tests replace it with afero.NewMemMapFs().
var fs afero.Fs = afero.NewOsFs()

var rootCmd = &cobra.Command{
	Use:   "cpmdsk",
	Short: "Create, inspect and modify CP/M disk images",
	Long: `cpmdsk creates, lists, adds to, deletes from and extracts files out of
CP/M disk images in three RomWBW-compatible geometries: an 8" SSSD
floppy, an 8 MiB hd1k hard-disk slice, and a 49 MiB MBR-prefixed combo
image built from six hd1k slices.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command and returns its error, if any, for
// main to map to a process exit code.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.EnableCommandSorting = false
}
