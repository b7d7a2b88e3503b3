package main

import (
	"context"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"

	"github.com/archivemeta/stlmeta/version"
)

var (
	fileFullName string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "stlmeta --file-full-name=<path>",
	Short: "Extract preservation metadata from STL files",
	Long: `stlmeta parses STL (stereolithography) files in both ASCII and binary
encodings, validates their structural and geometric well-formedness, and
writes a normalized XML metadata record to standard output.

On failure a structured JSON note is written to standard error and the
process exits with status 1.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	rootCmd.Flags().StringVar(&fileFullName, "file-full-name", "", "path of the STL file to describe")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

func main() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(version.String()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		os.Exit(1)
	}
}
