package cli

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "desclint",
		Short: "Parse and validate DESCRIPTION package metadata files",
		Long: `Desclint reads DESCRIPTION metadata files in control format
(field: value pairs with indented continuation lines), checks them
against the packaging conventions, and reports blocking errors and
advisory warnings.

Inputs can be bare DESCRIPTION files, package directories, or source
bundles (.tar.gz, .tar.xz, .tar.zst).`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Setup logging
			verbose, _ := cmd.Flags().GetBool("verbose")
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			} else {
				logrus.SetLevel(logrus.InfoLevel)
			}
		},
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	// Add subcommands
	rootCmd.AddCommand(NewCheckCmd())
	rootCmd.AddCommand(NewDepsCmd())
	rootCmd.AddCommand(NewFmtCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}
