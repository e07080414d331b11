// Package cli provides the command-line interface for Voronoi.
package cli

import (
	"fmt"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/voronoi/internal/logging"
	"github.com/jmylchreest/voronoi/internal/version"
)

// NewRootCmd builds the command tree. Each call returns an independent tree,
// so tests can run commands side by side.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "voronoi",
		Short: "Generate random Voronoi diagrams",
		Long: `Voronoi scatters random seed points over an image and paints every pixel
with the colour of its nearest seed, producing a Voronoi diagram.

Colours come from named themes. Five themes are built in; more can be
defined in a theme file (see "voronoi themes --help").`,
		Version:      version.Short(),
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress non-error output")

	// Set version template
	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newGenerateCmd())
	rootCmd.AddCommand(newThemesCmd())

	return rootCmd
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}

// loggerFor builds the logger for a command from the global flags.
func loggerFor(cmd *cobra.Command) hclog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	quiet, _ := cmd.Flags().GetBool("quiet")
	return logging.New(cmd.ErrOrStderr(), verbose, quiet)
}
