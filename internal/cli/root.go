package cli

import (
	"fmt"
	"os"

	"github.com/rspack-contrib/create-rspack/internal/branding"
	"github.com/rspack-contrib/create-rspack/internal/config"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: `Create a new ` + branding.DisplayName() + ` project.

Asks for a project folder and a starter template, copies the template into
the new folder, and prints the commands to install dependencies and start
the dev server.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
	},
	RunE: runCreate,
}

// Execute runs the root command with build info injected via ldflags.
// Errors are printed to stderr before being returned.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}
