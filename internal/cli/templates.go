package cli

import (
	"fmt"

	"github.com/rspack-contrib/create-rspack/internal/catalog"
	"github.com/rspack-contrib/create-rspack/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(templatesCmd)
}

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the available project templates",
	Long: `List the templates offered by the project template prompt.

The built-in templates are used unless templates_dir is configured, either
with 'config set templates_dir <dir>' or the CREATE_RSPACK_TEMPLATES_DIR
environment variable.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cat, err := catalog.Open(config.TemplatesDir())
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		width := cat.Width()
		for _, t := range cat.List() {
			fmt.Fprintf(out, "%-*s  %s\n", width, t.Name, t.Description)
		}
		if cat.Source() != catalog.BuiltinSource {
			fmt.Fprintf(cmd.ErrOrStderr(), "\nTemplates loaded from %s\n", cat.Source())
		}
		return nil
	},
}
