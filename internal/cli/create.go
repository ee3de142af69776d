package cli

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rspack-contrib/create-rspack/internal/branding"
	"github.com/rspack-contrib/create-rspack/internal/catalog"
	"github.com/rspack-contrib/create-rspack/internal/config"
	"github.com/rspack-contrib/create-rspack/internal/pkgmanager"
	"github.com/rspack-contrib/create-rspack/internal/prompt"
	"github.com/rspack-contrib/create-rspack/internal/scaffold"
	"github.com/rspack-contrib/create-rspack/internal/target"
	"github.com/spf13/cobra"
)

// creator holds everything one run of the interactive flow needs.
type creator struct {
	prompter        *prompt.Prompter
	out             io.Writer
	errOut          io.Writer
	cwd             string
	catalog         *catalog.Catalog
	agent           pkgmanager.Agent
	defaultName     string
	defaultTemplate string
}

func runCreate(cmd *cobra.Command, args []string) error {
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}

	cat, err := catalog.Open(config.TemplatesDir())
	if err != nil {
		return err
	}

	c := &creator{
		prompter:        prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		out:             cmd.OutOrStdout(),
		errOut:          cmd.ErrOrStderr(),
		cwd:             cwd,
		catalog:         cat,
		agent:           pkgmanager.Detect(config.UserAgent()),
		defaultName:     branding.DefaultProjectName(),
		defaultTemplate: config.DefaultTemplate(),
	}
	return c.run()
}

func (c *creator) run() error {
	resolver := &target.Resolver{
		Asker:       c.prompter,
		Out:         c.out,
		Dir:         c.cwd,
		DefaultName: c.defaultName,
	}

	name, root, err := resolver.Resolve()
	if err != nil {
		return err
	}

	tpl, err := c.selectTemplate()
	if err != nil {
		return err
	}
	src, err := c.catalog.FS(tpl)
	if err != nil {
		return err
	}

	// The folder can appear between the existence check and the copy; the
	// atomic claim in scaffold.Create catches that and we ask again.
	for {
		_, err = scaffold.Create(src, root)
		if !errors.Is(err, scaffold.ErrTargetExists) {
			break
		}
		fmt.Fprintln(c.out, c.prompter.Styles().Warning.Render(target.ConflictMessage(name)))
		if name, root, err = resolver.Resolve(); err != nil {
			return err
		}
	}
	if err != nil {
		return fmt.Errorf("creating project: %w", err)
	}

	c.printNextSteps(name)
	return nil
}

// selectTemplate asks for a template, preselecting the configured default.
func (c *creator) selectTemplate() (catalog.Template, error) {
	templates := c.catalog.List()
	choices := make([]prompt.Choice, len(templates))
	initial := 0
	for i, t := range templates {
		choices[i] = prompt.Choice{Title: t.Title, Value: t.Name}
		if t.Name == c.defaultTemplate {
			initial = i
		}
	}

	if c.defaultTemplate != "" {
		if _, ok := c.catalog.Find(c.defaultTemplate); !ok {
			fmt.Fprintf(c.errOut, "warning: ignoring %s: %v\n", config.KeyDefaultTemplate, c.catalog.UnknownTemplateError(c.defaultTemplate))
		}
	}

	value, err := c.prompter.Select("Project template", choices, initial)
	if err != nil {
		return catalog.Template{}, err
	}

	tpl, ok := c.catalog.Find(value)
	if !ok {
		return catalog.Template{}, c.catalog.UnknownTemplateError(value)
	}
	return tpl, nil
}

func (c *creator) printNextSteps(name string) {
	s := c.prompter.Styles()
	if c.agent.Version != nil {
		fmt.Fprintf(c.out, "\n%s\n", s.Hint.Render("Detected "+c.agent.String()))
	}
	fmt.Fprintf(c.out, "\n%s\n\n", s.Success.Render("Done. Now run:"))
	for _, line := range []string{
		"cd " + name,
		c.agent.InstallCommand(),
		c.agent.RunCommand("dev"),
	} {
		fmt.Fprintf(c.out, "  %s\n", s.Command.Render(line))
	}
	fmt.Fprintln(c.out)
}
