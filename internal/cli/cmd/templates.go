package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/styles"
)

var (
	templateTag    string
	templateOutput string
)

var templatesCmd = &cobra.Command{
	Use:     "templates",
	Aliases: []string{"t"},
	Short:   "Manage session templates",
	Long: `Templates are named layouts captured from the running browser that can
be restored any number of times. They can be exported to YAML and
imported on another machine.`,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.PersistentFlags().BoolVar(&sessionsJSON, "json", false, "output as JSON")
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List templates, newest first",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		eng, err := app.Engine(false)
		if err != nil {
			return err
		}
		items, err := eng.Manage.List(app.Ctx())
		if err != nil {
			return fmt.Errorf("list templates: %w", err)
		}
		if sessionsJSON {
			return writeJSON(cmd.OutOrStdout(), items)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewTemplatesCLIRenderer(app.Theme).RenderList(items))
		return err
	},
}

var templatesCreateCmd = &cobra.Command{
	Use:   "create <name>",
	Short: "Capture the running browser as a new template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		eng, err := app.Engine(true)
		if err != nil {
			return err
		}
		tmpl, err := eng.Manage.Create(app.Ctx(), usecase.CreateTemplateInput{Name: args[0], WorkflowTag: templateTag})
		if err != nil {
			return fmt.Errorf("create template: %w", err)
		}
		if sessionsJSON {
			return writeJSON(cmd.OutOrStdout(), tmpl.Summary())
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewTemplatesCLIRenderer(app.Theme).RenderCreated(tmpl))
		return err
	},
}

var templatesDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a template",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		tmpl, err := app.FindTemplate(args[0])
		if err != nil {
			return err
		}
		eng, err := app.Engine(false)
		if err != nil {
			return err
		}
		if err := eng.Manage.Delete(app.Ctx(), tmpl.ID); err != nil {
			return fmt.Errorf("delete template: %w", err)
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewTemplatesCLIRenderer(app.Theme).RenderDeleted(tmpl.ID))
		return err
	},
}

var templatesRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Recreate a template's windows, tabs and groups",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		eng, err := app.Engine(true)
		if err != nil {
			return err
		}
		tmpl, err := app.FindTemplate(args[0])
		if err != nil {
			return err
		}
		result, err := eng.Manage.Restore(app.Ctx(), tmpl.ID, restoreOptions())
		if err != nil {
			return fmt.Errorf("restore template: %w", err)
		}
		return writeRestoreResult(cmd.OutOrStdout(), styles.NewSessionsCLIRenderer(app.Theme), result)
	},
}

var templatesExportCmd = &cobra.Command{
	Use:   "export <id>",
	Short: "Write a template as a YAML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		tmpl, err := app.FindTemplate(args[0])
		if err != nil {
			return err
		}
		eng, err := app.Engine(false)
		if err != nil {
			return err
		}
		doc, err := eng.Manage.Export(app.Ctx(), tmpl.ID)
		if err != nil {
			return fmt.Errorf("export template: %w", err)
		}
		if templateOutput == "" || templateOutput == "-" {
			_, err = cmd.OutOrStdout().Write(doc)
			return err
		}
		if err := os.WriteFile(templateOutput, doc, 0o600); err != nil {
			return fmt.Errorf("write %s: %w", templateOutput, err)
		}
		_, err = fmt.Fprintf(cmd.ErrOrStderr(), "%s Exported %s to %s\n",
			app.Theme.SuccessStyle.Render(styles.IconCheck), tmpl.ID, templateOutput)
		return err
	},
}

var templatesImportCmd = &cobra.Command{
	Use:   "import <file|->",
	Short: "Import a template from a YAML document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		doc, err := readDocument(cmd.InOrStdin(), args[0])
		if err != nil {
			return err
		}
		eng, err := app.Engine(false)
		if err != nil {
			return err
		}
		tmpl, err := eng.Manage.Import(app.Ctx(), doc)
		if err != nil {
			return fmt.Errorf("import template: %w", err)
		}
		if sessionsJSON {
			return writeJSON(cmd.OutOrStdout(), tmpl.Summary())
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), styles.NewTemplatesCLIRenderer(app.Theme).RenderImported(tmpl))
		return err
	},
}

func readDocument(stdin io.Reader, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(stdin)
	}
	doc, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return doc, nil
}

func init() {
	templatesCmd.AddCommand(templatesListCmd, templatesCreateCmd, templatesDeleteCmd,
		templatesRestoreCmd, templatesExportCmd, templatesImportCmd)
	templatesCreateCmd.Flags().StringVar(&templateTag, "tag", "", "workflow tag, e.g. research or standup")
	templatesExportCmd.Flags().StringVarP(&templateOutput, "output", "o", "", "output file (default stdout)")
	addRestoreFlags(templatesRestoreCmd)
}
