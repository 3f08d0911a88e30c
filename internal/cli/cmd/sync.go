package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/styles"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Push the session history to the configured sync provider",
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
		if err := eng.Sync.Execute(app.Ctx()); err != nil {
			return err
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Session history synced.\n", app.Theme.SuccessStyle.Render(styles.IconCheck))
		return err
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
}
