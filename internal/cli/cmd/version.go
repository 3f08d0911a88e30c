package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/styles"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		theme := styles.NewTheme()
		out := cmd.OutOrStdout()
		_, _ = fmt.Fprintf(out, "%s %s %s\n", theme.Highlight.Render(styles.IconVersion), theme.Title.Render("tabsnap"), buildInfo.String())
		if buildInfo.GoVersion != "" {
			_, _ = fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render(styles.IconGo), theme.Subtle.Render(buildInfo.GoVersion))
		}
		_, err := fmt.Fprintf(out, "%s %s\n", theme.Subtle.Render(styles.IconGithub), theme.Subtle.Render(build.RepoURL()))
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
