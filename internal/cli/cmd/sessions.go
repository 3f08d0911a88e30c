package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/model"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/styles"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

var (
	sessionsJSON  bool
	sessionsLimit int
	captureName   string
	closeCurrent  bool
	mergeWindows  bool
)

var sessionsCmd = &cobra.Command{
	Use:     "sessions",
	Aliases: []string{"s"},
	Short:   "Manage captured sessions",
	Long: `Capture, list, restore and delete browser sessions.

Session ids can be shortened to any unique suffix, e.g. "R3T" for
sess_01J9ZQ3V6J5Z7Y0K2M4N8P1R3T.

Without a subcommand an interactive browser opens.`,
	Args: cobra.NoArgs,
	RunE: runSessionsBrowser,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
	sessionsCmd.PersistentFlags().BoolVar(&sessionsJSON, "json", false, "output as JSON")
}

func runSessionsBrowser(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	// Browsing works without a browser; restore then reports the host error.
	eng, err := app.Engine(true)
	if err != nil {
		logging.FromContext(app.Ctx()).Warn().Err(err).Msg("browser unavailable, opening read-only")
		if eng, err = app.Engine(false); err != nil {
			return err
		}
	}

	m := model.NewSessionsModel(app.Ctx(), app.Theme, model.SessionsModelConfig{
		Lister:   eng.ListSessions,
		Restorer: eng.Restore,
		Deleter:  eng.Delete,
		Limit:    sessionsLimit,
		Options:  restoreOptions(),
	})
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithInput(cmd.InOrStdin()), tea.WithOutput(cmd.OutOrStdout()))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run session browser: %w", err)
	}
	return nil
}

// sessions list
var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List captured sessions, newest first",
	Long: `List captured sessions with their window and tab counts.

Scheduled captures are marked with a clock.`,
	Args: cobra.NoArgs,
	RunE: runSessionsList,
}

func init() {
	sessionsCmd.AddCommand(sessionsListCmd)
	sessionsListCmd.Flags().IntVar(&sessionsLimit, "limit", 0, "maximum sessions to show (default from config)")
}

func runSessionsList(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	eng, err := app.Engine(false)
	if err != nil {
		return err
	}

	output, err := eng.ListSessions.Execute(app.Ctx(), sessionsLimit)
	if err != nil {
		return fmt.Errorf("list sessions: %w", err)
	}

	if sessionsJSON {
		return writeJSON(cmd.OutOrStdout(), output.Sessions)
	}
	limit := sessionsLimit
	if limit <= 0 {
		limit = app.Config.Session.DefaultListLimit
	}
	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderList(output.Sessions, limit))
	return err
}

// sessions show
var sessionsShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show the windows and tabs of a session",
	Args:  cobra.ExactArgs(1),
	RunE:  runSessionsShow,
}

func init() {
	sessionsCmd.AddCommand(sessionsShowCmd)
}

func runSessionsShow(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	session, err := app.FindSession(args[0])
	if err != nil {
		return err
	}

	if sessionsJSON {
		return writeJSON(cmd.OutOrStdout(), session)
	}
	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	_, err = fmt.Fprint(cmd.OutOrStdout(), renderer.RenderSession(session))
	return err
}

// sessions capture
var sessionsCaptureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Capture the running browser into the history",
	Args:  cobra.NoArgs,
	RunE:  runSessionsCapture,
}

func init() {
	sessionsCmd.AddCommand(sessionsCaptureCmd)
	sessionsCaptureCmd.Flags().StringVarP(&captureName, "name", "n", "", "session name (default derived from the capture time)")
}

func runSessionsCapture(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	eng, err := app.Engine(true)
	if err != nil {
		return err
	}

	session, err := eng.Capture.Execute(app.Ctx(), usecase.CaptureInput{Name: captureName, Kind: entity.SessionKindManual})
	if err != nil {
		return fmt.Errorf("capture session: %w", err)
	}

	if sessionsJSON {
		return writeJSON(cmd.OutOrStdout(), session.Summary())
	}
	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCaptured(session))
	return err
}

// sessions restore
var sessionsRestoreCmd = &cobra.Command{
	Use:   "restore <id>",
	Short: "Recreate a session's windows, tabs and groups",
	Long: `Recreate a captured session in the running browser.

Restores are best-effort: windows or tabs the browser refuses are
reported as warnings and the rest is still restored. Incognito windows
are never restored.

With --merge, the tabs are opened in the focused window instead of new
windows. With --close-current, the tabs open before the restore are
closed once it completes.`,
	Args: cobra.ExactArgs(1),
	RunE: runSessionsRestore,
}

func init() {
	sessionsCmd.AddCommand(sessionsRestoreCmd)
	addRestoreFlags(sessionsRestoreCmd)
}

func addRestoreFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&closeCurrent, "close-current", false, "close the tabs that were open before restoring")
	cmd.Flags().BoolVar(&mergeWindows, "merge", false, "open tabs in the focused window instead of new windows")
}

func restoreOptions() entity.RestoreOptions {
	opts := entity.DefaultRestoreOptions()
	opts.CloseCurrentTabs = closeCurrent
	opts.NewWindows = !mergeWindows
	return opts
}

func runSessionsRestore(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	eng, err := app.Engine(true)
	if err != nil {
		return err
	}
	session, err := app.FindSession(args[0])
	if err != nil {
		return err
	}

	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	if !sessionsJSON {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), renderer.RenderRestoreStarted(session.ID))
	}
	result, err := eng.Restore.Execute(app.Ctx(), usecase.RestoreInput{SessionID: session.ID, Options: restoreOptions()})
	if err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	return writeRestoreResult(cmd.OutOrStdout(), renderer, result)
}

func writeRestoreResult(w io.Writer, renderer *styles.SessionsCLIRenderer, result *entity.RestoreResult) error {
	if sessionsJSON {
		return writeJSON(w, result)
	}
	_, err := fmt.Fprintln(w, renderer.RenderRestoreResult(result))
	return err
}

// sessions delete
var sessionsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete a session from the history",
	Args:    cobra.ExactArgs(1),
	RunE:    runSessionsDelete,
}

func init() {
	sessionsCmd.AddCommand(sessionsDeleteCmd)
}

func runSessionsDelete(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	session, err := app.FindSession(args[0])
	if err != nil {
		return err
	}
	eng, err := app.Engine(false)
	if err != nil {
		return err
	}

	if err := eng.Delete.Execute(app.Ctx(), session.ID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	renderer := styles.NewSessionsCLIRenderer(app.Theme)
	_, err = fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderDeleted(session.ID))
	return err
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
