// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/cli/styles"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

// SessionLister lists session summaries.
type SessionLister interface {
	Execute(ctx context.Context, limit int) (*usecase.ListSessionsOutput, error)
	Get(ctx context.Context, id entity.SessionID) (*entity.Session, error)
}

// SessionRestorer restores a session.
type SessionRestorer interface {
	Execute(ctx context.Context, input usecase.RestoreInput) (*entity.RestoreResult, error)
}

// SessionDeleter deletes a session.
type SessionDeleter interface {
	Execute(ctx context.Context, id entity.SessionID) error
}

// SessionsModel is the Bubble Tea model for interactive session browser.
type SessionsModel struct {
	// UI components
	help help.Model
	keys sessionsKeyMap

	// State
	sessions      []entity.SessionSummary
	details       map[entity.SessionID]*entity.Session
	selectedIdx   int
	expandedIdx   int // -1 means none expanded
	pendingDelete bool
	busy          bool
	width         int
	height        int
	err           error
	statusMessage string

	// Config
	limit   int
	options entity.RestoreOptions

	// Dependencies
	ctx      context.Context
	lister   SessionLister
	restorer SessionRestorer
	deleter  SessionDeleter
	theme    *styles.Theme
}

// sessionsKeyMap defines keybindings for the sessions browser.
type sessionsKeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Expand  key.Binding
	Restore key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Refresh key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings for the short help view.
func (k sessionsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Expand, k.Restore, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the full help view.
func (k sessionsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Expand},
		{k.Restore, k.Delete, k.Refresh},
		{k.Help, k.Quit},
	}
}

func defaultSessionsKeyMap() sessionsKeyMap {
	return sessionsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "down"),
		),
		Expand: key.NewBinding(
			key.WithKeys("enter", "tab"),
			key.WithHelp("enter", "expand/collapse"),
		),
		Restore: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restore"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "d"),
			key.WithHelp("x", "delete"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "confirm"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("R"),
			key.WithHelp("R", "refresh"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// SessionsModelConfig holds configuration for the sessions model.
type SessionsModelConfig struct {
	Lister   SessionLister
	Restorer SessionRestorer
	Deleter  SessionDeleter
	Limit    int
	Options  entity.RestoreOptions
}

// NewSessionsModel creates a new sessions browser model.
func NewSessionsModel(ctx context.Context, theme *styles.Theme, cfg SessionsModelConfig) SessionsModel {
	return SessionsModel{
		help:        help.New(),
		keys:        defaultSessionsKeyMap(),
		details:     make(map[entity.SessionID]*entity.Session),
		expandedIdx: -1,
		width:       80,
		height:      24,
		limit:       cfg.Limit,
		options:     cfg.Options,
		ctx:         ctx,
		lister:      cfg.Lister,
		restorer:    cfg.Restorer,
		deleter:     cfg.Deleter,
		theme:       theme,
	}
}

// Init implements tea.Model.
func (m SessionsModel) Init() tea.Cmd {
	return m.loadSessions
}

type sessionsLoadedMsg struct {
	sessions []entity.SessionSummary
	err      error
}

type sessionLoadedMsg struct {
	session *entity.Session
	err     error
}

type sessionDeletedMsg struct {
	sessionID entity.SessionID
	err       error
}

type sessionRestoredMsg struct {
	sessionID entity.SessionID
	result    *entity.RestoreResult
	err       error
}

func (m SessionsModel) loadSessions() tea.Msg {
	log := logging.FromContext(m.ctx)
	log.Debug().Msg("loading sessions")

	output, err := m.lister.Execute(m.ctx, m.limit)
	if err != nil {
		log.Error().Err(err).Msg("failed to load sessions")
		return sessionsLoadedMsg{err: err}
	}
	return sessionsLoadedMsg{sessions: output.Sessions}
}

// Update implements tea.Model.
func (m SessionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case sessionsLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.sessions = msg.sessions
		m.err = nil
		if m.selectedIdx >= len(m.sessions) {
			m.selectedIdx = max(len(m.sessions)-1, 0)
		}
		m.expandedIdx = -1
		return m, nil

	case sessionLoadedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
			return m, nil
		}
		m.details[msg.session.ID] = msg.session
		return m, nil

	case sessionDeletedMsg:
		if msg.err != nil {
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		} else {
			delete(m.details, msg.sessionID)
			m.statusMessage = fmt.Sprintf("Session %s deleted", msg.sessionID)
		}
		return m, m.loadSessions

	case sessionRestoredMsg:
		m.busy = false
		switch {
		case msg.err != nil:
			m.statusMessage = fmt.Sprintf("Error: %v", msg.err)
		case len(msg.result.Warnings) > 0:
			m.statusMessage = fmt.Sprintf("Restored %s with %d warnings", msg.sessionID, len(msg.result.Warnings))
		default:
			m.statusMessage = fmt.Sprintf("Restored %s: %d windows, %d tabs",
				msg.sessionID, msg.result.RestoredWindows, msg.result.RestoredTabs)
		}
		return m, nil
	}

	return m, nil
}

func (m SessionsModel) selected() (entity.SessionSummary, bool) {
	if m.selectedIdx < 0 || m.selectedIdx >= len(m.sessions) {
		return entity.SessionSummary{}, false
	}
	return m.sessions[m.selectedIdx], true
}

func (m SessionsModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.pendingDelete {
		m.pendingDelete = false
		if key.Matches(msg, m.keys.Confirm) {
			if s, ok := m.selected(); ok {
				return m, m.deleteSession(s.ID)
			}
		}
		m.statusMessage = "Delete cancelled"
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.selectedIdx > 0 {
			m.selectedIdx--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selectedIdx < len(m.sessions)-1 {
			m.selectedIdx++
		}
		return m, nil

	case key.Matches(msg, m.keys.Expand):
		s, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.expandedIdx == m.selectedIdx {
			m.expandedIdx = -1
			return m, nil
		}
		m.expandedIdx = m.selectedIdx
		if _, loaded := m.details[s.ID]; loaded {
			return m, nil
		}
		return m, m.loadSession(s.ID)

	case key.Matches(msg, m.keys.Restore):
		s, ok := m.selected()
		if !ok {
			return m, nil
		}
		if m.busy {
			m.statusMessage = "A restore is already running"
			return m, nil
		}
		m.busy = true
		m.statusMessage = fmt.Sprintf("Restoring session %s...", s.ID)
		return m, m.restoreSession(s.ID)

	case key.Matches(msg, m.keys.Delete):
		if s, ok := m.selected(); ok {
			m.pendingDelete = true
			m.statusMessage = fmt.Sprintf("Delete session %s? (y/N)", s.ID)
		}
		return m, nil

	case key.Matches(msg, m.keys.Refresh):
		return m, m.loadSessions

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	return m, nil
}

func (m SessionsModel) loadSession(id entity.SessionID) tea.Cmd {
	return func() tea.Msg {
		session, err := m.lister.Get(m.ctx, id)
		return sessionLoadedMsg{session: session, err: err}
	}
}

func (m SessionsModel) deleteSession(sessionID entity.SessionID) tea.Cmd {
	return func() tea.Msg {
		log := logging.FromContext(m.ctx)
		log.Info().Str("session_id", string(sessionID)).Msg("deleting session")

		err := m.deleter.Execute(m.ctx, sessionID)
		return sessionDeletedMsg{sessionID: sessionID, err: err}
	}
}

func (m SessionsModel) restoreSession(sessionID entity.SessionID) tea.Cmd {
	return func() tea.Msg {
		result, err := m.restorer.Execute(m.ctx, usecase.RestoreInput{SessionID: sessionID, Options: m.options})
		return sessionRestoredMsg{sessionID: sessionID, result: result, err: err}
	}
}

// View implements tea.Model.
func (m SessionsModel) View() string {
	t := m.theme
	var b strings.Builder

	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	if m.err != nil {
		b.WriteString(t.ErrorStyle.Render(fmt.Sprintf("%s Error: %v", styles.IconX, m.err)))
		b.WriteString("\n\n")
	}

	if m.statusMessage != "" {
		b.WriteString(t.Subtle.Render(m.statusMessage))
		b.WriteString("\n\n")
	}

	if len(m.sessions) == 0 {
		b.WriteString(t.Subtle.Render("  No saved sessions found."))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderSessionsList(max(m.height-listChrome, minListLines)))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m SessionsModel) renderHeader() string {
	t := m.theme

	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	titleStyle := t.Title.MarginLeft(1)

	var manual, scheduled int
	for _, s := range m.sessions {
		if s.Kind == entity.SessionKindScheduled {
			scheduled++
		} else {
			manual++
		}
	}

	stats := t.Subtle.Render(fmt.Sprintf("  %s %d manual  %s %d scheduled",
		styles.IconCamera, manual,
		styles.IconClock, scheduled,
	))
	return iconStyle.Render(styles.IconSession) + titleStyle.Render("Sessions") + stats
}

// renderSessionsList renders at most maxLines lines, scrolled so the
// selected row stays visible.
func (m SessionsModel) renderSessionsList(maxLines int) string {
	var lines []string
	selectedLine := 0
	for i, s := range m.sessions {
		if i == m.selectedIdx {
			selectedLine = len(lines)
		}
		lines = append(lines, m.renderSessionRow(s, i == m.selectedIdx))
		if i == m.expandedIdx {
			details := strings.TrimSuffix(m.renderSessionDetails(s.ID), "\n")
			lines = append(lines, strings.Split(details, "\n")...)
		}
	}

	if maxLines <= 0 || len(lines) <= maxLines {
		return strings.Join(lines, "\n") + "\n"
	}

	start := 0
	if selectedLine >= maxLines {
		start = selectedLine - maxLines + 1
	}
	// Show the expanded details below the selected row when they fit.
	if m.expandedIdx == m.selectedIdx {
		start = min(selectedLine, len(lines)-maxLines)
	}
	end := min(start+maxLines, len(lines))
	return strings.Join(lines[start:end], "\n") + "\n"
}

func (m SessionsModel) renderSessionRow(s entity.SessionSummary, isSelected bool) string {
	t := m.theme

	cursor := "  "
	if isSelected {
		cursor = t.Highlight.Render(styles.IconCursor + " ")
	}

	nameStyle := t.Normal
	if isSelected {
		nameStyle = t.Highlight
	}

	kind := t.BadgeMuted.Render(string(s.Kind))
	counts := t.Subtle.Render(fmt.Sprintf("%s %d  %s %d",
		styles.IconSession, s.Stats.WindowCount,
		styles.IconTab, s.Stats.TabCount,
	))
	timeStr := t.Subtle.Render(fmt.Sprintf("%s %s", styles.IconClock, usecase.GetRelativeTime(s.CapturedAt)))

	return fmt.Sprintf("%s%s %s  %s  %s  %s",
		cursor,
		nameStyle.Render(s.Name),
		kind,
		t.Subtle.Render(string(s.ID)),
		counts,
		timeStr,
	)
}

func (m SessionsModel) renderSessionDetails(id entity.SessionID) string {
	t := m.theme
	session, ok := m.details[id]
	if !ok {
		return t.Subtle.Render("      loading...") + "\n"
	}

	treeStyle := lipgloss.NewStyle().Foreground(t.Border)
	leafStyle := lipgloss.NewStyle().Foreground(t.Muted)

	var b strings.Builder
	for wi, w := range session.Windows {
		isLastWindow := wi == len(session.Windows)-1
		branch := "├── "
		childPrefix := "      │   "
		if isLastWindow {
			branch = "└── "
			childPrefix = "          "
		}

		label := fmt.Sprintf("Window %d", w.LocalID)
		icon := styles.IconSession
		if w.Incognito {
			icon = styles.IconIncognito
		}
		fmt.Fprintf(&b, "      %s%s %s\n", treeStyle.Render(branch), leafStyle.Render(icon), t.Normal.Render(label))

		for ti, tab := range w.Tabs {
			tabBranch := "├── "
			if ti == len(w.Tabs)-1 {
				tabBranch = "└── "
			}
			tabIcon := styles.IconTab
			if tab.Pinned {
				tabIcon = styles.IconPin
			}
			fmt.Fprintf(&b, "%s%s%s %s\n", childPrefix, treeStyle.Render(tabBranch), leafStyle.Render(tabIcon),
				t.Subtle.Render(truncate(tabLabel(tab), maxTitleLen)))
		}
	}
	b.WriteString("\n")
	return b.String()
}

const (
	maxTitleLen  = 50
	listChrome   = 8
	minListLines = 5
)

func tabLabel(tab entity.TabSnapshot) string {
	if tab.Title != "" {
		return tab.Title
	}
	return tab.URL
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// Ensure interface compliance at compile time.
var _ tea.Model = (*SessionsModel)(nil)
