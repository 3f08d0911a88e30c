package styles

import (
	"fmt"
	"strings"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/usecase"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
)

// SessionsCLIRenderer renders non-interactive CLI output for sessions subcommands
// (e.g. `tabsnap sessions list`, `restore`, `delete`).
type SessionsCLIRenderer struct {
	theme *Theme
}

func NewSessionsCLIRenderer(theme *Theme) *SessionsCLIRenderer {
	return &SessionsCLIRenderer{theme: theme}
}

func (r *SessionsCLIRenderer) RenderEmptyList() string {
	return r.theme.Subtle.Render("No saved sessions found.")
}

func (r *SessionsCLIRenderer) RenderList(items []entity.SessionSummary, limit int) string {
	if len(items) == 0 {
		return r.RenderEmptyList()
	}

	var b strings.Builder
	title := fmt.Sprintf("%s %s", r.theme.Highlight.Render(IconSessionStack), r.theme.Title.Render("Sessions"))
	b.WriteString(title)
	if limit > 0 {
		b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (showing up to %d)", limit)))
	}
	b.WriteString("\n\n")

	for _, s := range items {
		b.WriteString(r.renderOne(s))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(r.theme.Subtle.Render("Tip: ids can be shortened to any unique suffix."))
	return b.String()
}

func (r *SessionsCLIRenderer) renderOne(s entity.SessionSummary) string {
	marker := " "
	markerStyle := r.theme.Subtle
	if s.Kind != entity.SessionKindManual {
		marker = IconClock
	}

	id := r.theme.Highlight.Render(string(s.ID))
	name := r.theme.Normal.Render(s.Name)
	windows := r.theme.BadgeMuted.Render(fmt.Sprintf("%d windows", s.Stats.WindowCount))
	tabs := r.theme.BadgeMuted.Render(fmt.Sprintf("%d tabs", s.Stats.TabCount))
	captured := r.theme.Subtle.Render(usecase.GetRelativeTime(s.CapturedAt))

	return fmt.Sprintf("%s %s  %s  %s %s  %s",
		markerStyle.Render(marker),
		id,
		name,
		windows,
		tabs,
		captured,
	)
}

// RenderSession renders a session as a window/tab tree.
func (r *SessionsCLIRenderer) RenderSession(s *entity.Session) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s  %s\n",
		r.theme.Highlight.Render(IconSession),
		r.theme.Title.Render(s.Name),
		r.theme.Subtle.Render(fmt.Sprintf("%s · %s · %s", s.ID, s.Kind, s.CapturedAt.Format("2006-01-02 15:04:05"))),
	)

	groups := make(map[entity.LocalID]entity.TabGroupSnapshot, len(s.TabGroups))
	for _, g := range s.TabGroups {
		groups[g.LocalID] = g
	}

	for _, w := range s.Windows {
		label := fmt.Sprintf("Window %d", w.LocalID)
		if w.Focused {
			label += " (focused)"
		}
		if w.Incognito {
			label = IconIncognito + " " + label + " (incognito, not restored)"
		}
		fmt.Fprintf(&b, "\n  %s %s\n", r.theme.Subtitle.Render(label),
			r.theme.Subtle.Render(fmt.Sprintf("%dx%d+%d+%d", w.Bounds.Width, w.Bounds.Height, w.Bounds.Left, w.Bounds.Top)))
		for _, t := range w.Tabs {
			b.WriteString("    ")
			b.WriteString(r.renderTab(t, groups))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (r *SessionsCLIRenderer) renderTab(t entity.TabSnapshot, groups map[entity.LocalID]entity.TabGroupSnapshot) string {
	var parts []string
	if t.Active {
		parts = append(parts, r.theme.Highlight.Render("●"))
	} else {
		parts = append(parts, r.theme.Subtle.Render("○"))
	}
	if t.Pinned {
		parts = append(parts, r.theme.Subtle.Render(IconPin))
	}
	title := t.Title
	if title == "" {
		title = t.URL
	}
	parts = append(parts, r.theme.Normal.Render(title))
	if t.GroupRef != nil {
		if g, ok := groups[*t.GroupRef]; ok {
			parts = append(parts, r.theme.BadgeMuted.Render(fmt.Sprintf("%s %s", g.Color, g.Title)))
		}
	}
	if t.Title != "" {
		parts = append(parts, r.theme.Subtle.Render(t.URL))
	}
	return strings.Join(parts, " ")
}

func (r *SessionsCLIRenderer) RenderCaptured(s *entity.Session) string {
	return fmt.Sprintf("%s Captured %s %s  %s %s",
		r.theme.SuccessStyle.Render(IconCamera),
		r.theme.Highlight.Render(string(s.ID)),
		r.theme.Normal.Render(s.Name),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d windows", s.Stats.WindowCount)),
		r.theme.BadgeMuted.Render(fmt.Sprintf("%d tabs", s.Stats.TabCount)),
	)
}

func (r *SessionsCLIRenderer) RenderRestoreStarted(sessionID entity.SessionID) string {
	return fmt.Sprintf("%s Restoring session %s...",
		r.theme.SuccessStyle.Render(IconRestore),
		r.theme.Highlight.Render(string(sessionID)),
	)
}

// RenderRestoreResult summarizes what a restore recreated and lists its warnings.
func (r *SessionsCLIRenderer) RenderRestoreResult(result *entity.RestoreResult) string {
	var b strings.Builder
	icon := r.theme.SuccessStyle.Render(IconCheck)
	if len(result.Warnings) > 0 {
		icon = r.theme.WarningStyle.Render(IconWarning)
	}
	fmt.Fprintf(&b, "%s Restored %d windows, %d tabs, %d groups",
		icon, result.RestoredWindows, result.RestoredTabs, result.RestoredGroups)
	if result.SkippedIncognito > 0 {
		b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" (skipped %d incognito)", result.SkippedIncognito)))
	}
	for _, w := range result.Warnings {
		b.WriteString("\n  ")
		b.WriteString(r.theme.WarningStyle.Render(string(w.Stage)))
		if w.Window != entity.NoLocalID {
			b.WriteString(r.theme.Subtle.Render(fmt.Sprintf(" #%d", w.Window)))
		}
		b.WriteString(" ")
		b.WriteString(w.Message)
	}
	return b.String()
}

func (r *SessionsCLIRenderer) RenderDeleted(sessionID entity.SessionID) string {
	return fmt.Sprintf("%s Session %s deleted.",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Highlight.Render(string(sessionID)),
	)
}

func (r *SessionsCLIRenderer) RenderError(err error) string {
	return fmt.Sprintf("%s %v", r.theme.ErrorStyle.Render(IconX), err)
}
