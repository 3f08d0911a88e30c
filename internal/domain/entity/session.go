package entity

import (
	"fmt"
	"strings"
	"time"
)

// SessionSchemaVersion is the current schema version for persisted session records.
// Increment when making breaking changes to the serialization format.
const SessionSchemaVersion = 1

// SessionID uniquely identifies a captured session.
type SessionID string

// SessionKind records what triggered a capture.
type SessionKind string

const (
	SessionKindManual    SessionKind = "manual"
	SessionKindComplete  SessionKind = "complete"
	SessionKindScheduled SessionKind = "scheduled"
)

// Valid reports whether k is one of the known kinds.
func (k SessionKind) Valid() bool {
	switch k {
	case SessionKindManual, SessionKindComplete, SessionKindScheduled:
		return true
	default:
		return false
	}
}

// LocalID identifies a window or a tab group inside one Session.
// It is the element's index in Session.Windows or Session.TabGroups and has no
// meaning outside the session that produced it.
type LocalID int

// NoLocalID marks the absence of a window reference (e.g. on a warning that is not tied to a window).
const NoLocalID LocalID = -1

// Session is one captured snapshot of the browsing topology.
// Sessions are immutable once captured.
type Session struct {
	SchemaVersion int                `json:"schema_version" yaml:"schema_version"`
	ID            SessionID          `json:"id" yaml:"id"`
	Name          string             `json:"name" yaml:"name"`
	CapturedAt    time.Time          `json:"captured_at" yaml:"captured_at"`
	Kind          SessionKind        `json:"kind" yaml:"kind"`
	Windows       []WindowSnapshot   `json:"windows" yaml:"windows"`
	TabGroups     []TabGroupSnapshot `json:"tab_groups" yaml:"tab_groups"`
	Stats         SessionStats       `json:"stats" yaml:"stats"`
}

// SessionStats holds aggregate counts computed at capture time.
type SessionStats struct {
	WindowCount          int `json:"window_count" yaml:"window_count"`
	TabCount             int `json:"tab_count" yaml:"tab_count"`
	IncognitoWindowCount int `json:"incognito_window_count" yaml:"incognito_window_count"`
}

// WindowSnapshot captures one host window.
type WindowSnapshot struct {
	LocalID   LocalID       `json:"local_id" yaml:"local_id"`
	Focused   bool          `json:"focused" yaml:"focused"`
	Incognito bool          `json:"incognito" yaml:"incognito"`
	Type      WindowType    `json:"window_type" yaml:"window_type"`
	Bounds    Bounds        `json:"bounds" yaml:"bounds"`
	Tabs      []TabSnapshot `json:"tabs" yaml:"tabs"`
}

// TabSnapshot captures one tab. PositionIndex is the tab's original ordinal within its window.
type TabSnapshot struct {
	URL           string     `json:"url" yaml:"url"`
	Title         string     `json:"title" yaml:"title"`
	FaviconRef    string     `json:"favicon_ref,omitempty" yaml:"favicon_ref,omitempty"`
	Pinned        bool       `json:"pinned" yaml:"pinned"`
	Active        bool       `json:"active" yaml:"active"`
	PositionIndex int        `json:"position_index" yaml:"position_index"`
	GroupRef      *LocalID   `json:"group_ref,omitempty" yaml:"group_ref,omitempty"`
	Highlighted   bool       `json:"highlighted" yaml:"highlighted"`
	LoadStatus    LoadStatus `json:"load_status,omitempty" yaml:"load_status,omitempty"`
}

// TabGroupSnapshot captures one tab group and the window that owned it.
type TabGroupSnapshot struct {
	LocalID     LocalID    `json:"local_id" yaml:"local_id"`
	OwnerWindow LocalID    `json:"owner_window_local_id" yaml:"owner_window_local_id"`
	Title       string     `json:"title" yaml:"title"`
	Color       GroupColor `json:"color" yaml:"color"`
	Collapsed   bool       `json:"collapsed" yaml:"collapsed"`
}

// Bounds is a window rectangle in screen pixels.
type Bounds struct {
	Left   int `json:"left" yaml:"left"`
	Top    int `json:"top" yaml:"top"`
	Width  int `json:"width" yaml:"width"`
	Height int `json:"height" yaml:"height"`
}

// SessionSummary is the listing projection of a Session.
type SessionSummary struct {
	ID         SessionID    `json:"id"`
	Name       string       `json:"name"`
	CapturedAt time.Time    `json:"captured_at"`
	Kind       SessionKind  `json:"kind"`
	Stats      SessionStats `json:"stats"`
}

// IDGenerator is a function that generates unique IDs.
type IDGenerator func() string

// Summary returns the listing projection of s.
func (s *Session) Summary() SessionSummary {
	return SessionSummary{
		ID:         s.ID,
		Name:       s.Name,
		CapturedAt: s.CapturedAt,
		Kind:       s.Kind,
		Stats:      s.Stats,
	}
}

// Group resolves a group reference within this session.
func (s *Session) Group(ref LocalID) (*TabGroupSnapshot, bool) {
	if ref < 0 || int(ref) >= len(s.TabGroups) {
		return nil, false
	}
	return &s.TabGroups[ref], true
}

// GroupsOwnedBy returns the groups whose owner is the given window.
func (s *Session) GroupsOwnedBy(window LocalID) []TabGroupSnapshot {
	var groups []TabGroupSnapshot
	for _, g := range s.TabGroups {
		if g.OwnerWindow == window {
			groups = append(groups, g)
		}
	}
	return groups
}

// ComputeStats derives aggregate counts from a list of windows.
func ComputeStats(windows []WindowSnapshot) SessionStats {
	stats := SessionStats{WindowCount: len(windows)}
	for _, w := range windows {
		stats.TabCount += len(w.Tabs)
		if w.Incognito {
			stats.IncognitoWindowCount++
		}
	}
	return stats
}

// Normalize fills defaults for fields that may be missing in older or hand-written records.
// It is applied once at the deserialization boundary.
func (s *Session) Normalize() {
	if s.SchemaVersion == 0 {
		s.SchemaVersion = SessionSchemaVersion
	}
	if s.Kind == "" {
		s.Kind = SessionKindManual
	}
	if s.Windows == nil {
		s.Windows = []WindowSnapshot{}
	}
	if s.TabGroups == nil {
		s.TabGroups = []TabGroupSnapshot{}
	}
	for i := range s.Windows {
		w := &s.Windows[i]
		if w.Type == "" {
			w.Type = WindowTypeNormal
		}
		if w.Tabs == nil {
			w.Tabs = []TabSnapshot{}
		}
	}
	if s.Stats == (SessionStats{}) && len(s.Windows) > 0 {
		s.Stats = ComputeStats(s.Windows)
	}
}

// Validate checks the structural invariants of a session record.
func (s *Session) Validate() error {
	if s == nil {
		return ErrInvalidSession
	}

	var problems []string
	if strings.TrimSpace(string(s.ID)) == "" {
		problems = append(problems, "id is required")
	}
	if !s.Kind.Valid() {
		problems = append(problems, fmt.Sprintf("unknown kind %q", s.Kind))
	}
	for i, w := range s.Windows {
		if w.LocalID != LocalID(i) {
			problems = append(problems, fmt.Sprintf("window %d has local id %d", i, w.LocalID))
		}
		for j, tab := range w.Tabs {
			if tab.GroupRef == nil {
				continue
			}
			g, ok := s.Group(*tab.GroupRef)
			if !ok {
				problems = append(problems, fmt.Sprintf("window %d tab %d references unknown group %d", i, j, *tab.GroupRef))
				continue
			}
			if g.OwnerWindow != w.LocalID {
				problems = append(problems, fmt.Sprintf("window %d tab %d references group %d owned by window %d", i, j, g.LocalID, g.OwnerWindow))
			}
		}
	}
	for i, g := range s.TabGroups {
		if g.LocalID != LocalID(i) {
			problems = append(problems, fmt.Sprintf("group %d has local id %d", i, g.LocalID))
		}
		if g.OwnerWindow < 0 || int(g.OwnerWindow) >= len(s.Windows) {
			problems = append(problems, fmt.Sprintf("group %d owned by unknown window %d", i, g.OwnerWindow))
		}
	}
	if s.Stats != ComputeStats(s.Windows) {
		problems = append(problems, "stats do not match windows")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidSession, strings.Join(problems, "; "))
	}
	return nil
}

// Clone returns a deep copy of s.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Windows = make([]WindowSnapshot, len(s.Windows))
	for i, w := range s.Windows {
		out.Windows[i] = w
		out.Windows[i].Tabs = make([]TabSnapshot, len(w.Tabs))
		for j, tab := range w.Tabs {
			out.Windows[i].Tabs[j] = tab
			if tab.GroupRef != nil {
				ref := *tab.GroupRef
				out.Windows[i].Tabs[j].GroupRef = &ref
			}
		}
	}
	out.TabGroups = append([]TabGroupSnapshot(nil), s.TabGroups...)
	if out.TabGroups == nil {
		out.TabGroups = []TabGroupSnapshot{}
	}
	return &out
}
