package usecase

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/application/port"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/entity"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/domain/repository"
	"github.com/shamimkhan539/tab-suspend-pro-sub001/internal/logging"
)

const defaultSessionNameLayout = "2006-01-02 15:04"

// CaptureSessionUseCase snapshots the live host topology into the history ledger.
// It is the only path that creates sessions; the scheduler, the command handler
// and the template manager all go through it.
type CaptureSessionUseCase struct {
	host    port.HostResourceClient
	history repository.SessionHistoryRepository
	gate    *HostGate
	newID   entity.IDGenerator
	metrics port.EngineMetrics
	now     func() time.Time
}

// NewCaptureSessionUseCase creates a new CaptureSessionUseCase.
func NewCaptureSessionUseCase(
	host port.HostResourceClient,
	history repository.SessionHistoryRepository,
	gate *HostGate,
	newID entity.IDGenerator,
	metrics port.EngineMetrics,
) *CaptureSessionUseCase {
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	return &CaptureSessionUseCase{
		host:    host,
		history: history,
		gate:    gate,
		newID:   newID,
		metrics: metrics,
		now:     time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (uc *CaptureSessionUseCase) WithClock(now func() time.Time) *CaptureSessionUseCase {
	uc.now = now
	return uc
}

// CaptureInput contains the parameters for a capture.
type CaptureInput struct {
	Name string
	Kind entity.SessionKind
}

// Execute enumerates the host and appends the resulting session to the ledger.
// Nothing is persisted when enumeration fails.
func (uc *CaptureSessionUseCase) Execute(ctx context.Context, input CaptureInput) (*entity.Session, error) {
	log := logging.FromContext(ctx)
	start := uc.now()

	kind := input.Kind
	if kind == "" {
		kind = entity.SessionKindManual
	}
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown kind %q", entity.ErrInvalidSession, kind)
	}

	if err := uc.gate.Acquire(ctx); err != nil {
		return nil, fmt.Errorf("wait for host: %w", err)
	}
	defer uc.gate.Release()

	windows, err := uc.host.ListWindows(ctx)
	if err != nil {
		uc.metrics.CaptureFailed(kind, "host_enumeration")
		return nil, fmt.Errorf("%w: list windows: %w", entity.ErrHostEnumeration, err)
	}
	groups, err := uc.host.ListTabGroups(ctx)
	if err != nil {
		uc.metrics.CaptureFailed(kind, "host_enumeration")
		return nil, fmt.Errorf("%w: list tab groups: %w", entity.ErrHostEnumeration, err)
	}

	capturedAt := uc.now().UTC()
	session := BuildSession(windows, groups)
	session.ID = entity.SessionID(uc.newID())
	session.CapturedAt = capturedAt
	session.Kind = kind
	session.Name = input.Name
	if session.Name == "" {
		session.Name = "Session " + capturedAt.Local().Format(defaultSessionNameLayout)
	}

	evicted, err := uc.history.Append(ctx, session)
	if err != nil {
		uc.metrics.CaptureFailed(kind, "storage")
		return nil, fmt.Errorf("append session: %w", err)
	}
	if len(evicted) > 0 {
		uc.metrics.SessionsEvicted(len(evicted))
		log.Debug().Int("evicted", len(evicted)).Msg("history ledger trimmed")
	}

	uc.metrics.CaptureCompleted(kind, session.Stats.TabCount, uc.now().Sub(start))
	log.Info().
		Str("session_id", string(session.ID)).
		Str("kind", string(kind)).
		Int("window_count", session.Stats.WindowCount).
		Int("tab_count", session.Stats.TabCount).
		Int("group_count", len(session.TabGroups)).
		Msg("session captured")

	return session, nil
}

// BuildSession converts live host state into a session body with capture-scoped ids.
// Window and group LocalIDs are their indexes in the returned slices. Groups whose
// window was not enumerated are dropped, and so are tab references to them.
// ID, name, kind and capture time are left for the caller.
func BuildSession(windows []entity.HostWindow, groups []entity.HostTabGroup) *entity.Session {
	windowLocal := make(map[entity.HostWindowID]entity.LocalID, len(windows))
	for i, w := range windows {
		windowLocal[w.ID] = entity.LocalID(i)
	}

	snapGroups := make([]entity.TabGroupSnapshot, 0, len(groups))
	groupLocal := make(map[entity.HostGroupID]entity.LocalID, len(groups))
	for _, g := range groups {
		owner, ok := windowLocal[g.WindowID]
		if !ok {
			continue
		}
		if _, dup := groupLocal[g.ID]; dup {
			continue
		}
		local := entity.LocalID(len(snapGroups))
		groupLocal[g.ID] = local
		snapGroups = append(snapGroups, entity.TabGroupSnapshot{
			LocalID:     local,
			OwnerWindow: owner,
			Title:       g.Title,
			Color:       g.Color,
			Collapsed:   g.Collapsed,
		})
	}

	snapWindows := make([]entity.WindowSnapshot, 0, len(windows))
	for i, w := range windows {
		local := entity.LocalID(i)
		hostTabs := append([]entity.HostTab(nil), w.Tabs...)
		sort.SliceStable(hostTabs, func(a, b int) bool { return hostTabs[a].Index < hostTabs[b].Index })

		tabs := make([]entity.TabSnapshot, 0, len(hostTabs))
		for _, t := range hostTabs {
			tab := entity.TabSnapshot{
				URL:           t.URL,
				Title:         t.Title,
				FaviconRef:    t.FaviconURL,
				Pinned:        t.Pinned,
				Active:        t.Active,
				PositionIndex: t.Index,
				Highlighted:   t.Highlighted,
				LoadStatus:    t.Status,
			}
			if ref, ok := groupLocal[t.GroupID]; ok && t.GroupID != "" && snapGroups[ref].OwnerWindow == local {
				tab.GroupRef = &ref
			}
			tabs = append(tabs, tab)
		}

		windowType := w.Type
		if windowType == "" {
			windowType = entity.WindowTypeNormal
		}
		snapWindows = append(snapWindows, entity.WindowSnapshot{
			LocalID:   local,
			Focused:   w.Focused,
			Incognito: w.Incognito,
			Type:      windowType,
			Bounds:    w.Bounds,
			Tabs:      tabs,
		})
	}

	return &entity.Session{
		SchemaVersion: entity.SessionSchemaVersion,
		Windows:       snapWindows,
		TabGroups:     snapGroups,
		Stats:         entity.ComputeStats(snapWindows),
	}
}
