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

// DefaultHostCallTimeout bounds every individual host call made during a restore.
const DefaultHostCallTimeout = 10 * time.Second

// RestoreSessionUseCase rebuilds a captured session on the live host.
// Host failures are isolated per window, tab and group and reported as warnings;
// only a missing session or a busy host abort the restore.
type RestoreSessionUseCase struct {
	history     repository.SessionHistoryRepository
	host        port.HostResourceClient
	gate        *HostGate
	limits      entity.SizeLimits
	callTimeout time.Duration
	metrics     port.EngineMetrics
}

// NewRestoreSessionUseCase creates a new RestoreSessionUseCase.
func NewRestoreSessionUseCase(
	history repository.SessionHistoryRepository,
	host port.HostResourceClient,
	gate *HostGate,
	limits entity.SizeLimits,
	callTimeout time.Duration,
	metrics port.EngineMetrics,
) *RestoreSessionUseCase {
	if callTimeout <= 0 {
		callTimeout = DefaultHostCallTimeout
	}
	if metrics == nil {
		metrics = port.NopMetrics{}
	}
	return &RestoreSessionUseCase{
		history:     history,
		host:        host,
		gate:        gate,
		limits:      limits,
		callTimeout: callTimeout,
		metrics:     metrics,
	}
}

// RestoreInput contains the parameters for restoring a session.
type RestoreInput struct {
	SessionID entity.SessionID
	Options   entity.RestoreOptions
}

// Execute loads a session from the history ledger and restores it.
func (uc *RestoreSessionUseCase) Execute(ctx context.Context, input RestoreInput) (*entity.RestoreResult, error) {
	if input.SessionID == "" {
		return nil, fmt.Errorf("%w: session id required", entity.ErrNotFound)
	}

	session, err := uc.history.Get(ctx, input.SessionID)
	if err != nil {
		return nil, fmt.Errorf("get session %s: %w", input.SessionID, err)
	}

	return uc.RestoreSnapshot(ctx, session, input.Options)
}

// RestoreSnapshot restores an already loaded session. It fails fast with
// entity.ErrBusy when another host operation holds the gate.
func (uc *RestoreSessionUseCase) RestoreSnapshot(
	ctx context.Context,
	session *entity.Session,
	opts entity.RestoreOptions,
) (*entity.RestoreResult, error) {
	if !uc.gate.TryAcquire() {
		uc.metrics.RestoreRejected("busy")
		return nil, entity.ErrBusy
	}
	defer uc.gate.Release()

	ctx = logging.WithSessionID(ctx, string(session.ID))
	log := logging.FromContext(ctx)
	start := time.Now()

	log.Info().
		Int("window_count", session.Stats.WindowCount).
		Int("tab_count", session.Stats.TabCount).
		Bool("close_current_tabs", opts.CloseCurrentTabs).
		Bool("new_windows", opts.NewWindows).
		Msg("restoring session")

	result := &entity.RestoreResult{}

	if opts.CloseCurrentTabs {
		uc.closeCurrentTabs(ctx, result)
	}

	var mergeTarget *entity.HostWindow
	if !opts.NewWindows {
		mergeTarget = uc.focusedNormalWindow(ctx)
	}

	for i := range session.Windows {
		w := &session.Windows[i]
		if w.Incognito {
			result.SkippedIncognito++
			continue
		}

		var target *liveTarget
		if mergeTarget != nil {
			target = &liveTarget{windowID: mergeTarget.ID, offset: len(mergeTarget.Tabs)}
			mergeTarget = nil
		}
		uc.restoreWindow(ctx, session, w, target, result)
	}

	uc.metrics.RestoreCompleted(*result, time.Since(start))
	log.Info().
		Int("restored_windows", result.RestoredWindows).
		Int("restored_tabs", result.RestoredTabs).
		Int("restored_groups", result.RestoredGroups).
		Int("skipped_incognito", result.SkippedIncognito).
		Int("warnings", len(result.Warnings)).
		Msg("session restored")

	return result, nil
}

// liveTarget is the live window a snapshot window is being rebuilt into.
// offset is the number of live tabs that were already there before the restore.
type liveTarget struct {
	windowID entity.HostWindowID
	offset   int
}

func (uc *RestoreSessionUseCase) restoreWindow(
	ctx context.Context,
	session *entity.Session,
	w *entity.WindowSnapshot,
	target *liveTarget,
	result *entity.RestoreResult,
) {
	log := logging.FromContext(ctx)
	tabs := orderedTabs(w.Tabs)

	pending := tabs
	if target == nil {
		var seed *entity.TabSnapshot
		if len(tabs) > 0 {
			seed = &tabs[0]
		}
		created, err := uc.createWindow(ctx, w, seed)
		if err != nil {
			result.Warn(entity.StageCreateWindow, w.LocalID, err)
			log.Warn().Err(err).Int("window", int(w.LocalID)).Msg("window could not be restored")
			return
		}
		result.RestoredWindows++
		target = &liveTarget{windowID: created.ID}

		if seed != nil {
			result.RestoredTabs++
			pending = tabs[1:]
			if seed.Pinned && len(created.Tabs) > 0 {
				pinned := true
				err := uc.call(ctx, func(ctx context.Context) error {
					return uc.host.UpdateTab(ctx, created.Tabs[0].ID, entity.TabUpdate{Pinned: &pinned})
				})
				if err != nil {
					result.Warn(entity.StagePinTab, w.LocalID, err)
				}
			}
		}
	} else {
		result.RestoredWindows++
	}

	for _, tab := range pending {
		params := entity.TabCreateParams{
			WindowID: target.windowID,
			URL:      tab.URL,
			Index:    tab.PositionIndex + target.offset,
			Pinned:   tab.Pinned,
			Active:   tab.Active,
		}
		err := uc.call(ctx, func(ctx context.Context) error {
			_, err := uc.host.CreateTab(ctx, params)
			return err
		})
		if err != nil {
			result.Warn(entity.StageCreateTab, w.LocalID, fmt.Errorf("%s: %w", tab.URL, err))
			continue
		}
		result.RestoredTabs++
	}

	uc.relinkGroups(ctx, session, w, target, result)
}

// createWindow opens a window seeded with the first tab, retrying once with the
// minimal parameter set when the full request is refused.
func (uc *RestoreSessionUseCase) createWindow(
	ctx context.Context,
	w *entity.WindowSnapshot,
	seed *entity.TabSnapshot,
) (*entity.HostWindow, error) {
	url := ""
	if seed != nil {
		url = seed.URL
	}
	width, height := uc.limits.Clamp(w.Bounds)
	windowType := w.Type
	if windowType == "" {
		windowType = entity.WindowTypeNormal
	}

	full := entity.WindowCreateParams{URL: url, Type: windowType, Width: width, Height: height, Focused: w.Focused}
	created, err := uc.createWindowOnce(ctx, full)
	if err == nil {
		return created, nil
	}

	logging.FromContext(ctx).Debug().Err(err).Int("window", int(w.LocalID)).Msg("window creation refused, retrying minimal")

	minimal := entity.WindowCreateParams{URL: url, Type: entity.WindowTypeNormal}
	created, retryErr := uc.createWindowOnce(ctx, minimal)
	if retryErr != nil {
		return nil, fmt.Errorf("%w (minimal retry: %v)", err, retryErr)
	}
	return created, nil
}

func (uc *RestoreSessionUseCase) createWindowOnce(ctx context.Context, params entity.WindowCreateParams) (*entity.HostWindow, error) {
	var created *entity.HostWindow
	err := uc.call(ctx, func(ctx context.Context) error {
		var err error
		created, err = uc.host.CreateWindow(ctx, params)
		return err
	})
	if err != nil {
		return nil, err
	}
	if created == nil {
		return nil, fmt.Errorf("%w: host returned no window", entity.ErrHostCreation)
	}
	return created, nil
}

func (uc *RestoreSessionUseCase) closeCurrentTabs(ctx context.Context, result *entity.RestoreResult) {
	var windows []entity.HostWindow
	err := uc.call(ctx, func(ctx context.Context) error {
		var err error
		windows, err = uc.host.ListWindows(ctx)
		return err
	})
	if err != nil {
		result.Warn(entity.StageCloseTabs, entity.NoLocalID, err)
		return
	}

	var ids []entity.HostTabID
	for _, w := range windows {
		for _, t := range w.Tabs {
			ids = append(ids, t.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	err = uc.call(ctx, func(ctx context.Context) error {
		return uc.host.CloseTabs(ctx, ids)
	})
	if err != nil {
		result.Warn(entity.StageCloseTabs, entity.NoLocalID, err)
		return
	}
	logging.FromContext(ctx).Debug().Int("closed_tabs", len(ids)).Msg("closed current tabs")
}

// focusedNormalWindow returns the live window that a merge restore appends to, if any.
func (uc *RestoreSessionUseCase) focusedNormalWindow(ctx context.Context) *entity.HostWindow {
	var windows []entity.HostWindow
	err := uc.call(ctx, func(ctx context.Context) error {
		var err error
		windows, err = uc.host.ListWindows(ctx)
		return err
	})
	if err != nil {
		logging.FromContext(ctx).Debug().Err(err).Msg("could not find a window to merge into")
		return nil
	}
	for i := range windows {
		w := windows[i]
		if w.Focused && !w.Incognito && (w.Type == entity.WindowTypeNormal || w.Type == "") {
			return &w
		}
	}
	return nil
}

// call runs one host operation under its own timeout.
func (uc *RestoreSessionUseCase) call(ctx context.Context, fn func(ctx context.Context) error) error {
	callCtx, cancel := context.WithTimeout(ctx, uc.callTimeout)
	defer cancel()

	err := fn(callCtx)
	if err == nil {
		return nil
	}
	if callCtx.Err() != nil && ctx.Err() == nil {
		return fmt.Errorf("%w: host call timed out after %s: %w", entity.ErrHostCreation, uc.callTimeout, err)
	}
	return fmt.Errorf("%w: %w", entity.ErrHostCreation, err)
}

// orderedTabs returns the tabs sorted by their original position.
func orderedTabs(tabs []entity.TabSnapshot) []entity.TabSnapshot {
	out := append([]entity.TabSnapshot(nil), tabs...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].PositionIndex < out[j].PositionIndex })
	return out
}
